// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"io"
)

// A Tile is an ordered collection of uniquely named layers.
//
// A Tile starts empty, accepts layers with AddLayer, and is emitted
// exactly once with Finish, WriteTo, MarshalGzipped or WriteGzipped.
// After that the Tile is finished: further emit calls return
// ErrFinished, and AddLayer panics.
type Tile struct {
	stateful
	layers []*Layer
	names  map[string]struct{}
}

// NewTile returns an empty tile.
func NewTile() *Tile {
	return &Tile{names: make(map[string]struct{})}
}

// AddLayer appends a layer to the tile, which then owns it. Layers are
// emitted in the order added. AddLayer fails with
// ErrDuplicateLayerName if the tile already has a layer with the same
// name, in which case the tile is unchanged.
//
// Panics if the tile is finished, l is nil, or l already belongs to
// another tile.
func (t *Tile) AddLayer(l *Layer) error {
	if l == nil {
		textPanic("nil layer")
	}
	if t.state == finished {
		textPanic("AddLayer called on finished tile")
	}
	if _, ok := t.names[l.name]; ok {
		return detailErr(ErrDuplicateLayerName, "%q", l.name)
	}
	if l.owner != nil {
		fmtPanic("layer %q already belongs to another tile", l.name)
	}
	if t.state == empty {
		if err := t.toState(empty, building); err != nil {
			return err
		}
	}
	l.owner = t
	t.names[l.name] = struct{}{}
	t.layers = append(t.layers, l)
	return nil
}

// Len returns the number of layers in the tile.
func (t *Tile) Len() int {
	return len(t.layers)
}

// Layer returns the layer with the given name, or nil.
func (t *Tile) Layer(name string) *Layer {
	for _, l := range t.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// Finish finishes the tile and returns its MVT protobuf encoding.
//
// A tile with no layers encodes as zero bytes, which is a valid,
// empty tile.
func (t *Tile) Finish() ([]byte, error) {
	if err := t.finish(); err != nil {
		return nil, err
	}
	var e wireEncoder
	return e.appendTile(nil, t.layers), nil
}

// WriteTo finishes the tile and writes its MVT protobuf encoding to w.
// An error from w is returned unchanged.
func (t *Tile) WriteTo(w io.Writer) (int64, error) {
	b, err := t.Finish()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
