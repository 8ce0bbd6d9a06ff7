// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import "github.com/gogama/mvt/geometry"

// A LayerOption configures a Layer created by NewLayer.
type LayerOption func(*Layer)

// WithExtent sets the layer extent: the number of tile-local units
// along each side of the tile. The default is DefaultExtent.
func WithExtent(extent uint32) LayerOption {
	return func(l *Layer) {
		l.extent = extent
	}
}

// A Layer is a named, ordered collection of features sharing one
// attribute table.
type Layer struct {
	name     string
	extent   uint32
	attrs    attrTable
	features []feature
	ids      map[uint64]struct{}
	bounds   geometry.Box
	owner    *Tile
}

// feature is the stored form of a Feature once its attributes have
// been interned.
type feature struct {
	id    uint64
	hasID bool
	geom  geometry.Geometry
	tags  []uint32
}

// NewLayer creates an empty layer. It fails with ErrEmptyLayerName if
// name is empty and with ErrInvalidExtent if the extent is set to
// zero.
func NewLayer(name string, opts ...LayerOption) (*Layer, error) {
	l := &Layer{
		name:   name,
		extent: DefaultExtent,
		attrs:  newAttrTable(),
		ids:    make(map[uint64]struct{}),
		bounds: geometry.EmptyBox,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.name == "" {
		return nil, ErrEmptyLayerName
	} else if l.extent == 0 {
		return nil, ErrInvalidExtent
	}
	return l, nil
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// Version returns the MVT version of the layer, which is always
// Version.
func (l *Layer) Version() uint32 {
	return Version
}

// Extent returns the layer extent.
func (l *Layer) Extent() uint32 {
	return l.extent
}

// Len returns the number of features in the layer.
func (l *Layer) Len() int {
	return len(l.features)
}

// Keys returns a copy of the layer's attribute keys, in the order
// first seen.
func (l *Layer) Keys() []string {
	return append([]string(nil), l.attrs.keys...)
}

// Values returns a copy of the layer's attribute values, in the order
// first seen.
func (l *Layer) Values() []Value {
	return append([]Value(nil), l.attrs.values...)
}

// Bounds returns the bounding box of all feature geometry in the
// layer, or geometry.EmptyBox if the layer has no non-empty geometry.
// Geometry may extend beyond the extent.
func (l *Layer) Bounds() geometry.Box {
	return l.bounds
}

// NewFeature returns a builder for a feature of this layer with the
// given geometry. Use the zero geometry.Geometry for a feature with no
// geometry.
func (l *Layer) NewFeature(g geometry.Geometry) *FeatureBuilder {
	return &FeatureBuilder{layer: l, geom: g}
}

// Add appends a feature to the layer, interning its attributes into
// the layer's attribute table.
//
// Add fails with ErrForeignFeature if the feature was built for a
// different layer, and with ErrDuplicateFeatureID if its ID is already
// in use. When Add fails, the layer is unchanged.
//
// Panics if f is nil or the layer belongs to a finished tile.
func (l *Layer) Add(f *Feature) error {
	if f == nil {
		textPanic("nil feature")
	}
	if l.owner != nil && l.owner.state == finished {
		fmtPanic("Add called on layer %q of finished tile", l.name)
	}
	if f.layer != l {
		return detailErr(ErrForeignFeature, "layer %q", l.name)
	}
	if f.hasID {
		if l.hasID(f.id) {
			return detailErr(ErrDuplicateFeatureID, "%d", f.id)
		}
		l.ids[f.id] = struct{}{}
	}
	l.features = append(l.features, feature{
		id:    f.id,
		hasID: f.hasID,
		geom:  f.geom,
		tags:  l.attrs.intern(f.attrs),
	})
	b := f.geom.Bounds()
	l.bounds.Expand(&b)
	return nil
}

func (l *Layer) hasID(id uint64) bool {
	_, ok := l.ids[id]
	return ok
}
