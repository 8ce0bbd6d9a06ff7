// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// Geometry is a finished, immutable MVT command stream together with
// the geometry type it encodes.
//
// The zero value is the empty geometry of type TypeUnknown, which is
// the only geometry allowed to have an empty command stream. All other
// geometries are produced by an Encoder.
type Geometry struct {
	typ    Type
	data   []uint32
	bounds Box
}

// Type returns the geometry type.
func (g Geometry) Type() Type {
	return g.typ
}

// Len returns the number of integers in the command stream.
func (g Geometry) Len() int {
	return len(g.data)
}

// IsEmpty reports whether the command stream is empty.
func (g Geometry) IsEmpty() bool {
	return len(g.data) == 0
}

// Commands returns a copy of the command stream.
func (g Geometry) Commands() []uint32 {
	return g.AppendCommands(nil)
}

// AppendCommands appends the command stream to dst and returns the
// extended slice.
func (g Geometry) AppendCommands(dst []uint32) []uint32 {
	return append(dst, g.data...)
}

// Bounds returns the bounding box of every vertex in the geometry.
// The bounds of an empty geometry is EmptyBox.
func (g Geometry) Bounds() Box {
	if g.IsEmpty() {
		return EmptyBox
	}
	return g.bounds
}

// Valid reports whether the geometry type agrees with the command
// stream: the stream is empty exactly when the type is TypeUnknown.
func (g Geometry) Valid() bool {
	switch g.typ {
	case TypeUnknown:
		return len(g.data) == 0
	case TypePoint, TypeLineString, TypePolygon:
		return len(g.data) > 0
	default:
		return false
	}
}
