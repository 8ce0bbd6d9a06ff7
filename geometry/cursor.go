// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// A Point is a coordinate in tile-local integer units.
//
// Coordinates normally lie within [0, extent] for the extent of the
// layer the geometry belongs to, but values outside that range are
// legal and are used for geometry which continues past the tile edge.
type Point struct {
	X, Y int32
}

// A Cursor tracks the current position of the MVT pen and converts
// absolute coordinates into zigzag-encoded deltas relative to it.
//
// The zero value is a cursor positioned at the origin.
type Cursor struct {
	pos Point
}

// Delta returns the zigzag-encoded X- and Y-offsets from the cursor's
// current position to a target point, then moves the cursor to the
// target.
//
// Offsets are computed with int32 wrap-around, which is exactly how
// decoders accumulate them, so the transform is lossless for every
// pair of int32 coordinates.
func (c *Cursor) Delta(to Point) (dx, dy uint32) {
	dx = ZigZag(to.X - c.pos.X)
	dy = ZigZag(to.Y - c.pos.Y)
	c.pos = to
	return
}

// Pos returns the cursor's current position.
func (c *Cursor) Pos() Point {
	return c.pos
}

// Reset moves the cursor back to the origin.
func (c *Cursor) Reset() {
	c.pos = Point{}
}
