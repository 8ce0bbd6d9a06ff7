// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import "math"

// Box is an axis-aligned bounding box in tile-local integer units.
// Both minimum and maximum edges are inclusive.
type Box struct {
	XMin int32
	YMin int32
	XMax int32
	YMax int32
}

// EmptyBox is the box which contains no points. Expanding EmptyBox by
// any point yields the degenerate box containing only that point.
var EmptyBox = Box{
	XMin: math.MaxInt32,
	YMin: math.MaxInt32,
	XMax: math.MinInt32,
	YMax: math.MinInt32,
}

// IsEmpty reports whether the box contains no points.
func (b *Box) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width returns the box width, or zero for an empty box.
func (b *Box) Width() int64 {
	if b.IsEmpty() {
		return 0
	}
	return int64(b.XMax) - int64(b.XMin)
}

// Height returns the box height, or zero for an empty box.
func (b *Box) Height() int64 {
	if b.IsEmpty() {
		return 0
	}
	return int64(b.YMax) - int64(b.YMin)
}

// Contains reports whether a point lies within the box.
func (b *Box) Contains(p Point) bool {
	return b.XMin <= p.X && p.X <= b.XMax && b.YMin <= p.Y && p.Y <= b.YMax
}

// ExpandPoint grows the box, if necessary, to contain a point.
func (b *Box) ExpandPoint(p Point) {
	if p.X < b.XMin {
		b.XMin = p.X
	}
	if p.Y < b.YMin {
		b.YMin = p.Y
	}
	if p.X > b.XMax {
		b.XMax = p.X
	}
	if p.Y > b.YMax {
		b.YMax = p.Y
	}
}

// Expand grows the box, if necessary, to contain another box.
func (b *Box) Expand(c *Box) {
	if c.IsEmpty() {
		return
	}
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}
