// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// Orientation is the winding direction of a ring as it appears in tile
// coordinates, where the Y-axis points down.
type Orientation int8

const (
	Collinear        Orientation = 0
	Clockwise        Orientation = 1
	CounterClockwise Orientation = -1
)

// SignedArea returns twice the signed area of a ring, computed with
// the surveyor's formula. The ring may be given open or closed.
//
// In tile coordinates, exterior rings should have a positive area
// (they appear clockwise) and interior rings a negative one. The
// encoder never checks this; SignedArea is provided for callers who
// want to.
func SignedArea(ring []Point) int64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var a int64
	for i := 0; i < n-1; i++ {
		a += int64(ring[i].X)*int64(ring[i+1].Y) - int64(ring[i+1].X)*int64(ring[i].Y)
	}
	a += int64(ring[n-1].X)*int64(ring[0].Y) - int64(ring[0].X)*int64(ring[n-1].Y)
	return a
}

// RingOrientation returns the winding direction of a ring.
func RingOrientation(ring []Point) Orientation {
	switch a := SignedArea(ring); {
	case a > 0:
		return Clockwise
	case a < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// normalizeRing drops a duplicate closing vertex, if present.
func normalizeRing(ring []Point) []Point {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}

// hasDistinct reports whether a vertex list contains at least k
// distinct points. It stops scanning as soon as k are found.
func hasDistinct(ps []Point, k int) bool {
	if len(ps) < k {
		return false
	}
	seen := make([]Point, 0, k)
outer:
	for _, p := range ps {
		for _, q := range seen {
			if p == q {
				continue outer
			}
		}
		seen = append(seen, p)
		if len(seen) == k {
			return true
		}
	}
	return false
}
