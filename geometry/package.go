// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geometry encodes integer tile-local geometry into the
// command stream used by Mapbox Vector Tiles.
//
// A command stream is a flat sequence of uint32 values in which
// command integers (MoveTo, LineTo, ClosePath, each with a repeat
// count) are interleaved with zigzag-encoded coordinate deltas. Every
// delta is relative to a cursor which starts at the origin for each
// geometry and carries over from one sub-path to the next.
//
// Although designed for the mvt package, this package has no
// dependency on it and can be used on its own wherever an MVT
// geometry stream is needed.
package geometry
