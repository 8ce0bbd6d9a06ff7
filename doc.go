// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package mvt builds Mapbox Vector Tiles (MVT, version 2.1).
//
// A tile is built bottom up. Geometry is encoded into a command
// stream with the geometry subpackage. A Layer is created with
// NewLayer, and features are added to it through a FeatureBuilder
// obtained from that same layer, so a feature's attributes are always
// interned into the attribute table of the layer that will own it.
// Layers are then added to a Tile, and Finish, WriteTo or
// MarshalGzipped emits the protobuf bytes.
//
// Every structural rule of the format that the builder is able to
// check is enforced at the call which would break it: degenerate
// geometry, duplicate attribute keys within a feature, duplicate
// feature IDs within a layer, and duplicate layer names within a tile
// are all rejected, and a rejected call leaves the builder unchanged.
// Consequently emitting the tile never fails except when the
// destination writer does.
//
// The package does not check that interior rings lie inside their
// exterior ring, that rings do not intersect one another, or that
// rings are wound in the conventional direction.
//
// A Tile and its layers are not safe for concurrent use. To build
// tiles in parallel, give each goroutine its own Tile; separate tiles
// share no state.
package mvt
