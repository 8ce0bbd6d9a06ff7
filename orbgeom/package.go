// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package orbgeom adapts github.com/paulmach/orb geometries and
// GeoJSON features to vector tile geometry and features.
//
// Coordinates are taken to be tile-local already: each one is rounded
// to the nearest integer and must fit in an int32. Projecting from
// longitude and latitude into tile space is left to the caller, for
// example with orb's project and maptile packages.
package orbgeom
