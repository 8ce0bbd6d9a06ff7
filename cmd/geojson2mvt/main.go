// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command geojson2mvt converts GeoJSON feature collections into a
// single Mapbox Vector Tile.
//
// Each --layer flag names a layer and the GeoJSON file that supplies
// its features. Coordinates in the files must already be in tile space
// (0 to extent on both axes, y pointing down); they are rounded to the
// nearest integer.
//
//	geojson2mvt --layer roads=roads.json --layer pois=pois.json --out tile.mvt
//
// Every flag can also be set in a config file (--config) or through an
// environment variable prefixed with GEOJSON2MVT_, for example
// GEOJSON2MVT_EXTENT=512. GEOJSON2MVT_LAYER takes several layers
// separated by spaces.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
