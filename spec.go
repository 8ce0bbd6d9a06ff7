// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

const (
	// Version is the MVT specification major version written into
	// every layer.
	Version = 2
	// DefaultExtent is the layer extent used when none is given.
	DefaultExtent = 4096
)

// Field numbers from the MVT protobuf schema (vector_tile.proto).
const (
	tileLayersField = 3

	layerNameField     = 1
	layerFeaturesField = 2
	layerKeysField     = 3
	layerValuesField   = 4
	layerExtentField   = 5
	layerVersionField  = 15

	featureIDField       = 1
	featureTagsField     = 2
	featureTypeField     = 3
	featureGeometryField = 4
)
