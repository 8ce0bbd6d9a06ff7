// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// Type is the geometry type of an MVT feature. The numeric values are
// those of the GeomType enumeration in the MVT protobuf schema.
type Type uint8

const (
	TypeUnknown    Type = 0
	TypePoint      Type = 1
	TypeLineString Type = 2
	TypePolygon    Type = 3
)
