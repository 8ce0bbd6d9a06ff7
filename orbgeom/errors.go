// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orbgeom

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedGeometry is returned for orb geometries which have
	// no vector tile representation, such as collections.
	ErrUnsupportedGeometry = textErr("unsupported geometry")
	// ErrCoordinateRange is returned when a coordinate does not round
	// to a 32-bit integer.
	ErrCoordinateRange = textErr("coordinate out of range")
	// ErrUnsupportedValue is returned for property values that cannot
	// be stored as a tile value.
	ErrUnsupportedValue = textErr("unsupported value")
	// ErrInvalidID is returned for a feature ID that is not a
	// non-negative integer.
	ErrInvalidID = textErr("invalid feature id")
)

const packageName = "orbgeom: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}
