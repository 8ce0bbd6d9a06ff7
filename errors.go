// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"errors"
	"fmt"

	"github.com/gogama/mvt/geometry"
)

var (
	// ErrDegenerateGeometry is returned when geometry has too few
	// vertices for its type. It is the same error value as
	// geometry.ErrDegenerate.
	ErrDegenerateGeometry = geometry.ErrDegenerate
	// ErrDuplicateAttributeKey is returned when the same key is given
	// twice for one feature.
	ErrDuplicateAttributeKey = textErr("duplicate attribute key")
	// ErrDuplicateFeatureID is returned when a feature ID is already
	// used by another feature in the same layer.
	ErrDuplicateFeatureID = textErr("duplicate feature id")
	// ErrDuplicateLayerName is returned when a tile already has a layer
	// with the same name.
	ErrDuplicateLayerName = textErr("duplicate layer name")
	// ErrForeignFeature is returned when a feature built for one layer
	// is added to another.
	ErrForeignFeature = textErr("feature belongs to another layer")
	// ErrEmptyLayerName is returned when creating a layer with an
	// empty name.
	ErrEmptyLayerName = textErr("empty layer name")
	// ErrInvalidExtent is returned when creating a layer with a zero
	// extent.
	ErrInvalidExtent = textErr("extent must be positive")
	// ErrInvalidGeometry is returned when a geometry's type does not
	// agree with its command stream. Geometry built with the geometry
	// package always agrees, so callers do not normally see it.
	ErrInvalidGeometry = textErr("invalid geometry")
	// ErrFinished is returned when emitting a Tile which has already
	// been emitted.
	ErrFinished = textErr("tile already finished")

	errUnexpectedState = textErr("unexpected state")
)

const packageName = "mvt: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

// detailErr wraps a sentinel error with additional detail. Because
// sentinels already carry the package name, detailErr does not add
// it again.
func detailErr(err error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{err}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
