// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate is returned when a point set, path, or ring has
	// too few vertices for its geometry type.
	ErrDegenerate = textErr("degenerate geometry")
	// ErrCountOverflow is returned when a command repeat count would
	// not fit in the 29 bits available to it. It wraps ErrDegenerate.
	ErrCountOverflow = detailErr(ErrDegenerate, "command count overflow")
)

const packageName = "geometry: "

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
