// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

func (id CommandID) String() string {
	switch id {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case ClosePath:
		return "ClosePath"
	default:
		return "CommandID(" + strconv.Itoa(int(id)) + ")"
	}
}

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Collinear"
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (b Box) String() string {
	if b.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d,%d,%d]", b.XMin, b.YMin, b.XMax, b.YMax)
}

func (g Geometry) String() string {
	var b strings.Builder
	b.WriteString("Geometry{Type:")
	b.WriteString(g.typ.String())
	b.WriteString(",Len:")
	b.WriteString(strconv.Itoa(len(g.data)))
	b.WriteString(",Bounds:")
	b.WriteString(g.Bounds().String())
	b.WriteByte('}')
	return b.String()
}
