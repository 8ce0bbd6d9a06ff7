// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// An Encoder builds the command stream for one geometry of a fixed
// type.
//
// Point encoders collect points with Points and emit them as a single
// MoveTo when Finish is called. LineString encoders take one sub-path
// per call to Path, and Polygon encoders one ring per call to Ring.
// Calls which fail leave the encoder exactly as it was before the
// call.
//
// Finish hands the encoder's buffer over to the returned Geometry and
// resets the encoder, so an Encoder can be reused for the next
// geometry of the same type.
type Encoder struct {
	typ     Type
	cursor  Cursor
	data    []uint32
	pending []Point
	parts   int
	bounds  Box
}

// NewEncoder returns an encoder for geometries of a given type. Panics
// if the type is TypeUnknown or not a valid Type.
func NewEncoder(t Type) *Encoder {
	switch t {
	case TypePoint, TypeLineString, TypePolygon:
		return &Encoder{typ: t, bounds: EmptyBox}
	default:
		fmtPanic("no encoder for geometry type %s", t)
		return nil
	}
}

// Type returns the type of geometry the encoder produces.
func (e *Encoder) Type() Type {
	return e.typ
}

func (e *Encoder) mustBe(t Type, method string) {
	if e.typ != t {
		fmtPanic("%s called on %s encoder", method, e.typ)
	}
}

// Points adds one or more points to a Point encoder. Panics if the
// encoder is not a Point encoder.
func (e *Encoder) Points(ps ...Point) error {
	e.mustBe(TypePoint, "Points")
	if len(e.pending)+len(ps) > MaxCount {
		return detailErr(ErrCountOverflow, "%d points", len(e.pending)+len(ps))
	}
	e.pending = append(e.pending, ps...)
	return nil
}

// Path adds a sub-path to a LineString encoder. The path must have at
// least two vertices. Panics if the encoder is not a LineString
// encoder.
func (e *Encoder) Path(ps []Point) error {
	e.mustBe(TypeLineString, "Path")
	if len(ps) < 2 {
		return detailErr(ErrDegenerate, "path %d has %d vertices, need at least 2", e.parts, len(ps))
	} else if len(ps)-1 > MaxCount {
		return detailErr(ErrCountOverflow, "path %d has %d vertices", e.parts, len(ps))
	}
	e.moveTo(ps[0])
	e.lineTo(ps[1:])
	e.parts++
	return nil
}

// Ring adds a ring to a Polygon encoder. The ring may be given open
// or closed; a closing vertex equal to the first vertex is dropped.
// After that, the ring must have at least three distinct vertices.
// Winding order is not checked. Panics if the encoder is not a Polygon
// encoder.
func (e *Encoder) Ring(ps []Point) error {
	e.mustBe(TypePolygon, "Ring")
	ps = normalizeRing(ps)
	if !hasDistinct(ps, 3) {
		return detailErr(ErrDegenerate, "ring %d has fewer than 3 distinct vertices", e.parts)
	} else if len(ps)-1 > MaxCount {
		return detailErr(ErrCountOverflow, "ring %d has %d vertices", e.parts, len(ps))
	}
	e.moveTo(ps[0])
	e.lineTo(ps[1:])
	e.data = append(e.data, Command(ClosePath, 1))
	e.parts++
	return nil
}

// Finish returns the finished geometry and resets the encoder. It
// fails if nothing was added to the encoder, in which case the encoder
// is left unchanged.
func (e *Encoder) Finish() (Geometry, error) {
	switch e.typ {
	case TypePoint:
		if len(e.pending) == 0 {
			return Geometry{}, detailErr(ErrDegenerate, "no points")
		}
		e.data = make([]uint32, 0, 1+2*len(e.pending))
		e.data = append(e.data, Command(MoveTo, len(e.pending)))
		e.points(e.pending)
	case TypeLineString:
		if e.parts == 0 {
			return Geometry{}, detailErr(ErrDegenerate, "no paths")
		}
	case TypePolygon:
		if e.parts == 0 {
			return Geometry{}, detailErr(ErrDegenerate, "no rings")
		}
	default:
		textPanic("logic error: encoder has invalid type")
	}

	g := Geometry{typ: e.typ, data: e.data, bounds: e.bounds}
	*e = Encoder{typ: e.typ, bounds: EmptyBox}
	return g, nil
}

func (e *Encoder) moveTo(p Point) {
	e.data = append(e.data, Command(MoveTo, 1))
	e.points([]Point{p})
}

func (e *Encoder) lineTo(ps []Point) {
	e.data = append(e.data, Command(LineTo, len(ps)))
	e.points(ps)
}

func (e *Encoder) points(ps []Point) {
	for _, p := range ps {
		dx, dy := e.cursor.Delta(p)
		e.data = append(e.data, dx, dy)
		e.bounds.ExpandPoint(p)
	}
}

// EncodePoint encodes a single point.
func EncodePoint(p Point) Geometry {
	e := NewEncoder(TypePoint)
	_ = e.Points(p)
	g, _ := e.Finish()
	return g
}

// EncodeMultiPoint encodes a set of points as one MoveTo command. The
// set must not be empty.
func EncodeMultiPoint(ps []Point) (Geometry, error) {
	e := NewEncoder(TypePoint)
	if err := e.Points(ps...); err != nil {
		return Geometry{}, err
	}
	return e.Finish()
}

// EncodeLineString encodes a single path.
func EncodeLineString(ps []Point) (Geometry, error) {
	return EncodeMultiLineString([][]Point{ps})
}

// EncodeMultiLineString encodes one or more paths.
func EncodeMultiLineString(paths [][]Point) (Geometry, error) {
	e := NewEncoder(TypeLineString)
	for _, ps := range paths {
		if err := e.Path(ps); err != nil {
			return Geometry{}, err
		}
	}
	return e.Finish()
}

// EncodePolygon encodes one polygon given as its exterior ring
// followed by zero or more interior rings.
func EncodePolygon(rings [][]Point) (Geometry, error) {
	return EncodeMultiPolygon([][][]Point{rings})
}

// EncodeMultiPolygon encodes one or more polygons. Rings are emitted
// in the order given, and the caller is responsible for winding each
// exterior ring clockwise and each interior ring counter-clockwise.
func EncodeMultiPolygon(polygons [][][]Point) (Geometry, error) {
	e := NewEncoder(TypePolygon)
	for _, rings := range polygons {
		for _, ps := range rings {
			if err := e.Ring(ps); err != nil {
				return Geometry{}, err
			}
		}
	}
	return e.Finish()
}
