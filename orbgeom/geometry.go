// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orbgeom

import (
	"fmt"
	"math"

	"github.com/gogama/mvt/geometry"
	"github.com/paulmach/orb"
)

// Geometry encodes an orb geometry as tile geometry.
//
// Point and MultiPoint become point geometry, LineString and
// MultiLineString become line string geometry, and Ring, Polygon,
// MultiPolygon and Bound become polygon geometry. Polygon rings may be
// given open or closed. A nil geometry yields the empty geometry of
// unknown type. Collections are rejected with ErrUnsupportedGeometry.
func Geometry(g orb.Geometry) (geometry.Geometry, error) {
	switch g := g.(type) {
	case nil:
		return geometry.Geometry{}, nil
	case orb.Point:
		p, err := point(g)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.EncodePoint(p), nil
	case orb.MultiPoint:
		ps, err := points(g)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.EncodeMultiPoint(ps)
	case orb.LineString:
		ps, err := points(g)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.EncodeLineString(ps)
	case orb.MultiLineString:
		paths, err := multiPoints(g, func(ls orb.LineString) []orb.Point { return ls })
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.EncodeMultiLineString(paths)
	case orb.Ring:
		return Geometry(orb.Polygon{g})
	case orb.Polygon:
		rings, err := multiPoints(g, func(r orb.Ring) []orb.Point { return r })
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.EncodePolygon(rings)
	case orb.MultiPolygon:
		polygons := make([][][]geometry.Point, len(g))
		for i := range g {
			rings, err := multiPoints(g[i], func(r orb.Ring) []orb.Point { return r })
			if err != nil {
				return geometry.Geometry{}, err
			}
			polygons[i] = rings
		}
		return geometry.EncodeMultiPolygon(polygons)
	case orb.Bound:
		return Geometry(g.ToPolygon())
	default:
		return geometry.Geometry{}, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}

func point(p orb.Point) (geometry.Point, error) {
	x, y := math.Round(p[0]), math.Round(p[1])
	if !inRange(x) || !inRange(y) {
		return geometry.Point{}, fmt.Errorf("%w: %v", ErrCoordinateRange, p)
	}
	return geometry.Point{X: int32(x), Y: int32(y)}, nil
}

func inRange(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func points(src []orb.Point) ([]geometry.Point, error) {
	dst := make([]geometry.Point, len(src))
	for i := range src {
		p, err := point(src[i])
		if err != nil {
			return nil, err
		}
		dst[i] = p
	}
	return dst, nil
}

func multiPoints[T any](src []T, f func(T) []orb.Point) ([][]geometry.Point, error) {
	dst := make([][]geometry.Point, len(src))
	for i := range src {
		ps, err := points(f(src[i]))
		if err != nil {
			return nil, err
		}
		dst[i] = ps
	}
	return dst, nil
}
