// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orbgeom

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/gogama/mvt"
	"github.com/paulmach/orb/geojson"
)

// AddFeature converts a GeoJSON feature and adds it to a layer.
//
// The feature's geometry is converted with Geometry and its properties
// with Value, in ascending key order. Properties whose value is nil
// are skipped. A numeric ID that is a non-negative integer becomes the
// feature ID, and so does a string ID holding one, such as "42". Other
// string IDs, such as "way/1", are dropped and the feature is added
// without an ID. Any other non-nil ID fails with ErrInvalidID.
//
// Errors from the layer, such as mvt.ErrDuplicateFeatureID, are
// returned wrapped. On error the layer is left unchanged.
func AddFeature(l *mvt.Layer, f *geojson.Feature) (*mvt.Feature, error) {
	g, err := Geometry(f.Geometry)
	if err != nil {
		return nil, err
	}

	b := l.NewFeature(g)
	if id, ok, err := featureID(f.ID); err != nil {
		return nil, err
	} else if ok {
		if err = b.ID(id); err != nil {
			return nil, wrapErr("feature %d", err, id)
		}
	}

	keys := make([]string, 0, len(f.Properties))
	for k, v := range f.Properties {
		if v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := Value(f.Properties[k])
		if err != nil {
			return nil, wrapErr("property %q", err, k)
		}
		if err = b.Attr(k, v); err != nil {
			return nil, err
		}
	}

	feat, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err = l.Add(feat); err != nil {
		return nil, err
	}
	return feat, nil
}

// AddFeatures adds every feature of a collection to a layer, stopping
// at the first error. It returns the number of features added.
func AddFeatures(l *mvt.Layer, fc *geojson.FeatureCollection) (int, error) {
	for i, f := range fc.Features {
		if _, err := AddFeature(l, f); err != nil {
			return i, wrapErr("feature index %d", err, i)
		}
	}
	return len(fc.Features), nil
}

func featureID(id interface{}) (uint64, bool, error) {
	switch t := id.(type) {
	case nil:
		return 0, false, nil
	case string:
		n, err := strconv.ParseUint(t, 10, 64)
		return n, err == nil, nil
	case float64:
		if t >= 0 && t == math.Trunc(t) && t < math.MaxUint64 {
			return uint64(t), true, nil
		}
	case int:
		if t >= 0 {
			return uint64(t), true, nil
		}
	case int32:
		if t >= 0 {
			return uint64(t), true, nil
		}
	case int64:
		if t >= 0 {
			return uint64(t), true, nil
		}
	case uint:
		return uint64(t), true, nil
	case uint32:
		return uint64(t), true, nil
	case uint64:
		return t, true, nil
	}
	return 0, false, fmt.Errorf("%w: %v", ErrInvalidID, id)
}
