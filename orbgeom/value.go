// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orbgeom

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/gogama/mvt"
)

// Value converts a Go value, typically a GeoJSON property, to a tile
// value.
//
// Strings and fmt.Stringers become String values, signed integers
// become Sint, unsigned integers become Uint, float32 becomes Float
// and bool becomes Bool. A float64 becomes Sint when it holds an exact
// integer in the int64 range, since JSON decoding yields float64 for
// every number, and Double otherwise. Maps and slices are stored as
// their JSON encoding. A nil value is rejected with
// ErrUnsupportedValue.
func Value(v interface{}) (mvt.Value, error) {
	switch t := v.(type) {
	case nil:
		return mvt.Value{}, fmt.Errorf("%w: nil", ErrUnsupportedValue)
	case string:
		return mvt.String(t), nil
	case bool:
		return mvt.Bool(t), nil
	case int:
		return mvt.Sint(int64(t)), nil
	case int8:
		return mvt.Sint(int64(t)), nil
	case int16:
		return mvt.Sint(int64(t)), nil
	case int32:
		return mvt.Sint(int64(t)), nil
	case int64:
		return mvt.Sint(t), nil
	case uint:
		return mvt.Uint(uint64(t)), nil
	case uint8:
		return mvt.Uint(uint64(t)), nil
	case uint16:
		return mvt.Uint(uint64(t)), nil
	case uint32:
		return mvt.Uint(uint64(t)), nil
	case uint64:
		return mvt.Uint(t), nil
	case float32:
		return mvt.Float(t), nil
	case float64:
		if t == math.Trunc(t) && t >= math.MinInt64 && t < math.MaxInt64 {
			return mvt.Sint(int64(t)), nil
		}
		return mvt.Double(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return mvt.Sint(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return mvt.Value{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		return mvt.Double(f), nil
	case fmt.Stringer:
		return mvt.String(t.String()), nil
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := json.Marshal(v)
		if err != nil {
			return mvt.Value{}, wrapErr("value of type %T", err, v)
		}
		return mvt.String(string(data)), nil
	default:
		return mvt.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
