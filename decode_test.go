// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// The pb* types are a plain mirror of the MVT protobuf schema, filled
// in by decodeTile so that tests can check emitted bytes field by
// field without going through the builder.
type pbTile struct {
	Layers []pbLayer
}

type pbLayer struct {
	Version  uint32
	Name     string
	Features []pbFeature
	Keys     []string
	Values   []Value
	Extent   uint32
	// Order lists field numbers in the order they appeared.
	Order []protowire.Number
}

type pbFeature struct {
	ID       uint64
	HasID    bool
	Tags     []uint32
	Type     uint64
	HasType  bool
	Geometry []uint32
}

// fields calls f once per field of a protobuf message. f receives the
// remaining bytes positioned at the field value and must return the
// number of bytes it consumed.
func fields(t *testing.T, b []byte, f func(num protowire.Number, typ protowire.Type, b []byte) int) {
	t.Helper()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.GreaterOrEqual(t, n, 0, "tag: %v", protowire.ParseError(n))
		b = b[n:]
		n = f(num, typ, b)
		require.GreaterOrEqual(t, n, 0, "field %d: %v", num, protowire.ParseError(n))
		b = b[n:]
	}
}

func bytesField(t *testing.T, typ protowire.Type, b []byte) ([]byte, int) {
	t.Helper()
	require.Equal(t, protowire.BytesType, typ)
	return protowire.ConsumeBytes(b)
}

func varintField(t *testing.T, typ protowire.Type, b []byte) (uint64, int) {
	t.Helper()
	require.Equal(t, protowire.VarintType, typ)
	return protowire.ConsumeVarint(b)
}

func packedField(t *testing.T, typ protowire.Type, b []byte) ([]uint32, int) {
	t.Helper()
	p, n := bytesField(t, typ, b)
	require.GreaterOrEqual(t, n, 0)
	var vs []uint32
	for len(p) > 0 {
		v, m := protowire.ConsumeVarint(p)
		require.GreaterOrEqual(t, m, 0)
		require.LessOrEqual(t, v, uint64(^uint32(0)))
		vs = append(vs, uint32(v))
		p = p[m:]
	}
	return vs, n
}

func decodeTile(t *testing.T, b []byte) pbTile {
	t.Helper()
	var tile pbTile
	fields(t, b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		require.Equal(t, protowire.Number(tileLayersField), num)
		p, n := bytesField(t, typ, b)
		tile.Layers = append(tile.Layers, decodeLayer(t, p))
		return n
	})
	return tile
}

func decodeLayer(t *testing.T, b []byte) pbLayer {
	t.Helper()
	var l pbLayer
	fields(t, b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		l.Order = append(l.Order, num)
		switch num {
		case layerVersionField:
			v, n := varintField(t, typ, b)
			l.Version = uint32(v)
			return n
		case layerNameField:
			p, n := bytesField(t, typ, b)
			l.Name = string(p)
			return n
		case layerFeaturesField:
			p, n := bytesField(t, typ, b)
			l.Features = append(l.Features, decodeFeature(t, p))
			return n
		case layerKeysField:
			p, n := bytesField(t, typ, b)
			l.Keys = append(l.Keys, string(p))
			return n
		case layerValuesField:
			p, n := bytesField(t, typ, b)
			l.Values = append(l.Values, decodeValue(t, p))
			return n
		case layerExtentField:
			v, n := varintField(t, typ, b)
			l.Extent = uint32(v)
			return n
		default:
			t.Fatalf("unexpected layer field %d", num)
			return -1
		}
	})
	return l
}

func decodeFeature(t *testing.T, b []byte) pbFeature {
	t.Helper()
	var f pbFeature
	fields(t, b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var n int
		switch num {
		case featureIDField:
			f.ID, n = varintField(t, typ, b)
			f.HasID = true
		case featureTagsField:
			f.Tags, n = packedField(t, typ, b)
		case featureTypeField:
			f.Type, n = varintField(t, typ, b)
			f.HasType = true
		case featureGeometryField:
			f.Geometry, n = packedField(t, typ, b)
		default:
			t.Fatalf("unexpected feature field %d", num)
		}
		return n
	})
	return f
}

func decodeValue(t *testing.T, b []byte) Value {
	t.Helper()
	var v Value
	var count int
	fields(t, b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		count++
		switch ValueType(num) {
		case ValueString:
			p, n := bytesField(t, typ, b)
			v = String(string(p))
			return n
		case ValueFloat:
			require.Equal(t, protowire.Fixed32Type, typ)
			x, n := protowire.ConsumeFixed32(b)
			v = Value{typ: ValueFloat, n: uint64(x)}
			return n
		case ValueDouble:
			require.Equal(t, protowire.Fixed64Type, typ)
			x, n := protowire.ConsumeFixed64(b)
			v = Value{typ: ValueDouble, n: x}
			return n
		case ValueInt:
			x, n := varintField(t, typ, b)
			v = Int(int64(x))
			return n
		case ValueUint:
			x, n := varintField(t, typ, b)
			v = Uint(x)
			return n
		case ValueSint:
			x, n := varintField(t, typ, b)
			v = Sint(protowire.DecodeZigZag(x))
			return n
		case ValueBool:
			x, n := varintField(t, typ, b)
			v = Bool(protowire.DecodeBool(x))
			return n
		default:
			t.Fatalf("unexpected value field %d", num)
			return -1
		}
	})
	require.Equal(t, 1, count, "value must set exactly one member")
	return v
}
