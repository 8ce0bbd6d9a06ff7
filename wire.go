// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// wireEncoder walks a tile's layers and appends their protobuf
// encoding to a buffer. All validation happened while the tile was
// built, so nothing here can fail.
//
// Nested messages are encoded into scratch buffers first, since
// protobuf length-prefixes each sub-message.
type wireEncoder struct {
	layer   []byte
	feature []byte
	value   []byte
	cmds    []uint32
}

func (e *wireEncoder) appendTile(b []byte, layers []*Layer) []byte {
	for _, l := range layers {
		e.layer = e.appendLayer(e.layer[:0], l)
		b = protowire.AppendTag(b, tileLayersField, protowire.BytesType)
		b = protowire.AppendBytes(b, e.layer)
	}
	return b
}

func (e *wireEncoder) appendLayer(b []byte, l *Layer) []byte {
	b = protowire.AppendTag(b, layerVersionField, protowire.VarintType)
	b = protowire.AppendVarint(b, Version)

	b = protowire.AppendTag(b, layerNameField, protowire.BytesType)
	b = protowire.AppendString(b, l.name)

	for i := range l.features {
		e.feature = e.appendFeature(e.feature[:0], &l.features[i])
		b = protowire.AppendTag(b, layerFeaturesField, protowire.BytesType)
		b = protowire.AppendBytes(b, e.feature)
	}

	for _, k := range l.attrs.keys {
		b = protowire.AppendTag(b, layerKeysField, protowire.BytesType)
		b = protowire.AppendString(b, k)
	}

	for _, v := range l.attrs.values {
		e.value = appendValue(e.value[:0], v)
		b = protowire.AppendTag(b, layerValuesField, protowire.BytesType)
		b = protowire.AppendBytes(b, e.value)
	}

	b = protowire.AppendTag(b, layerExtentField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(l.extent))

	return b
}

func (e *wireEncoder) appendFeature(b []byte, f *feature) []byte {
	if f.hasID {
		b = protowire.AppendTag(b, featureIDField, protowire.VarintType)
		b = protowire.AppendVarint(b, f.id)
	}

	b = appendPacked(b, featureTagsField, f.tags)

	b = protowire.AppendTag(b, featureTypeField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.geom.Type()))

	e.cmds = f.geom.AppendCommands(e.cmds[:0])
	b = appendPacked(b, featureGeometryField, e.cmds)

	return b
}

// appendPacked appends a packed repeated uint32 field. Nothing is
// appended for an empty list.
func appendPacked(b []byte, num protowire.Number, vs []uint32) []byte {
	if len(vs) == 0 {
		return b
	}
	var n int
	for _, v := range vs {
		n += protowire.SizeVarint(uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(n))
	for _, v := range vs {
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

// appendValue appends the body of a Value message. Each ValueType is
// numerically equal to the field number of its Value member.
func appendValue(b []byte, v Value) []byte {
	num := protowire.Number(v.typ)
	switch v.typ {
	case ValueString:
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v.s)
	case ValueFloat:
		b = protowire.AppendTag(b, num, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, uint32(v.n))
	case ValueDouble:
		b = protowire.AppendTag(b, num, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, v.n)
	case ValueInt, ValueUint, ValueBool:
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, v.n)
	case ValueSint:
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v.n)))
	default:
		fmtPanic("logic error: invalid value type %d", v.typ)
	}
	return b
}
