// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"strconv"
	"strings"
)

func (t ValueType) String() string {
	switch t {
	case ValueString:
		return "String"
	case ValueFloat:
		return "Float"
	case ValueDouble:
		return "Double"
	case ValueInt:
		return "Int"
	case ValueUint:
		return "Uint"
	case ValueSint:
		return "Sint"
	case ValueBool:
		return "Bool"
	default:
		return "ValueType(" + strconv.Itoa(int(t)) + ")"
	}
}

func (v Value) String() string {
	var s string
	switch x := v.Interface().(type) {
	case string:
		s = strconv.Quote(x)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case bool:
		s = strconv.FormatBool(x)
	default:
		return "Value(<invalid>)"
	}
	return v.typ.String() + "(" + s + ")"
}

func (f *Feature) String() string {
	var b strings.Builder
	b.WriteString("Feature{")
	if f.hasID {
		b.WriteString("ID:")
		b.WriteString(strconv.FormatUint(f.id, 10))
		b.WriteByte(',')
	}
	b.WriteString("Geometry:")
	b.WriteString(f.geom.String())
	b.WriteString(",Attrs:{")
	for i := range f.attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.attrs[i].key)
		b.WriteByte(':')
		b.WriteString(f.attrs[i].value.String())
	}
	b.WriteString("}}")
	return b.String()
}

func (l *Layer) String() string {
	var b strings.Builder
	b.WriteString("Layer{Name:")
	b.WriteString(strconv.Quote(l.name))
	b.WriteString(",Version:")
	b.WriteString(strconv.Itoa(Version))
	b.WriteString(",Extent:")
	b.WriteString(strconv.FormatUint(uint64(l.extent), 10))
	b.WriteString(",Features:")
	b.WriteString(strconv.Itoa(len(l.features)))
	b.WriteString(",Keys:")
	b.WriteString(strconv.Itoa(len(l.attrs.keys)))
	b.WriteString(",Values:")
	b.WriteString(strconv.Itoa(len(l.attrs.values)))
	b.WriteByte('}')
	return b.String()
}

func (t *Tile) String() string {
	var b strings.Builder
	b.WriteString("Tile{Layers:[")
	for i, l := range t.layers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(l.name))
	}
	b.WriteString("]}")
	return b.String()
}
