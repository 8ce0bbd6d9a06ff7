// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import "math"

// ValueType identifies which member of the MVT Value message a Value
// holds. The numeric values are the protobuf field numbers of the
// corresponding Value members.
type ValueType uint8

const (
	ValueString ValueType = 1
	ValueFloat  ValueType = 2
	ValueDouble ValueType = 3
	ValueInt    ValueType = 4
	ValueUint   ValueType = 5
	ValueSint   ValueType = 6
	ValueBool   ValueType = 7
)

// A Value is an attribute value. It holds exactly one of the seven
// value types allowed by MVT.
//
// Values are comparable with ==, and two Values are equal only if they
// have the same type and the same content: String("1") and Int(1) are
// different values, and so are Int(1) and Uint(1). Floating point
// values compare by bit pattern, so a NaN equals an identical NaN and
// positive and negative zero are different.
//
// The zero Value is invalid and may not be used as an attribute.
type Value struct {
	typ ValueType
	s   string
	n   uint64
}

// String returns a string value.
func String(v string) Value {
	return Value{typ: ValueString, s: v}
}

// Float returns a single precision floating point value.
func Float(v float32) Value {
	return Value{typ: ValueFloat, n: uint64(math.Float32bits(v))}
}

// Double returns a double precision floating point value.
func Double(v float64) Value {
	return Value{typ: ValueDouble, n: math.Float64bits(v)}
}

// Int returns a signed integer value encoded as a protobuf int64.
func Int(v int64) Value {
	return Value{typ: ValueInt, n: uint64(v)}
}

// Uint returns an unsigned integer value.
func Uint(v uint64) Value {
	return Value{typ: ValueUint, n: v}
}

// Sint returns a signed integer value encoded as a protobuf sint64,
// which is more compact than Int for negative numbers.
func Sint(v int64) Value {
	return Value{typ: ValueSint, n: uint64(v)}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{typ: ValueBool, n: n}
}

// Type returns the value type, or zero for the zero Value.
func (v Value) Type() ValueType {
	return v.typ
}

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool {
	return v.typ >= ValueString && v.typ <= ValueBool
}

// Interface returns the value as a Go value of type string, float32,
// float64, int64, uint64 or bool. Both ValueInt and ValueSint values
// are returned as int64. Returns nil for the zero Value.
func (v Value) Interface() interface{} {
	switch v.typ {
	case ValueString:
		return v.s
	case ValueFloat:
		return math.Float32frombits(uint32(v.n))
	case ValueDouble:
		return math.Float64frombits(v.n)
	case ValueInt, ValueSint:
		return int64(v.n)
	case ValueUint:
		return v.n
	case ValueBool:
		return v.n != 0
	default:
		return nil
	}
}
