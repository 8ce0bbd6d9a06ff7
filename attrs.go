// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

// An attr is one key/value attribute pair of a feature, before
// interning.
type attr struct {
	key   string
	value Value
}

// attrTable is a layer's attribute table: the ordered, de-duplicated
// keys and values referenced by index from feature tag lists.
//
// Both lists are append-only. An index, once handed out, refers to
// the same key or value for the life of the table.
type attrTable struct {
	keys     []string
	keyIndex map[string]uint32

	values     []Value
	valueIndex map[Value]uint32
}

func newAttrTable() attrTable {
	return attrTable{
		keyIndex:   make(map[string]uint32),
		valueIndex: make(map[Value]uint32),
	}
}

// internKey returns the index of a key, appending it to the table if
// it is not already present.
func (t *attrTable) internKey(k string) uint32 {
	if i, ok := t.keyIndex[k]; ok {
		return i
	}
	i := uint32(len(t.keys))
	t.keys = append(t.keys, k)
	t.keyIndex[k] = i
	return i
}

// internValue returns the index of a value, appending it to the table
// if it is not already present.
func (t *attrTable) internValue(v Value) uint32 {
	if i, ok := t.valueIndex[v]; ok {
		return i
	}
	i := uint32(len(t.values))
	t.values = append(t.values, v)
	t.valueIndex[v] = i
	return i
}

// intern interns a list of attributes and returns the flattened
// key-index/value-index tag list.
func (t *attrTable) intern(attrs []attr) []uint32 {
	if len(attrs) == 0 {
		return nil
	}
	tags := make([]uint32, 0, 2*len(attrs))
	for i := range attrs {
		tags = append(tags, t.internKey(attrs[i].key), t.internValue(attrs[i].value))
	}
	return tags
}
