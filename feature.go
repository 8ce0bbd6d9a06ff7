// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import "github.com/gogama/mvt/geometry"

// A FeatureBuilder collects the ID and attributes of one feature. A
// FeatureBuilder is obtained from the Layer the feature is destined
// for, by calling Layer.NewFeature.
type FeatureBuilder struct {
	layer *Layer
	geom  geometry.Geometry
	id    uint64
	hasID bool
	attrs []attr
	keys  map[string]struct{}
}

// ID sets the feature ID. It fails with ErrDuplicateFeatureID if a
// feature with the same ID has already been added to the layer, in
// which case the builder is unchanged.
func (b *FeatureBuilder) ID(id uint64) error {
	if b.layer.hasID(id) {
		return detailErr(ErrDuplicateFeatureID, "%d", id)
	}
	b.id = id
	b.hasID = true
	return nil
}

// Attr adds an attribute. It fails with ErrDuplicateAttributeKey if
// the key was already given for this feature, in which case the
// builder is unchanged. Panics if v is the zero Value.
func (b *FeatureBuilder) Attr(key string, v Value) error {
	if !v.IsValid() {
		fmtPanic("invalid value for attribute %q", key)
	}
	if _, ok := b.keys[key]; ok {
		return detailErr(ErrDuplicateAttributeKey, "%q", key)
	}
	if b.keys == nil {
		b.keys = make(map[string]struct{})
	}
	b.keys[key] = struct{}{}
	b.attrs = append(b.attrs, attr{key: key, value: v})
	return nil
}

// Build returns the finished feature, ready to be added to the layer
// with Layer.Add.
//
// Build fails with ErrDuplicateFeatureID if the ID has been taken by a
// feature added since ID was called. Geometry from a geometry.Encoder,
// and the zero Geometry, always pass the ErrInvalidGeometry check.
func (b *FeatureBuilder) Build() (*Feature, error) {
	if !b.geom.Valid() {
		return nil, detailErr(ErrInvalidGeometry, "%s", b.geom)
	}
	if b.hasID && b.layer.hasID(b.id) {
		return nil, detailErr(ErrDuplicateFeatureID, "%d", b.id)
	}
	return &Feature{
		layer: b.layer,
		id:    b.id,
		hasID: b.hasID,
		geom:  b.geom,
		attrs: append([]attr(nil), b.attrs...),
	}, nil
}

// A Feature is an immutable, validated feature belonging to one
// Layer. Features are created with a FeatureBuilder.
type Feature struct {
	layer *Layer
	id    uint64
	hasID bool
	geom  geometry.Geometry
	attrs []attr
}

// ID returns the feature ID and whether the feature has one.
func (f *Feature) ID() (uint64, bool) {
	return f.id, f.hasID
}

// Geometry returns the feature geometry.
func (f *Feature) Geometry() geometry.Geometry {
	return f.geom
}

// Type returns the feature's geometry type.
func (f *Feature) Type() geometry.Type {
	return f.geom.Type()
}

// NumAttrs returns the number of attributes.
func (f *Feature) NumAttrs() int {
	return len(f.attrs)
}

// Attr returns the value of an attribute and whether the feature has
// it.
func (f *Feature) Attr(key string) (Value, bool) {
	for i := range f.attrs {
		if f.attrs[i].key == key {
			return f.attrs[i].value, true
		}
	}
	return Value{}, false
}

// Keys returns the attribute keys in the order they were added.
func (f *Feature) Keys() []string {
	keys := make([]string, len(f.attrs))
	for i := range f.attrs {
		keys[i] = f.attrs[i].key
	}
	return keys
}
