// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogama/mvt/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile_AddLayer(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		tile := NewTile()
		for _, name := range []string{"water", "roads", "pois"} {
			require.NoError(t, tile.AddLayer(newTestLayer(t, name)))
		}

		assert.Equal(t, 3, tile.Len())
		assert.Equal(t, `Tile{Layers:["water","roads","pois"]}`, tile.String())
		assert.Equal(t, "roads", tile.Layer("roads").Name())
		assert.Nil(t, tile.Layer("buildings"))
	})

	// Two layers named "water": the second AddLayer fails and the tile
	// keeps one layer.
	t.Run("DuplicateLayerName", func(t *testing.T) {
		tile := NewTile()
		first := newTestLayer(t, "water")
		require.NoError(t, tile.AddLayer(first))

		err := tile.AddLayer(newTestLayer(t, "water"))

		assert.ErrorIs(t, err, ErrDuplicateLayerName)
		assert.EqualError(t, err, `mvt: duplicate layer name: "water"`)
		assert.Equal(t, 1, tile.Len())
		assert.Same(t, first, tile.Layer("water"))
	})

	t.Run("NilPanics", func(t *testing.T) {
		assert.PanicsWithValue(t, "mvt: nil layer", func() {
			_ = NewTile().AddLayer(nil)
		})
	})

	t.Run("AfterFinishPanics", func(t *testing.T) {
		tile := NewTile()
		_, err := tile.Finish()
		require.NoError(t, err)

		assert.PanicsWithValue(t, "mvt: AddLayer called on finished tile", func() {
			_ = tile.AddLayer(newTestLayer(t, "late"))
		})
	})

	t.Run("LayerOfAnotherTilePanics", func(t *testing.T) {
		l := newTestLayer(t, "shared")
		require.NoError(t, NewTile().AddLayer(l))
		other := NewTile()

		assert.PanicsWithValue(t, `mvt: layer "shared" already belongs to another tile`, func() {
			_ = other.AddLayer(l)
		})
		assert.Equal(t, 0, other.Len())
	})
}

func TestLayer_Add_Owned(t *testing.T) {
	tile := NewTile()
	l := newTestLayer(t, "roads")
	require.NoError(t, tile.AddLayer(l))

	require.NoError(t, addPoint(t, l, geometry.Point{X: 1, Y: 1}, nil))
	b, err := tile.Finish()
	require.NoError(t, err)
	require.Len(t, decodeTile(t, b).Layers[0].Features, 1)

	assert.PanicsWithValue(t, `mvt: Add called on layer "roads" of finished tile`, func() {
		_ = addPoint(t, l, geometry.Point{X: 2, Y: 2}, nil)
	})
	assert.Equal(t, 1, l.Len())
}

func TestTile_Finish(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		b, err := NewTile().Finish()

		assert.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("Twice", func(t *testing.T) {
		tile := NewTile()
		require.NoError(t, tile.AddLayer(newTestLayer(t, "a")))
		_, err := tile.Finish()
		require.NoError(t, err)

		b, err := tile.Finish()

		assert.ErrorIs(t, err, ErrFinished)
		assert.Nil(t, b)
		_, err = tile.WriteTo(&bytes.Buffer{})
		assert.ErrorIs(t, err, ErrFinished)
		_, err = tile.MarshalGzipped()
		assert.ErrorIs(t, err, ErrFinished)
	})

	t.Run("States", func(t *testing.T) {
		tile := NewTile()
		assert.Equal(t, empty, tile.state)
		require.NoError(t, tile.AddLayer(newTestLayer(t, "a")))
		assert.Equal(t, building, tile.state)
		require.NoError(t, tile.AddLayer(newTestLayer(t, "b")))
		assert.Equal(t, building, tile.state)
		_, err := tile.Finish()
		require.NoError(t, err)
		assert.Equal(t, finished, tile.state)
	})
}

func TestTile_Finish_Scenario(t *testing.T) {
	tile := roadsTile(t)
	var b []byte
	var err error

	require.NotPanics(t, func() { b, err = tile.Finish() })

	require.NoError(t, err)
	expected := []byte{
		0x1a, 0x30, // layers, 48 bytes
		0x78, 0x02, // version 2
		0x0a, 0x05, 'r', 'o', 'a', 'd', 's', // name "roads"
		0x12, 0x10, // features, 16 bytes
		0x12, 0x02, 0x00, 0x00, // tags [0, 0]
		0x18, 0x02, // type LineString
		0x22, 0x08, 0x09, 0x00, 0x00, 0x12, 0x14, 0x00, 0x00, 0x14, // geometry
		0x1a, 0x05, 'c', 'l', 'a', 's', 's', // keys "class"
		0x22, 0x09, 0x0a, 0x07, 'p', 'r', 'i', 'm', 'a', 'r', 'y', // values "primary"
		0x28, 0x80, 0x20, // extent 4096
	}
	assert.Equal(t, expected, b)
}

func TestStateful(t *testing.T) {
	for _, s := range []state{empty, building, finished} {
		assert.Zero(t, s&invalid, "state 0x%x", s)
	}

	t.Run("InvalidPanics", func(t *testing.T) {
		s := stateful{state: building | invalid}

		assert.PanicsWithValue(t, "mvt: logic error: invalid state 0x11", func() {
			_ = s.finish()
		})
	})

	t.Run("UnexpectedTransition", func(t *testing.T) {
		s := stateful{state: finished}

		err := s.toState(empty, building)

		assert.ErrorIs(t, err, errUnexpectedState)
		assert.Equal(t, finished, s.state)
	})
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestTile_WriteTo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tile := roadsTile(t)
		var buf bytes.Buffer

		n, err := tile.WriteTo(&buf)

		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)
		assert.Len(t, decodeTile(t, buf.Bytes()).Layers, 1)
	})

	t.Run("WriterErrorPassedThrough", func(t *testing.T) {
		cause := errors.New("disk full")

		n, err := roadsTile(t).WriteTo(failWriter{cause})

		assert.Same(t, cause, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("GzipWriterErrorPassedThrough", func(t *testing.T) {
		cause := errors.New("disk full")

		err := roadsTile(t).WriteGzipped(failWriter{cause})

		assert.ErrorIs(t, err, cause)
	})
}

// roadsTile builds a tile with one layer "roads", extent 4096, holding
// one LineString feature through (0,0), (10,0), (10,10) with attribute
// class=primary.
func roadsTile(t *testing.T) *Tile {
	t.Helper()
	l := newTestLayer(t, "roads", WithExtent(4096))
	g, err := geometry.EncodeLineString([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	b := l.NewFeature(g)
	require.NoError(t, b.Attr("class", String("primary")))
	f, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, l.Add(f))
	tile := NewTile()
	require.NoError(t, tile.AddLayer(l))
	return tile
}

func TestScenario_Roads(t *testing.T) {
	b, err := roadsTile(t).Finish()
	require.NoError(t, err)

	actual := decodeTile(t, b)

	require.Len(t, actual.Layers, 1)
	l := actual.Layers[0]
	assert.Equal(t, uint32(2), l.Version)
	assert.Equal(t, "roads", l.Name)
	assert.Equal(t, uint32(4096), l.Extent)
	assert.Equal(t, []string{"class"}, l.Keys)
	assert.Equal(t, []Value{String("primary")}, l.Values)
	require.Len(t, l.Features, 1)
	f := l.Features[0]
	assert.False(t, f.HasID)
	assert.Equal(t, uint64(geometry.TypeLineString), f.Type)
	assert.Equal(t, []uint32{0, 0}, f.Tags)
	assert.Equal(t, []uint32{
		uint32(geometry.Command(geometry.MoveTo, 1)), 0, 0,
		uint32(geometry.Command(geometry.LineTo, 2)), geometry.ZigZag(10), 0, 0, geometry.ZigZag(10),
	}, f.Geometry)
}

func TestScenario_DegeneratePolygon(t *testing.T) {
	g, err := geometry.EncodePolygon([][]geometry.Point{{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}})

	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.True(t, g.IsEmpty())
}

func TestGeometryTypeConsistency(t *testing.T) {
	l := newTestLayer(t, "mixed")
	mp, err := geometry.EncodeMultiPoint([]geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	require.NoError(t, err)
	poly, err := geometry.EncodeMultiPolygon([][][]geometry.Point{
		{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, {{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}}},
		{{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}}},
	})
	require.NoError(t, err)
	for _, g := range []geometry.Geometry{mp, poly} {
		f, err := l.NewFeature(g).Build()
		require.NoError(t, err)
		require.NoError(t, l.Add(f))
	}
	tile := NewTile()
	require.NoError(t, tile.AddLayer(l))
	b, err := tile.Finish()
	require.NoError(t, err)

	features := decodeTile(t, b).Layers[0].Features

	count := func(data []uint32) map[geometry.CommandID]int {
		counts := make(map[geometry.CommandID]int)
		for i := 0; i < len(data); {
			id, n := geometry.SplitCommand(data[i])
			counts[id]++
			i++
			if id != geometry.ClosePath {
				i += 2 * n
			}
		}
		return counts
	}
	require.Len(t, features, 2)
	assert.Equal(t, uint64(geometry.TypePoint), features[0].Type)
	assert.Equal(t, map[geometry.CommandID]int{geometry.MoveTo: 1}, count(features[0].Geometry))
	assert.Equal(t, uint64(geometry.TypePolygon), features[1].Type)
	assert.Equal(t, 3, count(features[1].Geometry)[geometry.ClosePath])
}
