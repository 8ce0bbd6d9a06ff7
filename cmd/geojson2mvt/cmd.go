// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogama/mvt"
	"github.com/gogama/mvt/geometry"
	"github.com/gogama/mvt/orbgeom"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "geojson2mvt",
		Short:         "Convert tile-local GeoJSON into a Mapbox Vector Tile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	addFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	tile, err := buildTile(log, cfg)
	if err != nil {
		return err
	}

	if cfg.Out == "-" {
		return writeTile(log, cmd.OutOrStdout(), tile, cfg.Gzip)
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err = writeTile(log, f, tile, cfg.Gzip); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func buildTile(log *logrus.Logger, cfg *config) (*mvt.Tile, error) {
	tile := mvt.NewTile()
	for _, src := range cfg.Layers {
		l, err := mvt.NewLayer(src.Name, mvt.WithExtent(cfg.Extent))
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", src.Name, err)
		}

		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", src.Name, err)
		}
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("layer %s: parse %s: %w", src.Name, src.Path, err)
		}
		if _, err = orbgeom.AddFeatures(l, fc); err != nil {
			return nil, fmt.Errorf("layer %s: %w", src.Name, err)
		}
		if err = tile.AddLayer(l); err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"layer":    l.Name(),
			"source":   src.Path,
			"features": l.Len(),
			"keys":     len(l.Keys()),
			"values":   len(l.Values()),
			"bounds":   l.Bounds().String(),
		}).Debug("layer built")
		if b := l.Bounds(); outside(b, l.Extent()) {
			log.WithField("layer", l.Name()).Warnf("geometry extends past extent %d: %s", l.Extent(), b)
		}
	}
	return tile, nil
}

// outside reports whether a non-empty box reaches past the square
// [0, extent] on either axis.
func outside(b geometry.Box, extent uint32) bool {
	if b.IsEmpty() {
		return false
	}
	e := int64(extent)
	return b.XMin < 0 || b.YMin < 0 || int64(b.XMax) > e || int64(b.YMax) > e
}

func writeTile(log *logrus.Logger, w io.Writer, tile *mvt.Tile, gzipped bool) error {
	var n int64
	if gzipped {
		cw := &countingWriter{w: w}
		if err := tile.WriteGzipped(cw); err != nil {
			return err
		}
		n = cw.n
	} else {
		var err error
		if n, err = tile.WriteTo(w); err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{
		"layers": tile.Len(),
		"bytes":  n,
		"gzip":   gzipped,
	}).Info("tile written")
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
