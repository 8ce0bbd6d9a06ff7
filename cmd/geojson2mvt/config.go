// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/gogama/mvt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	layerFlag    = "layer"
	extentFlag   = "extent"
	gzipFlag     = "gzip"
	outFlag      = "out"
	logLevelFlag = "log-level"
	configFlag   = "config"

	envPrefix = "GEOJSON2MVT"
)

type config struct {
	Layers   []layerSource
	Extent   uint32
	Gzip     bool
	Out      string
	LogLevel string
}

type layerSource struct {
	Name string
	Path string
}

func addFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(layerFlag, "l", nil, "layer as `name=path` to a GeoJSON FeatureCollection (repeatable)")
	fs.Uint32P(extentFlag, "e", mvt.DefaultExtent, "tile extent for every layer")
	fs.BoolP(gzipFlag, "z", false, "gzip the output")
	fs.StringP(outFlag, "o", "-", "output `file`, or - for stdout")
	fs.String(logLevelFlag, "info", "log level (trace, debug, info, warn, error)")
	fs.StringP(configFlag, "c", "", "optional config `file` (yaml, toml or json)")
}

// loadConfig merges flags, environment variables and the optional
// config file, in that order of precedence. In the environment,
// GEOJSON2MVT_LAYER holds layers separated by white space.
func loadConfig(fs *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(configFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &config{
		Extent:   v.GetUint32(extentFlag),
		Gzip:     v.GetBool(gzipFlag),
		Out:      v.GetString(outFlag),
		LogLevel: v.GetString(logLevelFlag),
	}
	for _, s := range v.GetStringSlice(layerFlag) {
		src, err := parseLayerSource(s)
		if err != nil {
			return nil, err
		}
		cfg.Layers = append(cfg.Layers, src)
	}
	if len(cfg.Layers) == 0 {
		return nil, fmt.Errorf("at least one --%s is required", layerFlag)
	}
	return cfg, nil
}

func parseLayerSource(s string) (layerSource, error) {
	name, path, ok := strings.Cut(s, "=")
	if !ok || name == "" || path == "" {
		return layerSource{}, fmt.Errorf("invalid --%s %q, want name=path", layerFlag, s)
	}
	return layerSource{Name: name, Path: path}, nil
}
