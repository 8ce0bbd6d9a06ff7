// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// MarshalGzipped finishes the tile and returns its gzip-compressed MVT
// encoding. Vector tiles are commonly stored and served gzipped, for
// example in MBTiles files.
func (t *Tile) MarshalGzipped() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.WriteGzipped(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGzipped finishes the tile and writes its gzip-compressed MVT
// encoding to w. An error from w is returned unchanged.
func (t *Tile) WriteGzipped(w io.Writer) error {
	b, err := t.Finish()
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(w)
	if _, err = zw.Write(b); err != nil {
		return err
	}
	return zw.Close()
}
