// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"bytes"
	stdgzip "compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gzipBytes builds a gzip member via the standard library's writer. This
// is test-fixture-only: Gunzip itself never imports compress/gzip,
// decoding the DEFLATE payload via github.com/dsnet/compress/flate
// instead (see gzip.go).
func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := stdgzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestGunzipRoundTrip(t *testing.T) {
	want := []byte("[FILELIST]\n0 1 1 /a/x.tex h1\n")
	got, err := Gunzip(bytes.NewReader(gzipBytes(t, want)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGunzipRejectsBadMagic(t *testing.T) {
	_, err := Gunzip(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGunzipDetectsTruncation(t *testing.T) {
	full := gzipBytes(t, []byte("hello world"))
	_, err := Gunzip(bytes.NewReader(full[:len(full)-4]))
	assert.Error(t, err)
}
