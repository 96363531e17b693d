// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeHeader(version uint64) []byte {
	buf := make([]byte, HeaderLen)
	copy(buf[0:14], signature)
	binary.LittleEndian.PutUint64(buf[14:22], version)
	binary.LittleEndian.PutUint64(buf[22:30], 12345)
	binary.LittleEndian.PutUint32(buf[30:34], 100)
	binary.LittleEndian.PutUint32(buf[34:38], 200)
	for i := 0; i < 32; i++ {
		buf[38+i] = byte(i)
	}
	return buf
}

func TestParseHeaderRoundTrip(t *testing.T) {
	buf := makeHeader(1)
	h, err := ParseHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), h.Version)
	assert.Equal(t, uint64(12345), h.IndexStart)
	assert.Equal(t, uint32(100), h.IndexGzipLen)
	assert.Equal(t, uint32(200), h.IndexRealLen)
	for i := 0; i < 32; i++ {
		assert.Equal(t, byte(i), h.Digest[i])
	}
}

func TestParseHeaderRejectsBadSignature(t *testing.T) {
	buf := makeHeader(1)
	buf[0] = 'x'
	_, err := ParseHeader(buf)
	assert.ErrorIs(t, err, ErrNotABundle)
}

func TestParseHeaderRejectsWrongVersion(t *testing.T) {
	buf := makeHeader(2)
	_, err := ParseHeader(buf)
	assert.ErrorIs(t, err, ErrWrongVersion)
}

func TestParseHeaderShortRead(t *testing.T) {
	_, err := ParseHeader(make([]byte, 10))
	assert.ErrorIs(t, err, ErrShortRead)
}
