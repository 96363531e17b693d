// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/dsnet/compress/flate"
)

// ErrDecode is returned when a gzip member embedded in a bundle cannot be
// parsed or fails its trailing checksum.
var ErrDecode = errors.New("index: gzip decode error")

const (
	gzipMagic0  = 0x1f
	gzipMagic1  = 0x8b
	gzipDeflate = 8

	flText    = 1 << 0
	flHCRC    = 1 << 1
	flExtra   = 1 << 2
	flName    = 1 << 3
	flComment = 1 << 4
)

// Gunzip decompresses a single gzip member read in full from r. The TTB
// format stores each file's payload as one independent gzip member, so
// streaming decompression is unnecessary: callers read the whole member
// and get back fully-materialized bytes, matching the bundle API's
// "no streaming-reader lifetimes leak outward" resource discipline.
//
// The container framing (header fields, optional FEXTRA/FNAME/FCOMMENT,
// CRC32+ISIZE trailer) is parsed here; the DEFLATE payload itself is
// decoded by github.com/dsnet/compress/flate, since the retrieval corpus
// supplies a raw-deflate decoder but no full gzip container reader.
func Gunzip(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	hdr := make([]byte, 10)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if hdr[0] != gzipMagic0 || hdr[1] != gzipMagic1 {
		return nil, fmt.Errorf("%w: bad magic", ErrDecode)
	}
	if hdr[2] != gzipDeflate {
		return nil, fmt.Errorf("%w: unsupported compression method", ErrDecode)
	}
	flg := hdr[3]

	if flg&flExtra != 0 {
		var xlen [2]byte
		if _, err := io.ReadFull(br, xlen[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		n := int(binary.LittleEndian.Uint16(xlen[:]))
		if _, err := io.CopyN(io.Discard, br, int64(n)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	if flg&flName != 0 {
		if err := skipCString(br); err != nil {
			return nil, err
		}
	}
	if flg&flComment != 0 {
		if err := skipCString(br); err != nil {
			return nil, err
		}
	}
	if flg&flHCRC != 0 {
		if _, err := io.CopyN(io.Discard, br, 2); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	fr := flate.NewReader(br)
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var trailer [8]byte
	if _, err := io.ReadFull(br, trailer[:]); err != nil {
		return nil, fmt.Errorf("%w: missing trailer: %v", ErrDecode, err)
	}
	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantLen := binary.LittleEndian.Uint32(trailer[4:8])
	if crc32.ChecksumIEEE(out) != wantCRC {
		return nil, fmt.Errorf("%w: crc32 mismatch", ErrDecode)
	}
	if uint32(len(out)) != wantLen {
		return nil, fmt.Errorf("%w: size mismatch", ErrDecode)
	}

	return out, nil
}

func skipCString(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if b == 0 {
			return nil
		}
	}
}
