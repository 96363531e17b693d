// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bundle implements a random-access reader over a TTB v1 bundle
// file: a single-file, content-addressed archive holding a TeX resource
// tree. See package index for the on-disk header and index formats.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hakonhall/ttbundle/index"
)

// ErrNotAvailable is returned by Open when no file in the bundle matches
// the requested name.
var ErrNotAvailable = errors.New("bundle: not available")

// DefaultPath returns the bundle file to use when a host is not given one
// explicitly: $TTBUNDLE, or the empty string if unset.
func DefaultPath() string {
	return os.Getenv("TTBUNDLE")
}

// Bundle is a random-access reader over a single TTB v1 archive file.
// The index is parsed lazily, on the first lookup.
type Bundle struct {
	f   *os.File
	ix  *index.Index
	hdr *index.Header
}

// Open holds path open as a TTB v1 bundle. The index is not read until the
// first call to Open (the method), Stat or AllFiles.
func Open(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Bundle{f: f}, nil
}

// Close releases the underlying file handle.
func (b *Bundle) Close() error {
	return b.f.Close()
}

func (b *Bundle) readHeader() (index.Header, error) {
	if b.hdr != nil {
		return *b.hdr, nil
	}
	if _, err := b.f.Seek(0, io.SeekStart); err != nil {
		return index.Header{}, err
	}
	buf := make([]byte, index.HeaderLen)
	if _, err := io.ReadFull(b.f, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return index.Header{}, index.ErrShortRead
		}
		return index.Header{}, err
	}
	h, err := index.ParseHeader(buf)
	if err != nil {
		return index.Header{}, err
	}
	b.hdr = &h
	return h, nil
}

// fillIndex loads and parses the index region, caching it for later
// lookups.
//
// The synthetic FileInfo describing the index region swaps gzip_len and
// real_len relative to their names: gzip_len is set from the header's
// index_real_len field, and real_len from index_gzip_len. This mirrors
// how the index region was actually written; a reader porting this
// forward should check against a real bundle before "fixing" the
// apparent inversion.
func (b *Bundle) fillIndex() error {
	if b.ix != nil {
		return nil
	}
	h, err := b.readHeader()
	if err != nil {
		return err
	}

	info := index.FileInfo{
		Start:   h.IndexStart,
		GzipLen: h.IndexRealLen,
		RealLen: h.IndexGzipLen,
		Path:    "/INDEX",
		Name:    "INDEX",
	}

	raw, err := b.readPayload(info)
	if err != nil {
		return err
	}

	ix := index.New()
	if err := ix.Initialize(bytes.NewReader(raw)); err != nil {
		return err
	}
	b.ix = ix
	return nil
}

func (b *Bundle) readPayload(fi index.FileInfo) ([]byte, error) {
	if _, err := b.f.Seek(int64(fi.Start), io.SeekStart); err != nil {
		return nil, err
	}
	lr := io.LimitReader(b.f, int64(fi.GzipLen))
	return index.Gunzip(lr)
}

// Open resolves name against the bundle's search rules and returns the
// fully-decompressed file contents. It returns ErrNotAvailable if no
// rule matches.
func (b *Bundle) Open(name string) ([]byte, error) {
	if err := b.fillIndex(); err != nil {
		return nil, err
	}
	fi, ok := b.ix.Search(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAvailable, name)
	}
	return b.readPayload(fi)
}

// Stat resolves name the same way Open does but returns only the
// metadata, without decompressing the payload.
func (b *Bundle) Stat(name string) (index.FileInfo, bool, error) {
	if err := b.fillIndex(); err != nil {
		return index.FileInfo{}, false, err
	}
	fi, ok := b.ix.Search(name)
	return fi, ok, nil
}

// AllFiles returns the paths of every file in the bundle, in the index's
// sorted order.
func (b *Bundle) AllFiles() ([]string, error) {
	if err := b.fillIndex(); err != nil {
		return nil, err
	}
	out := make([]string, len(b.ix.Content))
	for i, fi := range b.ix.Content {
		out[i] = fi.Path
	}
	return out, nil
}

// GetDigest returns the bundle's header digest.
func (b *Bundle) GetDigest() (index.Digest, error) {
	h, err := b.readHeader()
	if err != nil {
		return index.Digest{}, err
	}
	return h.Digest, nil
}
