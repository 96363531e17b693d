// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"io"
	"strings"
)

// trackingCloser wraps a reader and records whether Close was called, so
// tests can assert a handle was actually released rather than merely
// opened.
type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

// fakeOpener resolves names against an in-memory map of contents, so
// tests never touch the filesystem. A name absent from the map fails to
// open, exactly as a missing file would. Every successful open is
// recorded in opened, keyed by name, so a test can inspect whether it
// was later closed.
type fakeOpener struct {
	files  map[string]string
	opened map[string]*trackingCloser
}

func newFakeOpener(files map[string]string) *fakeOpener {
	return &fakeOpener{files: files, opened: make(map[string]*trackingCloser)}
}

func (f *fakeOpener) Open(name string, _ FileFormat) (io.ReadCloser, bool) {
	text, ok := f.files[name]
	if !ok {
		return nil, false
	}
	tc := &trackingCloser{Reader: strings.NewReader(text)}
	f.opened[name] = tc
	return tc, true
}
