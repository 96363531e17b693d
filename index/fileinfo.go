// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

// FileInfo describes a single archived file as recorded in a bundle's
// [FILELIST] section.
type FileInfo struct {
	Start   uint64 // byte offset of the gzip member within the bundle file
	GzipLen uint32 // compressed length
	RealLen uint32 // uncompressed length
	Path    string // absolute-looking, slash-separated path, e.g. "/tex/x.tex"
	Name    string // trailing segment of Path after the final "/"
	Hash    string // opaque content hash, or "" if the index recorded "nohash"
}

// HasHash reports whether the index recorded a content hash for this file.
func (fi FileInfo) HasHash() bool {
	return fi.Hash != ""
}
