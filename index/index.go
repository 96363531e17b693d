// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrCorruptIndex is returned when the decompressed index text cannot be
// parsed, e.g. a [FILELIST] line with the wrong number of fields.
var ErrCorruptIndex = fmt.Errorf("index: malformed index data")

// Index holds a bundle's file table and search rules, decompressed and
// parsed from a TTB v1 [FILELIST]/[SEARCH:MAIN] index blob.
//
// Content is kept sorted by Path: Search relies on this for the
// name-scan early-termination optimization (see the doc comment on
// search1).
type Index struct {
	Content []FileInfo
	Search  []string

	cache map[string]*FileInfo
}

// New returns an empty index, ready for Initialize.
func New() *Index {
	return &Index{cache: make(map[string]*FileInfo)}
}

// Initialize parses the decompressed index text read from r, replacing
// any existing content, search rules, and lookup cache.
//
// The text is partitioned into sections introduced by a bracketed header
// ("[FILELIST]", "[SEARCH:MAIN]", ...) on its own line. Lines outside any
// section, and lines inside an unrecognised section, are ignored.
func (ix *Index) Initialize(r io.Reader) error {
	ix.Content = ix.Content[:0]
	ix.Search = ix.Search[:0]
	ix.cache = make(map[string]*FileInfo)

	var section string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}
		switch section {
		case "FILELIST":
			fi, err := parseFilelistLine(line)
			if err != nil {
				return err
			}
			ix.Content = append(ix.Content, fi)
		case "SEARCH:MAIN":
			if line != "" {
				ix.Search = append(ix.Search, line)
			}
		default:
			// unknown section: lines consumed but discarded
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptIndex, err)
	}

	sort.Slice(ix.Content, func(i, j int) bool {
		return ix.Content[i].Path < ix.Content[j].Path
	})
	return nil
}

func parseFilelistLine(line string) (FileInfo, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return FileInfo{}, fmt.Errorf("%w: FILELIST line %q: want 5 fields, got %d", ErrCorruptIndex, line, len(fields))
	}
	start, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: bad start: %v", ErrCorruptIndex, err)
	}
	gzipLen, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: bad gzip_len: %v", ErrCorruptIndex, err)
	}
	realLen, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: bad real_len: %v", ErrCorruptIndex, err)
	}
	path := fields[3]
	slash := strings.LastIndexByte(path, '/')
	if slash < 0 {
		return FileInfo{}, fmt.Errorf("%w: path %q has no '/'", ErrCorruptIndex, path)
	}
	hash := fields[4]
	if hash == "nohash" {
		hash = ""
	}
	return FileInfo{
		Start:   start,
		GzipLen: uint32(gzipLen),
		RealLen: uint32(realLen),
		Path:    path,
		Name:    path[slash+1:],
		Hash:    hash,
	}, nil
}

// Search resolves a logical file name to its FileInfo, applying the
// search-path disambiguation rules implemented by search1.
// Results (hits and misses) are memoised by the exact query string; a
// repeat call with the same name does not rescan Content.
func (ix *Index) Search(name string) (FileInfo, bool) {
	if cached, ok := ix.cache[name]; ok {
		if cached == nil {
			return FileInfo{}, false
		}
		return *cached, true
	}
	fi, ok := ix.search1(name)
	if ok {
		f := fi
		ix.cache[name] = &f
	} else {
		ix.cache[name] = nil
	}
	return fi, ok
}

// search1 performs the uncached lookup. Content is sorted by Path, and
// since Path always ends with Name, entries sharing a leaf Name are
// usually—but not provably—adjacent in that order (two files at
// different depths can share a leaf name while a third, differently
// named, path sorts between their paths). The scan below stops at the
// first non-matching entry following a matching run, trading strict
// correctness in that case for a walk that ends early on a hit. The walk
// starts at the first entry, so a miss still visits all of Content.
func (ix *Index) search1(name string) (FileInfo, bool) {
	leaf := name
	relativeParent := false
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		leaf = name[i+1:]
		relativeParent = true
	}

	var infos []*FileInfo
	for i := range ix.Content {
		fi := &ix.Content[i]
		if fi.Name == leaf {
			infos = append(infos, fi)
		} else if len(infos) != 0 {
			break
		}
	}

	if relativeParent {
		var matching *FileInfo
		for _, fi := range infos {
			if strings.HasSuffix(fi.Path, name) {
				if matching != nil {
					// Ambiguous: two files end with the same qualified
					// name. No diagnostic is raised here; the caller
					// simply sees a miss.
					return FileInfo{}, false
				}
				matching = fi
			}
		}
		if matching == nil {
			return FileInfo{}, false
		}
		return *matching, true
	}

	var picked []*FileInfo
	for _, rule := range ix.Search {
		picked = picked[:0]
		for _, fi := range infos {
			if strings.HasSuffix(rule, "//") {
				if strings.HasPrefix(fi.Path, rule[:len(rule)-1]) {
					picked = append(picked, fi)
				}
			} else {
				if len(fi.Path) >= len(name) && fi.Path[:len(fi.Path)-len(name)] == rule {
					picked = append(picked, fi)
				}
			}
		}
		if len(picked) != 0 {
			break
		}
	}

	switch len(picked) {
	case 0:
		return FileInfo{}, false
	case 1:
		return *picked[0], true
	default:
		sort.Slice(picked, func(i, j int) bool { return picked[i].Path < picked[j].Path })
		return *picked[0], true
	}
}
