// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"io"
	"strings"
)

// Config holds the one-shot run parameters a Session needs before
// processing begins.
type Config struct {
	// AuxExtension is the required suffix for \@input arguments,
	// typically ".aux".
	AuxExtension string
	// Verbose gates the extra "style file:" log line \bibstyle emits on
	// success, matching ctx.config.verbose in the design.
	Verbose bool
	Opener  FileOpener
	Status  StatusBackend
}

// Session owns all of the mutable state an aux-file run touches: the
// interned string pool, the cite table, the registered bib files, the
// aux stack, and the one-shot context flags. A host wanting to run
// multiple sessions concurrently creates one Session per run; nothing
// here is process-global.
type Session struct {
	cfg Config

	pool  *Pool
	cites CiteTable
	bibs  BibData
	stack AuxStack

	bibSeen      bool
	bstSeen      bool
	citationSeen bool
	allEntries   bool
	bstSlot      Slot
	hasBstSlot   bool
	bstFile      io.ReadCloser

	numBibFiles int
	numCites    int

	diagnostics []Diagnostic

	closed bool
}

// NewSession constructs a Session ready to process a base aux file via
// Run.
func NewSession(cfg Config) *Session {
	if cfg.Opener == nil {
		cfg.Opener = OSOpener{}
	}
	if cfg.Status == nil {
		cfg.Status = NopStatus{}
	}
	if cfg.AuxExtension == "" {
		cfg.AuxExtension = ".aux"
	}
	return &Session{cfg: cfg, pool: NewPool()}
}

// Diagnostics returns every diagnostic raised so far, in the order they
// were recorded.
func (s *Session) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// NumCites returns the number of cite keys recorded, valid after Run
// returns.
func (s *Session) NumCites() int { return s.numCites }

// NumBibFiles returns the number of bib files registered, valid after
// Run returns.
func (s *Session) NumBibFiles() int { return s.numBibFiles }

// BibFiles returns the registered bib files in registration order.
func (s *Session) BibFiles() []BibEntry { return s.bibs.Entries() }

// CiteKeys returns the recorded cite table, in registration order.
func (s *Session) CiteKeys() []string {
	out := make([]string, s.cites.Len())
	for i := range out {
		out[i] = s.cites.At(i)
	}
	return out
}

func (s *Session) record(d Diagnostic) {
	d.File, d.Line = s.currentLoc()
	s.diagnostics = append(s.diagnostics, d)
	s.cfg.Status.Log(d)
}

func (s *Session) currentLoc() (string, int) {
	_, name := s.stack.Current()
	return name, s.stack.Line()
}

// Close releases every bib/bst handle the session opened and still owns:
// the style file slot (if any) and every registered database file. It is
// idempotent and safe to call even if Run returned a Fatal error partway
// through, or was never called at all. The aux stack's own frames are
// released as they are popped (see AuxStack.Pop); Close only needs to
// cover the storage slots that outlive a single frame.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if s.hasBstSlot && s.bstFile != nil {
		if err := s.bstFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, e := range s.bibs.Entries() {
		if e.File == nil {
			continue
		}
		if err := e.File.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run processes baseName from front to back, following nested \@input
// commands to completion, then performs the end-of-input completeness
// check. It returns a non-nil error only for a Fatal diagnostic; every
// Recoverable diagnostic is instead appended to Diagnostics and
// processing continues.
func (s *Session) Run(baseName string) error {
	rc, ok := s.cfg.Opener.Open(baseName, FormatTex)
	if !ok {
		d := Diagnostic{Severity: Fatal, Code: CodeOpenFailed, Message: "I couldn't open auxiliary file " + baseName}
		s.diagnostics = append(s.diagnostics, d)
		return fatalErr(d)
	}
	s.stack.Init(baseName, NewLineReader(baseName, rc))

	for {
		reader, _ := s.stack.Current()
		line, ok := reader.Next()
		if !ok {
			if s.stack.Pop() {
				break
			}
			continue
		}
		if err := s.processLine(line); err != nil {
			return err
		}
	}

	return s.completionCheck()
}

// processLine parses one \cmd{arg,...} line and dispatches to the
// matching handler. Lines with no recognised command are silently
// ignored, matching the design's "no-op" rule.
func (s *Session) processLine(line string) error {
	brace := strings.IndexByte(line, '{')
	if brace < 0 {
		return nil
	}
	cmdName := line[:brace]
	slot, ok := s.pool.Lookup(KindAuxCommand, cmdName)
	if !ok {
		return nil
	}

	switch slot.IlkInfo() {
	case CmdBibData:
		s.cmdBibData(line, brace)
	case CmdBibStyle:
		s.cmdBibStyle(line, brace)
	case CmdCitation:
		s.cmdCitation(line, brace)
	case CmdInput:
		return s.cmdInput(line, brace)
	default:
		s.record(Diagnostic{Severity: Fatal, Code: CodeUnknownCommandTag, Message: "unknown auxiliary-file command"})
	}
	// A Fatal diagnostic always ends the run, so one at the end of the
	// list can only have been raised by this line.
	if n := len(s.diagnostics); n > 0 && s.diagnostics[n-1].Severity == Fatal {
		return fatalErr(s.diagnostics[n-1])
	}
	return nil
}

// structural error codes used internally by scanBraceArgs.
type scanError Code

const (
	scanNoRightBrace         = scanError(CodeNoRightBrace)
	scanWhitespaceInArgument = scanError(CodeWhitespaceInArgument)
	scanStuffAfterRightBrace = scanError(CodeStuffAfterRightBrace)
)

// scanBraceArgs scans the comma-separated (if multi) brace-delimited
// argument list starting at the '{' found at index brace in line. It
// never skips whitespace implicitly: hitting a whitespace byte before a
// real delimiter is itself a structural error, and any content trailing
// the closing brace is also an error.
func scanBraceArgs(line string, brace int, multi bool) ([]string, scanError) {
	var args []string
	lo := brace + 1
	for {
		hi := lo
		for hi < len(line) && line[hi] != '}' && !(multi && line[hi] == ',') && !isSpace(line[hi]) {
			hi++
		}
		if hi >= len(line) {
			return nil, scanNoRightBrace
		}
		if isSpace(line[hi]) {
			return nil, scanWhitespaceInArgument
		}
		args = append(args, line[lo:hi])
		if line[hi] == '}' {
			if hi+1 < len(line) {
				return nil, scanStuffAfterRightBrace
			}
			return args, ""
		}
		lo = hi + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}
