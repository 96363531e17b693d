// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"strconv"
	"strings"
)

func (s *Session) reportScanError(err scanError) {
	switch Code(err) {
	case CodeNoRightBrace:
		s.record(Diagnostic{Severity: Recoverable, Code: CodeNoRightBrace, Message: "didn't find a right brace"})
	case CodeWhitespaceInArgument:
		s.record(Diagnostic{Severity: Recoverable, Code: CodeWhitespaceInArgument, Message: "whitespace is not allowed in an argument"})
	case CodeStuffAfterRightBrace:
		s.record(Diagnostic{Severity: Recoverable, Code: CodeStuffAfterRightBrace, Message: "stuff after right brace"})
	}
}

// cmdBibData handles \bibdata{db1,db2,...}.
func (s *Session) cmdBibData(line string, brace int) {
	if s.bibSeen {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeIllegalAnother, Message: "illegal, another \\bibdata command"})
		return
	}
	s.bibSeen = true

	args, serr := scanBraceArgs(line, brace, true)
	if serr != "" {
		s.reportScanError(serr)
		return
	}

	for _, arg := range args {
		slot, existed := s.pool.LookupOrInsert(KindBibFile, arg)
		if existed {
			s.record(Diagnostic{Severity: Recoverable, Code: CodeDuplicateBibFile, Message: "this database file appears more than once: " + arg})
			return
		}

		rc, ok := s.cfg.Opener.Open(slot.Text(), FormatBib)
		if !ok {
			s.record(Diagnostic{Severity: Recoverable, Code: CodeOpenFailed, Message: "I couldn't open the database file " + arg})
			return
		}
		s.bibs.Append(BibEntry{Name: slot.Text(), File: rc})
	}
}

// cmdBibStyle handles \bibstyle{name}.
func (s *Session) cmdBibStyle(line string, brace int) {
	if s.bstSeen {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeIllegalAnother, Message: "illegal, another \\bibstyle command"})
		return
	}
	s.bstSeen = true

	args, serr := scanBraceArgs(line, brace, false)
	if serr != "" {
		s.reportScanError(serr)
		return
	}

	name := args[0]
	slot, existed := s.pool.LookupOrInsert(KindBstFile, name)
	if existed {
		s.record(Diagnostic{Severity: Fatal, Code: CodeAlreadyStyle, Message: "already encountered style file"})
		return
	}
	s.bstSlot = slot
	s.hasBstSlot = true

	rc, ok := s.cfg.Opener.Open(slot.Text(), FormatBst)
	if !ok {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeOpenFailed, Message: "I couldn't open style file " + name})
		s.hasBstSlot = false
		return
	}
	s.bstFile = rc

	if s.cfg.Verbose {
		s.cfg.Status.Log(Diagnostic{Severity: Recoverable, Message: "The style file: " + slot.Text()})
	}
}

// cmdCitation handles \citation{k1,k2,...}.
func (s *Session) cmdCitation(line string, brace int) {
	s.citationSeen = true

	args, serr := scanBraceArgs(line, brace, true)
	if serr != "" {
		s.reportScanError(serr)
		return
	}

	for _, arg := range args {
		if arg == "*" {
			if s.allEntries {
				s.record(Diagnostic{Severity: Recoverable, Code: CodeMultipleStarInclusion, Message: "multiple inclusions of entire database"})
				continue
			}
			s.allEntries = true
			s.cites.SetAllMarker()
			continue
		}

		lc := asciiLower(arg)
		lcSlot, lcExisted := s.pool.LookupOrInsert(KindLcCite, lc)
		if lcExisted {
			_, uok := s.pool.Lookup(KindCite, arg)
			if !uok {
				prevCite := s.cites.At(int(lcSlot.IlkInfo()))
				s.record(Diagnostic{Severity: Recoverable, Code: CodeCaseMismatch, Message: "case mismatch error between cite keys " + arg + " and " + prevCite})
			}
			continue
		}

		ucSlot, ucExisted := s.pool.LookupOrInsert(KindCite, arg)
		if ucExisted {
			s.record(Diagnostic{Severity: Fatal, Code: CodeHashCiteConfusion, Message: "hash cite confusion"})
			return
		}

		idx := s.cites.Append(ucSlot.Text())
		ucSlot.SetIlkInfo(int32(idx))
		lcSlot.SetIlkInfo(int32(idx))
	}
}

// asciiLower lower-cases only ASCII bytes, deliberately leaving any
// non-ASCII byte untouched: a Unicode-aware fold would change which
// cite keys collide, and cite-key case folding here is ASCII only.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// cmdInput handles \@input{file.aux}.
func (s *Session) cmdInput(line string, brace int) error {
	args, serr := scanBraceArgs(line, brace, false)
	if serr != "" {
		s.reportScanError(serr)
		return nil
	}
	name := args[0]

	if ok := s.stack.Push(); !ok {
		d := Diagnostic{Severity: Fatal, Code: CodeAuxStackOverflow, Message: "auxiliary file depth " + strconv.Itoa(MaxAuxDepth) + " exceeded"}
		s.record(d)
		return fatalErr(s.diagnostics[len(s.diagnostics)-1])
	}

	if !strings.HasSuffix(name, s.cfg.AuxExtension) {
		s.stack.CancelPush()
		s.record(Diagnostic{Severity: Recoverable, Code: CodeWrongExtension, Message: name + " has a wrong extension"})
		return nil
	}

	slot, existed := s.pool.LookupOrInsert(KindAuxFile, name)
	if existed {
		s.stack.CancelPush()
		s.record(Diagnostic{Severity: Recoverable, Code: CodeDuplicateAuxFile, Message: "already encountered file " + name})
		return nil
	}

	rc, ok := s.cfg.Opener.Open(slot.Text(), FormatTex)
	if !ok {
		s.stack.CancelPush()
		s.record(Diagnostic{Severity: Recoverable, Code: CodeOpenFailed, Message: "I couldn't open auxiliary file " + name})
		return nil
	}

	s.stack.SetFrame(slot.Text(), NewLineReader(slot.Text(), rc))
	return nil
}
