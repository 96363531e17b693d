// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import (
	"fmt"

	"github.com/pkg/errors"
)

// Severity classifies a Diagnostic. Recoverable diagnostics abandon only
// the current aux line (or, for the completion check, report a single
// missing obligation); Fatal diagnostics abort the whole session.
type Severity int

const (
	Recoverable Severity = iota
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "recoverable"
}

// Code names the specific condition a Diagnostic reports.
type Code string

const (
	CodeNoRightBrace          Code = "no-right-brace"
	CodeWhitespaceInArgument  Code = "whitespace-in-argument"
	CodeStuffAfterRightBrace  Code = "stuff-after-right-brace"
	CodeDuplicateBibFile      Code = "duplicate-bib-file"
	CodeDuplicateAuxFile      Code = "duplicate-aux-file"
	CodeAlreadyStyle          Code = "already-style"
	CodeIllegalAnother        Code = "illegal-another"
	CodeOpenFailed            Code = "open-failed"
	CodeWrongExtension        Code = "wrong-extension"
	CodeCaseMismatch          Code = "case-mismatch"
	CodeMultipleStarInclusion Code = "multiple-star-inclusion"
	CodeHashCiteConfusion     Code = "hash-cite-confusion"
	CodeAuxStackOverflow      Code = "aux-stack-overflow"
	CodeUnknownCommandTag     Code = "unknown-command-tag"

	CodeMissingCitations  Code = "missing-citations"
	CodeNoCiteKeys        Code = "no-cite-keys"
	CodeMissingBibData    Code = "missing-bibdata"
	CodeNoDatabaseFiles   Code = "no-database-files"
	CodeMissingBibStyle   Code = "missing-bibstyle"
	CodeNoStyleFile       Code = "no-style-file"
)

// Diagnostic is a single reported condition, carrying enough context to
// reconstruct "file X, line Y: message" without the caller needing to
// inspect the aux stack itself.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     string
	Line     int
}

func (d Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// fatalErr wraps a Diagnostic of Fatal severity as a Go error, using
// github.com/pkg/errors so a host walking the error with errors.Cause
// can recover the originating aux frame that triggered an invariant
// breach inside a deeply nested \@input chain.
func fatalErr(d Diagnostic) error {
	return errors.WithStack(d)
}
