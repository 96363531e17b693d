// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

// completionCheck runs the end-of-input invariant checks once the base
// aux file has been fully consumed. Every unmet obligation raises one
// recoverable diagnostic; none of these are fatal.
func (s *Session) completionCheck() error {
	s.numCites = s.cites.Len()
	s.numBibFiles = s.bibs.Len()

	if !s.citationSeen {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeMissingCitations, Message: "I found no \\citation commands"})
	} else if s.numCites == 0 && !s.allEntries {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeNoCiteKeys, Message: "I found no cite keys"})
	}

	if !s.bibSeen {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeMissingBibData, Message: "I found no \\bibdata command"})
	} else if s.numBibFiles == 0 {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeNoDatabaseFiles, Message: "I found no database files"})
	}

	if !s.bstSeen {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeMissingBibStyle, Message: "I found no \\bibstyle command"})
	} else if !s.hasBstSlot {
		s.record(Diagnostic{Severity: Recoverable, Code: CodeNoStyleFile, Message: "I found no style file"})
	}

	return nil
}
