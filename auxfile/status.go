// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auxfile

import "log"

// StatusBackend receives one log line per Diagnostic as it is recorded,
// independent of Session.Diagnostics's accumulated report. Verbosity is
// controlled by Config.Verbose for the one line (\bibstyle's success
// message) that is gated on it; every Diagnostic raised while reading aux
// lines is forwarded here. A failure to open the base aux file is not:
// Run only returns it and keeps it in Session.Diagnostics.
type StatusBackend interface {
	Log(d Diagnostic)
}

// NopStatus discards every diagnostic. It is the default when a Session
// is built without an explicit StatusBackend.
type NopStatus struct{}

func (NopStatus) Log(Diagnostic) {}

// LogStatus adapts the standard library's *log.Logger into a
// StatusBackend, for CLI tools that already configure a prefixed
// *log.Logger via log.SetPrefix.
type LogStatus struct {
	L *log.Logger
}

func (s LogStatus) Log(d Diagnostic) {
	s.L.Print(d.Error())
}
