// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bibaux drives the BibTeX auxiliary-file interpreter over a
// base .aux file and prints the diagnostics and end-of-input completion
// report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hakonhall/ttbundle/auxfile"
)

var usageMessage = `usage: bibaux [-v] [-ext .aux] base.aux

Bibaux processes base.aux the way the BibTeX engine's auxiliary-file
reader would: it follows \bibdata, \bibstyle, \citation, and \@input
commands, then reports what it found (or didn't) at end of input.
`

func usage() {
	fmt.Fprint(os.Stderr, usageMessage)
	os.Exit(2)
}

var (
	verboseFlag = flag.Bool("v", false, "print extra information")
	extFlag     = flag.String("ext", ".aux", "required \\@input file extension")
)

func main() {
	log.SetPrefix("bibaux: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	sess := auxfile.NewSession(auxfile.Config{
		AuxExtension: *extFlag,
		Verbose:      *verboseFlag,
		Status:       auxfile.LogStatus{L: log.Default()},
	})

	runErr := sess.Run(flag.Arg(0))
	if err := sess.Close(); err != nil {
		log.Printf("closing auxiliary session: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}

	fmt.Printf("%d cite keys, %d bib files, %d diagnostics\n",
		sess.NumCites(), sess.NumBibFiles(), len(sess.Diagnostics()))
}
