// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ttbdump inspects a TTB v1 bundle: list its files, print its
// digest, or extract a single file by logical name.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hakonhall/ttbundle/bundle"
)

var usageMessage = `usage: ttbdump [-digest] [-extract name] [bundle.ttb]

Ttbdump opens a TTB v1 bundle and either lists every archived path
(the default), prints the bundle's content digest, or extracts a single
file by the logical name the TeX engine would request.

The bundle file is named on the command line, or else by $TTBUNDLE.
`

func usage() {
	fmt.Fprint(os.Stderr, usageMessage)
	os.Exit(2)
}

var (
	digestFlag  = flag.Bool("digest", false, "print the bundle digest and exit")
	extractFlag = flag.String("extract", "", "extract the named file to stdout")
)

func main() {
	log.SetPrefix("ttbdump: ")
	flag.Usage = usage
	flag.Parse()

	var path string
	switch flag.NArg() {
	case 0:
		path = bundle.DefaultPath()
		if path == "" {
			usage()
		}
	case 1:
		path = flag.Arg(0)
	default:
		usage()
	}

	b, err := bundle.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	switch {
	case *digestFlag:
		d, err := b.GetDigest()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(d.String())

	case *extractFlag != "":
		data, err := b.Open(*extractFlag)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal(err)
		}

	default:
		files, err := b.AllFiles()
		if err != nil {
			log.Fatal(err)
		}
		w := io.Writer(os.Stdout)
		for _, f := range files {
			fmt.Fprintln(w, f)
		}
	}
}
