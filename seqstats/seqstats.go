// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqstats calculates and prints assembly statistics from
// a multi-FASTA DNA sequence file. It is useful for
// assessing the quality of genome assemblies. It prints:
// the total assembly size, the no. of sequences, size
// deciles and the summed size of each decile, the median,
// mean, N50 and largest sequence size, the base composition
// and the percentage of ambiguous bases.
//
// Usage:
//
//	seqstats [-v] FILE
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/asmstats/seqstats/seqstore"
	"github.com/biogo/asmstats/seqstats/stats"
)

var errMissingArgument = errors.New("missing input file")

var (
	verbose = flag.Bool("v", false, "print debugging messages")
	help    = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] FILE\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	debug := log.New(ioutil.Discard, "", log.LstdFlags)
	if *verbose {
		debug.SetOutput(os.Stderr)
	}

	err := run(flag.Args(), os.Stdout, logger, debug)
	if err != nil {
		if err == errMissingArgument {
			flag.Usage()
		}
		logger.Fatalf("seqstats: %v", err)
	}
}

// run loads the FASTA file named by args[0] and writes its
// statistics to out. Nothing is written to out if the file
// cannot be loaded or holds no sequence data.
func run(args []string, out io.Writer, logger, debug *log.Logger) error {
	debug.Print("starting")
	if len(args) < 1 {
		return errMissingArgument
	}
	store, err := seqstore.Load(args[0], logger)
	if err != nil {
		return err
	}
	debug.Printf("sequences: %s", strings.Join(store.Names(), " "))
	s, err := stats.New(store)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	err = s.Report(out)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	debug.Print("done")
	return nil
}
