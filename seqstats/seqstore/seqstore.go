// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqstore provides loading of multi-FASTA DNA sequences into an
// immutable name keyed collection.
package seqstore

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// HeaderMarker is the first byte of a FASTA header line.
const HeaderMarker = '>'

// Store is a collection of sequences keyed by name. A Store is not modified
// after it has been read.
type Store struct {
	seqs map[string]*linear.Seq
}

// Load reads the FASTA file at path into a new Store. The file is closed
// before Load returns. If logger is nil no messages are written.
func Load(path string, logger *log.Logger) (*Store, error) {
	if logger != nil {
		logger.Printf("loading fasta file %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqstore: %w", err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Printf("loaded %d sequences from %s", s.Len(), path)
	}
	return s, nil
}

// Read parses FASTA formatted data from r into a new Store. Lines are
// stripped of surrounding white space and blank lines are ignored. A line
// beginning with HeaderMarker names a new sequence, possibly with an empty
// name; all other lines are appended to the most recently named sequence.
// ASCII sequence letters are upper-cased.
func Read(r io.Reader) (*Store, error) {
	var (
		br    = bufio.NewReader(r)
		bufs  = make(map[string]*bytes.Buffer)
		order []string
		cur   *bytes.Buffer
	)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("seqstore: read line %d: %w", lineNo, err)
		}
		eof := err == io.EOF
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
		case line[0] == HeaderMarker:
			name := string(line[1:])
			if _, dup := bufs[name]; dup {
				return nil, &DuplicateNameError{Name: name, Line: lineNo}
			}
			cur = &bytes.Buffer{}
			bufs[name] = cur
			order = append(order, name)
		default:
			if cur == nil {
				return nil, &MalformedInputError{Line: lineNo, Reason: "sequence data before first header"}
			}
			cur.Write(line)
		}
		if eof {
			break
		}
	}

	s := &Store{seqs: make(map[string]*linear.Seq, len(bufs))}
	for _, name := range order {
		s.seqs[name] = linear.NewSeq(name, upperLetters(bufs[name].Bytes()), alphabet.DNA)
	}
	return s, nil
}

// upperLetters upper-cases ASCII letters in b in place, leaving all other
// bytes unchanged so the sequence length is preserved.
func upperLetters(b []byte) []alphabet.Letter {
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return alphabet.BytesToLetters(b)
}

// Len returns the number of sequences held by the Store.
func (s *Store) Len() int { return len(s.seqs) }

// Seq returns the sequence with the given name.
func (s *Store) Seq(name string) (*linear.Seq, bool) {
	sq, ok := s.seqs[name]
	return sq, ok
}

// Names returns the sorted sequence names.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.seqs))
	for n := range s.seqs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Do calls fn for each sequence in the Store in unspecified order.
// The sequences must not be altered by fn.
func (s *Store) Do(fn func(*linear.Seq)) {
	for _, sq := range s.seqs {
		fn(sq)
	}
}
