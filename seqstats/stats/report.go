// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// LetterCountsString returns the letter composition as percentages of
// all letters, formatted as "(A : 25.00%) (T : 25.00%) ...".
func (s *Stats) LetterCountsString() string {
	counts := s.LetterCounts()
	tot := float64(sumCounts(counts))
	parts := make([]string, len(Letters))
	for i, l := range []byte(Letters) {
		parts[i] = fmt.Sprintf("(%c : %.2f%%)", l, 100*float64(counts[alphabet.Letter(l)])/tot)
	}
	return strings.Join(parts, " ")
}

// Report writes all statistics to w, one labelled value per line.
// Sizes given in mb and kb are truncated toward zero, except the
// median and mean.
func (s *Stats) Report(w io.Writer) error {
	rw := &reportWriter{w: w}
	rw.printf("Total size    : %d mb (%d bp)\n", s.Total()/1000000, s.Total())
	rw.printf("Nb sequences  : %d\n", s.Count())
	rw.printf("Deciles       : %s\n", join(s.Deciles()))
	rw.printf("Deciles sizes : %s\n", join(s.SizePerDecile()))
	rw.printf("Median size   : %f kb\n", float64(s.Median())/1000)
	rw.printf("Mean size     : %f kb\n", s.Mean()/1000)
	rw.printf("N50 size      : %d kb\n", s.N50()/1000)
	rw.printf("Largest       : %d kb\n", s.Largest()/1000)
	rw.printf("Letter counts : %s\n", s.LetterCountsString())
	rw.printf("Percent Ns    : %f%%\n", s.PercentNs())
	return rw.err
}

// reportWriter retains the first write error and skips later writes.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func join(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, " ")
}
