// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats calculates assembly summary statistics over a collection of
// DNA sequences: the sorted size distribution, size deciles, median, mean,
// N50 and base composition.
//
// Derived values are calculated on first request and retained. A retained
// zero value is treated as absent and is recalculated.
package stats

import (
	"errors"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/asmstats/seqstats/seqstore"
)

// ErrEmptyInput is returned by New when there are no sequence letters to
// summarise.
var ErrEmptyInput = errors.New("stats: no sequence data")

// Letters lists the composition symbols in report order. N counts every
// letter that is not one of A, T, G or C.
const Letters = "ATGCN"

// Stats holds a sequence collection and its derived statistics. Slices
// returned by Stats methods are shared and must not be altered.
type Stats struct {
	store *seqstore.Store

	sizes   []int
	cumSum  []int
	total   int
	n50     int
	letters map[alphabet.Letter]int
}

// New returns a Stats for the sequences in s.
func New(s *seqstore.Store) (*Stats, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyInput
	}
	st := &Stats{store: s}
	if st.Total() == 0 {
		return nil, ErrEmptyInput
	}
	return st, nil
}

// Count returns the number of sequences.
func (s *Stats) Count() int { return s.store.Len() }

// Sizes returns the sequence lengths in ascending order.
func (s *Stats) Sizes() []int {
	if len(s.sizes) == 0 {
		s.store.Do(func(sq *linear.Seq) {
			s.sizes = append(s.sizes, sq.Len())
		})
		sort.Ints(s.sizes)
	}
	return s.sizes
}

// CumSum returns the running sum of Sizes.
func (s *Stats) CumSum() []int {
	if len(s.cumSum) == 0 {
		sizes := s.Sizes()
		s.cumSum = make([]int, len(sizes))
		sum := 0
		for i, l := range sizes {
			sum += l
			s.cumSum[i] = sum
		}
	}
	return s.cumSum
}

// Total returns the summed length of all sequences.
func (s *Stats) Total() int {
	if s.total == 0 {
		cs := s.CumSum()
		s.total = cs[len(cs)-1]
	}
	return s.total
}

// Median returns the size at index n/2 of the sorted sizes. For an even
// number of sequences this is the upper of the two middle sizes.
func (s *Stats) Median() int {
	sizes := s.Sizes()
	return sizes[len(sizes)/2]
}

// Mean returns the mean sequence length.
func (s *Stats) Mean() float64 {
	return float64(s.Total()) / float64(len(s.Sizes()))
}

// Largest returns the length of the longest sequence.
func (s *Stats) Largest() int {
	sizes := s.Sizes()
	return sizes[len(sizes)-1]
}

// N50 returns the first size in ascending order at which the cumulative
// length reaches half of the total length.
func (s *Stats) N50() int {
	if s.n50 == 0 {
		cs := s.CumSum()
		i := sort.SearchInts(cs, s.Total()/2)
		s.n50 = s.Sizes()[i]
	}
	return s.n50
}

// Deciles returns the nine sizes at sorted indices floor(i*n/10)
// for i in [1, 9].
func (s *Stats) Deciles() []int {
	sizes := s.Sizes()
	n := len(sizes)
	dec := make([]int, 9)
	for i := range dec {
		dec[i] = sizes[(i+1)*n/10]
	}
	return dec
}

// SizePerDecile returns the summed lengths of each of the ten decile
// groups of the sorted sizes. Group i holds the indices
// [floor((i-1)*n/10), floor(i*n/10)).
func (s *Stats) SizePerDecile() []int {
	sizes := s.Sizes()
	n := len(sizes)
	dec := make([]int, 10)
	for i := range dec {
		for _, l := range sizes[i*n/10 : (i+1)*n/10] {
			dec[i] += l
		}
	}
	return dec
}

// LetterCounts returns the number of each of the Letters over all
// sequences.
func (s *Stats) LetterCounts() map[alphabet.Letter]int {
	if len(s.letters) == 0 {
		s.letters = make(map[alphabet.Letter]int, len(Letters))
		for _, l := range []byte(Letters) {
			s.letters[alphabet.Letter(l)] = 0
		}
		s.store.Do(func(sq *linear.Seq) {
			acgt := 0
			for _, l := range sq.Seq {
				switch l {
				case 'A', 'T', 'G', 'C':
					s.letters[l]++
					acgt++
				}
			}
			s.letters['N'] += sq.Len() - acgt
		})
	}
	return s.letters
}

// PercentNs returns the percentage of letters that are not A, T, G or C.
func (s *Stats) PercentNs() float64 {
	counts := s.LetterCounts()
	return 100 * float64(counts['N']) / float64(sumCounts(counts))
}

func sumCounts(counts map[alphabet.Letter]int) int {
	var tot int
	for _, n := range counts {
		tot += n
	}
	return tot
}
