// Package suffix builds suffix arrays over sample sequences and derives
// the repeated-substring statistics consumed by the tuple estimators.
//
// Construction uses SA-IS induced sorting, linear in the sample count, and
// the longest-common-prefix array follows with Kasai's algorithm. Both use
// int32 positions, which halves the index footprint on the multi-million
// sample sequences assessments typically work on and bounds the supported
// sequence length at MaxLen.
package suffix

import (
	"fmt"
	"math"

	"github.com/rngtools/minentropy/errs"
	"github.com/rngtools/minentropy/internal/pool"
)

// MaxLen is the longest sample sequence a suffix array can index.
const MaxLen = math.MaxInt32 - 1

// Array is the suffix array of a sample sequence.
//
// The sequence is referenced, not copied; it must not be mutated while the
// Array is in use.
type Array struct {
	text []uint8
	sa   []int32
	lcp  []int32
}

// New builds the suffix array of samples.
//
// Parameters:
//   - samples: The sample sequence to index, at most MaxLen symbols
//
// Returns:
//   - *Array: The suffix array
//   - error: errs.ErrSampleCountExceeded when samples is longer than MaxLen
func New(samples []uint8) (*Array, error) {
	if len(samples) > MaxLen {
		return nil, fmt.Errorf("%w: %d samples exceed suffix array limit %d",
			errs.ErrSampleCountExceeded, len(samples), MaxLen)
	}

	n := len(samples)
	a := &Array{text: samples, sa: make([]int32, n)}
	if n == 0 {
		return a, nil
	}

	text32, done := pool.GetInt32Slice(n)
	defer done()
	for i, s := range samples {
		text32[i] = int32(s)
	}

	buildSA(text32, a.sa)

	return a, nil
}

// Len returns the number of indexed samples.
func (a *Array) Len() int {
	return len(a.sa)
}

// SA returns the suffix array: SA()[i] is the start position of the i-th
// suffix in lexicographic order, a suffix that prefixes a longer one
// sorting first. The returned slice is shared; callers must not modify it.
func (a *Array) SA() []int32 {
	return a.sa
}

// LCP returns the longest-common-prefix array: LCP()[i] is the length of
// the shared prefix of the suffixes at SA()[i-1] and SA()[i], with
// LCP()[0] fixed at 0. Computed on first use and cached. The returned
// slice is shared; callers must not modify it.
func (a *Array) LCP() []int32 {
	if a.lcp == nil {
		a.lcp = kasai(a.text, a.sa)
	}

	return a.lcp
}

// kasai computes the LCP array in O(n) by walking positions in text order
// and reusing all but one matched symbol between consecutive positions.
func kasai(text []uint8, sa []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	if n == 0 {
		return lcp
	}

	rank, done := pool.GetInt32Slice(n)
	defer done()
	for i, p := range sa {
		rank[p] = int32(i)
	}

	h := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := int(sa[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}

	return lcp
}
