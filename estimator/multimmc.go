package estimator

import (
	"github.com/rngtools/minentropy/internal/dict"
	"github.com/rngtools/minentropy/internal/pool"
)

const (
	// mmcDepth is the order of the deepest Markov model in the battery.
	mmcDepth = 16
	// mmcMaxEntries caps the distinct prefixes each model may register.
	mmcMaxEntries = 100000
)

// MultiMMC runs the multi Markov model with counting prediction estimate.
//
// Sixteen Markov models of order 1 through 16 each guess the most common
// recorded continuation of the last d samples, and the model with the
// best record so far supplies the guess scored on each step. A model
// registers at most 100000 distinct prefixes; once full it keeps
// counting continuations of the prefixes it already holds and ignores
// the rest.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in bits per symbol; Done=false when len(samples) < 3
func MultiMMC(samples []uint8, k int, cfg *Config) Result {
	if len(samples) < 3 {
		return notDone(KindMultiMMC)
	}
	if k == 2 {
		return multiMMCBinary(samples, cfg)
	}

	return multiMMCTrie(samples, k, cfg)
}

// multiMMCBinary runs the binary models on flat tables indexed by the
// last d bits. A binary model tops out at 1<<16 prefixes, under the
// registration cap, so no cap bookkeeping is needed.
func multiMMCBinary(samples []uint8, cfg *Config) Result {
	var counts [mmcDepth + 1][]int32
	for d := 1; d <= mmcDepth; d++ {
		table, release := pool.GetInt32Slice(2 << d)
		clear(table)
		defer release()
		counts[d] = table
	}

	var scores [mmcDepth + 1]int64
	winner := 1
	hist := uint32(samples[0])<<1 | uint32(samples[1])

	var t tally
	for i := 2; i < len(samples); i++ {
		s := samples[i]

		// Count the transition that ended at i-1 in every model whose
		// prefix lies inside the sequence.
		prev := uint32(samples[i-1])
		for d := 1; d <= mmcDepth && d <= i-1; d++ {
			prefix := (hist >> 1) & (uint32(1)<<d - 1)
			counts[d][prefix<<1|prev]++
		}

		now := winner
		hit := false
		for d := 1; d <= mmcDepth && d <= i; d++ {
			prefix := hist & (uint32(1)<<d - 1)
			c0 := counts[d][prefix<<1]
			c1 := counts[d][prefix<<1|1]
			if c0 == 0 && c1 == 0 {
				continue
			}
			guess := uint8(0)
			if c1 >= c0 {
				guess = 1
			}
			if guess != s {
				continue
			}
			if d == now {
				hit = true
			}
			scores[d]++
			if scores[d] >= scores[winner] {
				winner = d
			}
		}
		t.record(hit)

		hist = (hist<<1 | uint32(s)) & (1<<17 - 1)
	}

	return t.finish(KindMultiMMC, 2, cfg)
}

// multiMMCTrie runs the models for k > 2 on one trie keyed by reversed
// prefixes: the depth-d page on the path for the last d samples is the
// order-d model's prefix, so a single descent serves all sixteen models.
// Registration caps are tracked per depth; capped depths still pass
// structure through to deeper models and still count continuations of
// the prefixes they registered earlier.
func multiMMCTrie(samples []uint8, k int, cfg *Config) Result {
	tr := dict.New(k, 0)
	defer tr.Close()

	var entries [mmcDepth + 1]int
	createTo := mmcDepth

	var scores [mmcDepth + 1]int64
	winner := 1

	var t tally
	for i := 2; i < len(samples); i++ {
		s := samples[i]
		prev := samples[i-1]

		p := tr.Root()
		for d := 1; d <= mmcDepth && d <= i-1; d++ {
			p = tr.Descend(p, samples[i-1-d], d <= createTo)
			if p == nil {
				break
			}
			switch {
			case p.Observed():
				tr.Record(p, prev)
			case entries[d] < mmcMaxEntries:
				tr.Record(p, prev)
				entries[d]++
				if entries[d] == mmcMaxEntries {
					for createTo > 0 && entries[createTo] >= mmcMaxEntries {
						createTo--
					}
				}
			}
		}

		now := winner
		hit := false
		p = tr.Root()
		for d := 1; d <= mmcDepth && d <= i; d++ {
			p = tr.Descend(p, samples[i-d], false)
			if p == nil {
				break
			}
			guess, _, ok := p.Best()
			if !ok || guess != s {
				continue
			}
			if d == now {
				hit = true
			}
			scores[d]++
			if scores[d] >= scores[winner] {
				winner = d
			}
		}
		t.record(hit)
	}

	return t.finish(KindMultiMMC, k, cfg)
}
