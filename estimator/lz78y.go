package estimator

import (
	"github.com/rngtools/minentropy/internal/dict"
	"github.com/rngtools/minentropy/internal/pool"
)

const (
	// lz78yWindow is the longest string the dictionary keys on.
	lz78yWindow = 16
	// lz78yMaxEntries caps the dictionary as a whole, across string
	// lengths.
	lz78yMaxEntries = 65536
)

// LZ78Y runs the LZ78Y prediction estimate.
//
// A single dictionary keyed by the strings of 1 through 16 samples
// preceding each position counts continuations, in the style of LZ78
// parsing, and guesses the continuation with the highest count over all
// string lengths. The dictionary stops registering new strings at 65536
// entries but keeps counting continuations of the strings it holds.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in bits per symbol; Done=false when len(samples) < 18
func LZ78Y(samples []uint8, k int, cfg *Config) Result {
	if len(samples) < lz78yWindow+2 {
		return notDone(KindLZ78Y)
	}
	if k == 2 {
		return lz78yBinary(samples, cfg)
	}

	return lz78yTrie(samples, k, cfg)
}

// lz78yBinary runs the dictionary on flat tables indexed by the last j
// bits. Binary strings of up to 16 bits outnumber the registration cap,
// so the zero state of a table row doubles as its "not registered" mark.
func lz78yBinary(samples []uint8, cfg *Config) Result {
	var counts [lz78yWindow + 1][]int32
	for j := 1; j <= lz78yWindow; j++ {
		table, release := pool.GetInt32Slice(2 << j)
		clear(table)
		defer release()
		counts[j] = table
	}
	size := 0

	hist := uint32(0)
	for _, s := range samples[:lz78yWindow+1] {
		hist = hist<<1 | uint32(s)
	}

	var t tally
	for i := lz78yWindow + 1; i < len(samples); i++ {
		s := samples[i]

		// Count the continuation of every string ending at i-2, longest
		// first so that at the cap boundary the longer string takes the
		// remaining slots.
		prev := uint32(samples[i-1])
		for j := lz78yWindow; j >= 1; j-- {
			prefix := (hist >> 1) & (uint32(1)<<j - 1)
			idx := prefix<<1 | prev
			if counts[j][idx] == 0 && counts[j][idx^1] == 0 {
				if size >= lz78yMaxEntries {
					continue
				}
				size++
			}
			counts[j][idx]++
		}

		best := int32(0)
		guess := uint8(0)
		seen := false
		for j := 1; j <= lz78yWindow; j++ {
			prefix := hist & (uint32(1)<<j - 1)
			c0 := counts[j][prefix<<1]
			c1 := counts[j][prefix<<1|1]
			if c0 == 0 && c1 == 0 {
				continue
			}
			g, c := uint8(0), c0
			if c1 >= c0 {
				g, c = 1, c1
			}
			// Ascending lengths with >= so a longer string beats an
			// equal count.
			if c >= best {
				best, guess, seen = c, g, true
			}
		}
		t.record(seen && guess == s)

		hist = (hist<<1 | uint32(s)) & (1<<17 - 1)
	}

	return t.finish(KindLZ78Y, 2, cfg)
}

// lz78yTrie runs the dictionary for k > 2 as a trie keyed by reversed
// strings, one descent counting all lengths and one descent collecting
// the candidates. The trie's own registration bound enforces the cap;
// recording longest first keeps the cap boundary consistent with the
// flat path.
func lz78yTrie(samples []uint8, k int, cfg *Config) Result {
	tr := dict.New(k, lz78yMaxEntries)
	defer tr.Close()

	var path [lz78yWindow]*dict.Page

	var t tally
	for i := lz78yWindow + 1; i < len(samples); i++ {
		s := samples[i]
		prev := samples[i-1]

		p := tr.Root()
		n := 0
		create := !tr.Full()
		for j := 1; j <= lz78yWindow; j++ {
			if p = tr.Descend(p, samples[i-1-j], create); p == nil {
				break
			}
			path[n] = p
			n++
		}
		for m := n - 1; m >= 0; m-- {
			tr.Record(path[m], prev)
		}

		best := uint32(0)
		guess := uint8(0)
		seen := false
		p = tr.Root()
		for j := 1; j <= lz78yWindow; j++ {
			if p = tr.Descend(p, samples[i-j], false); p == nil {
				break
			}
			if g, c, ok := p.Best(); ok && c >= best {
				best, guess, seen = c, g, true
			}
		}
		t.record(seen && guess == s)
	}

	return t.finish(KindLZ78Y, k, cfg)
}
