package suffix

// Counts aggregates per-length repetition statistics of a sample sequence.
// Index j covers tuples of length j; index 0 of Q and S is unused.
type Counts struct {
	// Q[j] is the occurrence count of the most common j-tuple, 1 <= j <= V.
	Q []int64
	// S[j] is the number of suffix pairs sharing a j-symbol prefix, summing
	// count*(count-1)/2 over every repeated j-tuple.
	S []uint64
	// U is the smallest length whose most common tuple occurs fewer than
	// minRepeat times, V+1 when every length up to V meets the threshold.
	U int
	// V is the length of the longest repeated substring.
	V int
}

// Tuples sweeps the LCP array once and returns the repetition statistics
// for every tuple length up to the longest repeated substring.
//
// Parameters:
//   - minRepeat: The occurrence threshold defining Counts.U
//
// Returns:
//   - Counts: The per-length statistics
func (a *Array) Tuples(minRepeat int) Counts {
	lcp := a.LCP()
	n := int32(len(a.sa))

	v := int32(0)
	for _, h := range lcp {
		if h > v {
			v = h
		}
	}

	c := Counts{V: int(v)}
	if v == 0 {
		// Nothing repeats, so length 1 already misses any threshold above 1.
		c.U = 1
		return c
	}
	c.Q = make([]int64, v+1)
	c.S = make([]uint64, v+1)

	// Spans of consecutive LCP entries staying at or above a depth mark
	// groups of suffixes sharing that long a prefix. Each maximal span is a
	// distinct repeated tuple per depth it covers, so closing a span when
	// the LCP drops below its depth tallies every covered length exactly
	// once. A sentinel span at depth 0 never closes.
	type span struct {
		depth int32
		start int32
	}
	stack := make([]span, 1, 64)

	for i := int32(1); i <= n; i++ {
		var d int32
		if i < n {
			d = lcp[i]
		}

		start := i
		for {
			top := stack[len(stack)-1]
			if top.depth <= d {
				break
			}
			stack = stack[:len(stack)-1]

			// Suffixes SA[top.start-1 .. i-1] share a top.depth-prefix.
			count := int64(i - top.start + 1)
			pairs := uint64(count) * uint64(count-1) / 2

			// Depths between the span below (or d) and this span's depth
			// close now; shallower depths stay open in wider spans.
			lower := stack[len(stack)-1].depth
			if d > lower {
				lower = d
			}
			for j := top.depth; j > lower; j-- {
				if count > c.Q[j] {
					c.Q[j] = count
				}
				s := c.S[j] + pairs
				if s < c.S[j] {
					panic("minentropy: suffix pair count overflows uint64")
				}
				c.S[j] = s
			}

			start = top.start
		}

		if d > stack[len(stack)-1].depth {
			stack = append(stack, span{depth: d, start: start})
		}
	}

	c.U = int(v) + 1
	for j := int32(1); j <= v; j++ {
		if c.Q[j] < int64(minRepeat) {
			c.U = int(j)
			break
		}
	}

	return c
}
