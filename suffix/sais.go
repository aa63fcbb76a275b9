package suffix

import "github.com/rngtools/minentropy/internal/pool"

// buildSA fills sa with the suffix array of text using SA-IS induced
// sorting. Suffixes are ordered as if a virtual terminator smaller than
// every symbol followed the text, so a suffix that prefixes a longer one
// sorts first.
//
// Each recursion level takes a pooled scratch slice holding the symbol
// frequencies and bucket cursors for its own alphabet range; the summary
// alphabet of a level is at most half its length, so scratch stays O(n)
// over the whole recursion.
func buildSA(text, sa []int32) {
	switch len(text) {
	case 0:
		return
	case 1:
		sa[0] = 0
		return
	}

	saisLevel(text, sa)
}

func saisLevel(text, sa []int32) {
	// One backward pass classifies positions and finds the level alphabet.
	// l and r are the current and following symbol; inS tracks whether the
	// following suffix is S-type.
	var (
		minSym, maxSym = text[0], text[0]
		l, r           int32
		numLMS         int32
		inS            bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < minSym {
			minSym = l
		}
		if l > maxSym {
			maxSym = l
		}
		if l < r {
			inS = true
		} else if l > r && inS {
			inS = false
			numLMS++
		}
	}

	alpha := maxSym - minSym + 1
	scratch, done := pool.GetInt32Slice(int(alpha) * 2)
	defer done()

	freq := scratch[:alpha]
	buckets := scratch[alpha:]
	countFreq(text, freq, minSym)

	seedLMS(text, sa, freq, buckets, minSym)
	if numLMS > 1 {
		partialInduceL(text, sa, freq, buckets, minSym)
		partialInduceS(text, sa, freq, buckets, minSym)

		// The sorted LMS positions sit in the tail of sa; name their
		// substrings to build the summary string.
		summary := sa[len(sa)-int(numLMS):]
		maxName := nameSubstrings(text, sa, summary, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			// Repeated LMS substrings: order them by recursing on the
			// summary string.
			saisLevel(summary, summarySA)
			relocateLMS(text, sa, summarySA, summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		placeLMS(text, sa, summarySA, freq, buckets, minSym)
	}
	finalInduceL(text, sa, freq, buckets, minSym)
	finalInduceS(text, sa, freq, buckets, minSym)
}

func countFreq(text, freq []int32, minSym int32) {
	clear(freq)
	for _, v := range text {
		freq[v-minSym]++
	}
}

// bucketHeads sets bucket cursors to the first slot of each symbol bucket.
func bucketHeads(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			bucket[i] = offset
			offset += n
		}
	}
}

// bucketTails sets bucket cursors to the last slot of each symbol bucket.
func bucketTails(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			offset += n
			bucket[i] = offset - 1
		}
	}
}

// seedLMS drops every LMS suffix at the tail of its bucket. When more than
// one exists the last seeded slot is cleared again; sub-induction rebuilds
// it and the placeholder keeps the scan loops branch-free.
func seedLMS(text, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	var (
		l, r, b, lastLMS int32
		numLMS           int
		inS              bool
	)
	for i := int32(len(text) - 1); i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			inS = true
		} else if l > r && inS {
			inS = false
			j := r - minSym
			b = bucket[j]
			bucket[j] = b - 1
			sa[b] = i + 1
			lastLMS = b
			numLMS++
		}
	}
	if numLMS > 1 {
		sa[lastLMS] = 0
	}
}

// partialInduceL induces the order of L-type positions from the seeded LMS
// suffixes. Positions whose predecessor is S-type are negated so the
// S-pass can pick them out.
func partialInduceL(text, sa, freq, bucket []int32, minSym int32) {
	bucketHeads(freq, bucket)
	var (
		k       = int32(len(text) - 1)
		l, r    = text[k-1], text[k]
		lastSym = text[len(text)-1]
		b       = bucket[lastSym-minSym]
	)
	if l < r {
		k = -k
	}
	bucket[lastSym-minSym] = b + 1
	sa[b] = k

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		j := sa[i]
		if j < 0 {
			sa[i] = -j
			continue
		}
		sa[i] = 0
		k = j - 1
		l, r = text[k-1], text[k]
		if l < r {
			k = -k
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b + 1
		sa[b] = k
	}
}

// partialInduceS induces S-type order backwards and parks the sorted LMS
// positions at the top of sa for naming.
func partialInduceS(text, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	top := len(sa)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i]
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = -j
			continue
		}
		k := j - 1
		l, r := text[k-1], text[k]
		if l > r {
			k = -k
		}
		b := bucket[r-minSym]
		bucket[r-minSym] = b - 1
		sa[b] = k
	}
}

// recordLMSLengths stashes the length of each LMS substring at half its
// start index. Consecutive LMS positions differ by at least two, so the
// halved slots never clash.
func recordLMSLengths(text, sa []int32) {
	var (
		l, r int32
		prev = int32(len(text)) - 1
		inS  bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			inS = true
		} else if l > r && inS {
			inS = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

func sameLMS(text []int32, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}

	return true
}

// nameSubstrings assigns ascending names to the sorted LMS substrings,
// equal substrings sharing a name, and compacts the names into summary in
// text order. Returns the highest name handed out.
func nameSubstrings(text, sa, summary []int32, numLMS int32) int32 {
	recordLMSLengths(text, sa)
	var (
		name    int32 = 1
		posLMS        = summary
		prevLen       = sa[posLMS[0]/2]
	)
	sa[posLMS[0]/2] = name
	for i := 1; i < len(posLMS); i++ {
		prev, curr := posLMS[i-1], posLMS[i]
		if !sameLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if name >= numLMS {
		return name
	}

	var j int
	for i := 0; i < len(sa)/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], summary[j] = 0, curr
		j++
	}

	return name
}

// relocateLMS translates the summary suffix array back into LMS positions
// of this level's text.
func relocateLMS(text, sa, summarySA, lms []int32) {
	var (
		j    = int32(len(lms))
		l, r int32
		inS  bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			inS = true
		} else if l > r && inS {
			inS = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := 0; i < len(lms); i++ {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

// placeLMS re-seeds the now fully ordered LMS suffixes at their bucket
// tails ahead of the final induction passes.
func placeLMS(text, sa, summarySA, freq, bucket []int32, minSym int32) {
	countFreq(text, freq, minSym)
	bucketTails(freq, bucket)
	for i := len(summarySA) - 1; i >= 0; i-- {
		lmsIdx := summarySA[i]
		summarySA[i] = 0
		j := text[lmsIdx] - minSym
		b := bucket[j]
		sa[b] = lmsIdx
		bucket[j] = b - 1
	}
}

func finalInduceL(text, sa, freq, bucket []int32, minSym int32) {
	bucketHeads(freq, bucket)
	var (
		k       = int32(len(text) - 1)
		l, r    = text[k-1], text[k]
		lastSym = text[len(text)-1]
		b       = bucket[lastSym-minSym]
	)
	if l < r {
		k = -k
	}
	bucket[lastSym-minSym] = b + 1
	sa[b] = k

	for i := 0; i < len(sa); i++ {
		j := sa[i]
		if j <= 0 {
			continue
		}
		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l < r {
				k = -k
			}
		}
		b = bucket[r-minSym]
		bucket[r-minSym] = b + 1
		sa[b] = k
	}
}

func finalInduceS(text, sa, freq, bucket []int32, minSym int32) {
	bucketTails(freq, bucket)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j
		k := j - 1
		r := text[k]
		if k > 0 {
			if l := text[k-1]; l <= r {
				k = -k
			}
		}
		b := bucket[r-minSym]
		bucket[r-minSym] = b - 1
		sa[b] = k
	}
}
