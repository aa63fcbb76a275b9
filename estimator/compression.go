package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/numeric"
	"github.com/rngtools/minentropy/internal/pool"
)

const (
	// compressionBlockBits is the block width b: the bit stream is consumed
	// as 6-bit MSB-first blocks.
	compressionBlockBits = 6
	// compressionDictBlocks is the dictionary size d: blocks priming the
	// recurrence table before the test phase begins.
	compressionDictBlocks = 1000
	// compressionCorrection is the Coron-Naccache correction factor c
	// applied to the recurrence-log deviation.
	compressionCorrection = 0.5907
)

// Compression runs the Maurer-style compression estimate over a binary
// sequence.
//
// The bits are packed into 6-bit blocks; the first 1000 blocks prime a
// last-occurrence table and each remaining block contributes the log2 of
// its recurrence distance. The mean of those logs, lowered by a corrected
// 99% confidence margin, is matched against the expected mean of a
// near-uniform source, G(p) + 63*G(q) with q=(1-p)/63, by binary search
// over the dominant block probability p.
//
// Parameters:
//   - bits: The sample sequence, symbols 0 and 1 only
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in [0, 1]; Done=false with fewer than 1002 blocks
func Compression(bits []uint8, cfg *Config) Result {
	numBlocks := len(bits) / compressionBlockBits
	if numBlocks < compressionDictBlocks+2 {
		return notDone(KindCompression)
	}

	var last [1 << compressionBlockBits]int64
	var dist numeric.Moments
	for i := 0; i < numBlocks; i++ {
		var block int
		for j := 0; j < compressionBlockBits; j++ {
			block = block<<1 | int(bits[i*compressionBlockBits+j])
		}

		pos := int64(i + 1)
		if i >= compressionDictBlocks {
			d := pos // blocks never seen recur from position zero
			if last[block] != 0 {
				d = pos - last[block]
			}
			dist.Add(math.Log2(float64(d)))
		}
		last[block] = pos
	}

	v := numBlocks - compressionDictBlocks
	mean := dist.Mean()
	if cfg.confidence() {
		sigma := compressionCorrection * dist.StdDev()
		mean -= numeric.ZAlpha * sigma / math.Sqrt(float64(v))
	}

	logs, logsDone := pool.GetFloat64Slice(numBlocks + 1)
	defer logsDone()
	for u := 1; u <= numBlocks; u++ {
		logs[u] = math.Log2(float64(u))
	}

	// Expected recurrence-log mean for a near-uniform source: the dominant
	// block holds probability p, the remaining 63 split the rest evenly.
	rest := float64(1<<compressionBlockBits - 1)
	g := func(p float64) float64 {
		q := (1 - p) / rest
		return compressionG(p, numBlocks, logs) + rest*compressionG(q, numBlocks, logs)
	}
	p := numeric.SearchDecreasing(g, math.Exp2(-compressionBlockBits), 1, mean, 30)

	h := -math.Log2(p) / compressionBlockBits
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}

	return Result{
		Kind:    KindCompression,
		Entropy: h,
		Done:    true,
		PUpper:  p,
	}
}

// compressionG evaluates the expected recurrence-log mean G(z) for a source
// whose dominant block has probability z, over num blocks with the standard
// dictionary split. logs caches log2(u) for u in [1, num].
//
// The expectation decomposes into three sums over the recurrence distance:
// distances at most the dictionary size occur in every test position,
// longer ones in a shrinking tail, and the first-occurrence term closes the
// telescoping. Powers of (1-z) that underflow to zero end the accumulation
// early.
func compressionG(z float64, num int, logs []float64) float64 {
	if z <= 0 {
		return 0
	}

	d := compressionDictBlocks
	v := num - d
	q := 1 - z

	var inner, tail numeric.Sum
	pw := 1.0 // (1-z)^(u-1)
	for u := 1; u <= num; u++ {
		if pw == 0 {
			break
		}
		switch {
		case u <= d:
			inner.Add(logs[u] * pw)
		case u < num:
			tail.Add(float64(num-u) * logs[u] * pw)
			tail.Add(logs[u] * pw / z)
		default:
			tail.Add(logs[u] * pw / z)
		}
		pw *= q
	}

	return (z * z * (float64(v)*inner.Value() + tail.Value())) / float64(v)
}
