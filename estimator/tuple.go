package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/numeric"
	"github.com/rngtools/minentropy/suffix"
)

// tupleRepeatThreshold is the minimum occurrence count for a tuple length
// to qualify for the t-tuple estimate.
const tupleRepeatThreshold = 35

// TTupleLRS runs the t-tuple and longest repeated substring estimates.
//
// Both derive from one suffix-array pass: the t-tuple estimate bounds the
// per-symbol probability using the most common tuple of every length whose
// champion repeats at least 35 times, and the LRS estimate extends the
// reach to the longest repeated substring using pairwise collision
// proportions beyond that threshold.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: The t-tuple result; Done=false when no tuple length meets
//     the repeat threshold
//   - Result: The LRS result; Done=false when every repeated length meets
//     the threshold instead
//   - error: errs.ErrSampleCountExceeded when the sequence exceeds
//     suffix.MaxLen
func TTupleLRS(samples []uint8, k int, cfg *Config) (Result, Result, error) {
	tt, lrs := notDone(KindTTuple), notDone(KindLRS)
	L := len(samples)
	if L < 2 {
		return tt, lrs, nil
	}

	arr, err := suffix.New(samples)
	if err != nil {
		return tt, lrs, err
	}

	// The counting sweep is O(n*v) in the longest repeated substring v.
	// A repeat spanning most of the input means degenerate data where
	// that product dominates the whole assessment, so flag it up front.
	if c := cfg.normalized(); c.Verbose >= 1 {
		v := int32(0)
		for _, h := range arr.LCP() {
			if h > v {
				v = h
			}
		}
		if int(v) > L/2 {
			c.Logger.Warn("highly repetitive input",
				"lrs", v,
				"samples", L,
				"work", int64(L)*int64(v),
			)
		}
	}

	counts := arr.Tuples(tupleRepeatThreshold)
	maxBits := math.Log2(float64(k))

	if t := counts.U - 1; t >= 1 {
		pHat := 0.0
		for j := 1; j <= t; j++ {
			p := float64(counts.Q[j]) / float64(L-j+1)
			if root := math.Pow(p, 1/float64(j)); root > pHat {
				pHat = root
			}
		}
		pUpper := numeric.UpperBound(pHat, L)
		tt = Result{
			Kind:    KindTTuple,
			Entropy: numeric.EntropyFromProb(pUpper, maxBits),
			Done:    true,
			PUpper:  pUpper,
		}
	}

	if counts.U <= counts.V {
		pHat := 0.0
		for j := counts.U; j <= counts.V; j++ {
			n := float64(L - j + 1)
			p := float64(counts.S[j]) / (n * (n - 1) / 2)
			if root := math.Pow(p, 1/float64(j)); root > pHat {
				pHat = root
			}
		}
		pUpper := numeric.UpperBound(pHat, L)
		lrs = Result{
			Kind:    KindLRS,
			Entropy: numeric.EntropyFromProb(pUpper, maxBits),
			Done:    true,
			PUpper:  pUpper,
		}
	}

	return tt, lrs, nil
}
