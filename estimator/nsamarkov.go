package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/pool"
)

// nsaChainLen is the length of the most probable chain the DP searches for.
const nsaChainLen = 128

// NSAMarkov runs the general-alphabet Markov estimate.
//
// Symbols whose occurrence count falls below the configured cutoff leave
// the model together with every transition touching them; exclusion by
// occurrence count reaches its fixpoint in a single pass. A first-order
// transition matrix over the surviving symbols is built in the log2
// domain, inflated per row by a Hoeffding margin when confidence bounds
// are on, and a Viterbi-style dynamic program finds the most probable
// 128-symbol chain. The chain probability, normalized per symbol, sets
// the estimate.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in [0, log2 k]. Fewer than 2 surviving symbols is a
//     degenerate source: Entropy=0, Done=true. Done=false when
//     len(samples) < 2.
func NSAMarkov(samples []uint8, k int, cfg *Config) Result {
	L := len(samples)
	if L < 2 {
		return notDone(KindNSAMarkov)
	}

	threshold := int64(cfg.markovCutoff())
	if threshold < 1 {
		threshold = 1
	}

	var counts [256]int64
	for _, s := range samples {
		counts[s]++
	}
	var valid [256]bool
	surviving := 0
	for s := 0; s < k; s++ {
		if counts[s] >= threshold {
			valid[s] = true
			surviving++
		}
	}
	if surviving < 2 {
		return Result{Kind: KindNSAMarkov, Done: true, PUpper: 1}
	}

	confident := cfg.confidence()

	trans, transDone := pool.GetInt32Slice(k * k)
	defer transDone()
	clear(trans)
	for i := 1; i < L; i++ {
		a, b := samples[i-1], samples[i]
		if valid[a] && valid[b] {
			trans[int(a)*k+int(b)]++
		}
	}

	// Transition matrix in the log2 domain. Unobserved or excluded classes
	// are -Inf so no chain can cross them; with confidence bounds on, rows
	// inside the valid set get a Hoeffding floor instead (an empty row
	// inflates all the way to probability 1).
	logT, logTDone := pool.GetFloat64Slice(k * k)
	defer logTDone()
	for a := 0; a < k; a++ {
		var row int64
		for b := 0; b < k; b++ {
			row += int64(trans[a*k+b])
		}
		eps := hoeffdingEpsilon(row)
		for b := 0; b < k; b++ {
			switch {
			case !valid[a] || !valid[b]:
				logT[a*k+b] = math.Inf(-1)
			case confident:
				p := 1.0
				if row > 0 {
					p = math.Min(1, float64(trans[a*k+b])/float64(row)+eps)
				}
				logT[a*k+b] = math.Log2(p)
			default:
				logT[a*k+b] = log2Ratio(int64(trans[a*k+b]), row)
			}
		}
	}

	cur, curDone := pool.GetFloat64Slice(k)
	defer curDone()
	next, nextDone := pool.GetFloat64Slice(k)
	defer nextDone()

	epsInit := hoeffdingEpsilon(int64(L))
	for s := 0; s < k; s++ {
		switch {
		case !valid[s]:
			cur[s] = math.Inf(-1)
		case confident:
			cur[s] = math.Log2(math.Min(1, float64(counts[s])/float64(L)+epsInit))
		default:
			cur[s] = log2Ratio(counts[s], int64(L))
		}
	}

	for range nsaChainLen - 1 {
		for b := 0; b < k; b++ {
			best := math.Inf(-1)
			for a := 0; a < k; a++ {
				if p := cur[a] + logT[a*k+b]; p > best {
					best = p
				}
			}
			next[b] = best
		}
		cur, next = next, cur
	}

	maxLogP := math.Inf(-1)
	for s := 0; s < k; s++ {
		if cur[s] > maxLogP {
			maxLogP = cur[s]
		}
	}

	h := math.Min(-maxLogP/nsaChainLen, math.Log2(float64(k)))

	return Result{
		Kind:    KindNSAMarkov,
		Entropy: h,
		Done:    true,
		PUpper:  math.Exp2(-h),
	}
}

// hoeffdingEpsilon is the 99% Hoeffding deviation bound for a probability
// estimated from n observations.
func hoeffdingEpsilon(n int64) float64 {
	return math.Sqrt(math.Log(1/0.01) / (2 * float64(n)))
}
