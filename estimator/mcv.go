package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/numeric"
)

// MostCommon runs the most common value estimate.
//
// The proportion of the modal symbol is raised to its 99% binomial upper
// confidence bound and converted to min-entropy. This is the baseline
// estimate: it is defined for every alphabet and every sequence of at
// least 2 samples.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in bits per symbol; Done=false when len(samples) < 2
func MostCommon(samples []uint8, k int, cfg *Config) Result {
	if len(samples) < 2 {
		return notDone(KindMostCommon)
	}

	var counts [256]int64
	for _, s := range samples {
		counts[s]++
	}
	mode := 0
	for s := 1; s < k; s++ {
		if counts[s] > counts[mode] {
			mode = s
		}
	}

	pHat := float64(counts[mode]) / float64(len(samples))
	pUpper := numeric.UpperBound(pHat, len(samples))

	return Result{
		Kind:    KindMostCommon,
		Entropy: numeric.EntropyFromProb(pUpper, math.Log2(float64(k))),
		Done:    true,
		PUpper:  pUpper,
		Mode:    uint8(mode), //nolint:gosec // mode < k <= 256
		Count:   counts[mode],
	}
}
