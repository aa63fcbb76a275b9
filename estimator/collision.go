package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/numeric"
)

// Collision runs the collision estimate over a binary sequence.
//
// The sequence is split into collision groups: two equal adjacent symbols
// collide after 2 draws, otherwise the third draw must repeat one of the
// first two and the group closes after 3. A trailing group that cannot
// close is dropped. The mean wait time, lowered by a 99% confidence
// margin, inverts to the probability of the more common symbol.
//
// Parameters:
//   - bits: The sample sequence, symbols 0 and 1 only
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in [0, 1]; Done=false with fewer than 2 full groups
func Collision(bits []uint8, cfg *Config) Result {
	var wait numeric.Moments
	for i := 0; i+1 < len(bits); {
		if bits[i] == bits[i+1] {
			wait.Add(2)
			i += 2
		} else if i+2 < len(bits) {
			wait.Add(3)
			i += 3
		} else {
			break
		}
	}
	v := wait.Count()
	if v < 2 {
		return notDone(KindCollision)
	}

	mean := wait.Mean()
	if cfg.confidence() {
		mean -= numeric.ZAlpha * wait.StdDev() / math.Sqrt(float64(v))
	}

	// Solving E[wait] for the heavier symbol probability. A mean above the
	// unbiased expectation of 2.5 has no solution and pins p at 0.5.
	p := 0.5
	if rad := 1.25 - 0.5*mean; rad >= 0 {
		p += math.Sqrt(rad)
	}

	return Result{
		Kind:    KindCollision,
		Entropy: numeric.EntropyFromProb(p, 1),
		Done:    true,
		PUpper:  p,
	}
}
