package estimator

import (
	"math"

	"github.com/rngtools/minentropy/internal/numeric"
)

// tally accumulates the outcome stream of a prediction estimator: the
// prediction and correct counts plus the longest streak of correct
// predictions.
type tally struct {
	correct int64
	total   int64
	longest int64
	current int64
}

func (t *tally) record(hit bool) {
	t.total++
	if !hit {
		t.current = 0
		return
	}
	t.correct++
	t.current++
	if t.current > t.longest {
		t.longest = t.current
	}
}

// finish converts the accumulated outcomes into a Result for kind over an
// alphabet of k symbols.
//
// With confidence bounds on, the global hit rate is raised to its 99%
// binomial upper bound (or the no-hit bound 1-0.01^(1/N) when nothing was
// predicted correctly) and combined with the run-based local bound; the
// estimate comes from the larger of those and the uniform floor 1/k. With
// confidence bounds off only the raw hit rate and the floor compete.
func (t *tally) finish(kind Kind, k int, cfg *Config) Result {
	if t.total == 0 {
		return notDone(kind)
	}

	rate := float64(t.correct) / float64(t.total)
	floor := 1 / float64(k)

	pGlobal := rate
	pLocal := -1.0
	if cfg.confidence() {
		if t.correct == 0 {
			pGlobal = 1 - math.Pow(0.01, 1/float64(t.total))
		} else {
			pGlobal = numeric.UpperBound(rate, int(t.total))
		}
		pLocal = localBound(t.longest+1, t.total)
	}

	p := math.Max(floor, math.Max(pGlobal, pLocal))

	return Result{
		Kind:        kind,
		Entropy:     numeric.EntropyFromProb(p, math.Log2(float64(k))),
		Done:        true,
		PUpper:      p,
		Correct:     t.correct,
		Predictions: t.total,
		Run:         t.longest,
		PGlobal:     pGlobal,
		PLocal:      pLocal,
	}
}

// localBound solves the Feller no-long-run equation for the prediction
// probability at which a streak of length r would have been avoided over n
// predictions with probability 0.99. The recurrence root x is found by a
// short fixed-point iteration inside a bisection over p; the comparison
// runs in the log domain to survive the x^(n+1) term.
func localBound(r, n int64) float64 {
	rf, nf := float64(r), float64(n)
	target := math.Log(0.99)

	f := func(p float64) float64 {
		q := 1 - p
		x := 1.0
		for range 10 {
			x = 1 + q*math.Pow(p, rf)*math.Pow(x, rf+1)
		}
		num := 1 - p*x
		den := (rf + 1 - rf*x) * q
		if num <= 0 || den <= 0 {
			return math.Inf(-1)
		}

		return math.Log(num) - math.Log(den) - (nf+1)*math.Log(x)
	}

	return numeric.SearchDecreasing(f, 0, 1, target, 30)
}
