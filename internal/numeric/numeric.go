// Package numeric provides the floating-point helpers shared by the
// estimator suite: compensated accumulation, binomial confidence bounds,
// probability/entropy conversion and monotone root search.
//
// The conversion helpers encode the suite's underflow policy: a probability
// that underflows to zero clamps to the maximum entropy for the alphabet
// instead of producing +Inf, while NaN or Inf reaching a checkpoint is a
// fault reported through errs.ErrNumericFault.
package numeric

import (
	"fmt"
	"math"

	"github.com/rngtools/minentropy/errs"
)

// ZAlpha is the one-sided 99% normal quantile applied to every binomial
// upper confidence bound in the estimator suite.
const ZAlpha = 2.5758293035489008

// Sum is a Neumaier compensated accumulator.
//
// Estimators fold millions of small log2 terms into running totals; naive
// summation loses low-order bits once the total dwarfs the terms. The zero
// value is ready to use.
type Sum struct {
	sum float64
	c   float64
}

// Add folds x into the running total.
func (s *Sum) Add(x float64) {
	t := s.sum + x
	if math.Abs(s.sum) >= math.Abs(x) {
		s.c += (s.sum - t) + x
	} else {
		s.c += (x - t) + s.sum
	}
	s.sum = t
}

// Value returns the compensated total.
func (s *Sum) Value() float64 {
	return s.sum + s.c
}

// Moments accumulates count, mean and population standard deviation of a
// streamed series without retaining it.
type Moments struct {
	n     int
	sum   Sum
	sumSq Sum
}

// Add folds one observation into the moments.
func (m *Moments) Add(x float64) {
	m.n++
	m.sum.Add(x)
	m.sumSq.Add(x * x)
}

// Count returns the number of observations.
func (m *Moments) Count() int {
	return m.n
}

// Mean returns the running mean, or 0 before any observation.
func (m *Moments) Mean() float64 {
	if m.n == 0 {
		return 0
	}

	return m.sum.Value() / float64(m.n)
}

// StdDev returns the population standard deviation of the observations.
// Rounding can drive the variance estimate slightly negative for
// near-constant series; that is clamped to zero.
func (m *Moments) StdDev() float64 {
	if m.n == 0 {
		return 0
	}

	mean := m.Mean()
	variance := m.sumSq.Value()/float64(m.n) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return math.Sqrt(variance)
}

// UpperBound returns the one-sided 99% upper confidence bound on a
// probability estimated as pHat from n observations, capped at 1.
//
// This is the bound every distributional estimator applies before the
// log2 conversion. n <= 1 cannot support a bound and returns 1.
func UpperBound(pHat float64, n int) float64 {
	if n <= 1 {
		return 1
	}

	bound := pHat + ZAlpha*math.Sqrt(pHat*(1-pHat)/float64(n-1))

	return math.Min(1, bound)
}

// EntropyFromProb converts a probability bound into min-entropy bits,
// clamped to [0, maxBits].
//
// Probabilities at or above 1 yield 0 bits. Zero (an underflowed bound on a
// vanishingly likely symbol) clamps to maxBits rather than +Inf; the
// underflow is tolerated by policy, not an error.
func EntropyFromProb(p, maxBits float64) float64 {
	if p >= 1 {
		return 0
	}
	if p <= 0 {
		return maxBits
	}

	h := -math.Log2(p)
	if h > maxBits {
		return maxBits
	}
	if h < 0 {
		return 0
	}

	return h
}

// SearchDecreasing locates p in [lo, hi] such that f(p) crosses target,
// for f monotonically decreasing on the interval.
//
// Used to invert the compression estimator's generating function and the
// Feller no-long-run probability, both strictly decreasing in the symbol
// probability. iters halvings of the bracket are performed; 90 reduces the
// interval below double-precision resolution for any [0,1] bracket.
func SearchDecreasing(f func(float64) float64, lo, hi, target float64, iters int) float64 {
	for range iters {
		mid := lo + (hi-lo)/2
		if f(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo + (hi-lo)/2
}

// Finite validates that every value is finite, returning an
// errs.ErrNumericFault wrap naming the checkpoint otherwise.
func Finite(checkpoint string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v at %s", errs.ErrNumericFault, v, checkpoint)
		}
	}

	return nil
}
