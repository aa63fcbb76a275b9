package estimator

import (
	"fmt"
	"math"

	"github.com/rngtools/minentropy/errs"
	"github.com/rngtools/minentropy/internal/bitstring"
	"github.com/rngtools/minentropy/internal/hash"
	"github.com/rngtools/minentropy/internal/numeric"
	"github.com/rngtools/minentropy/internal/options"
	"github.com/rngtools/minentropy/suffix"
)

// Assessment is the outcome of a full non-IID entropy assessment.
type Assessment struct {
	// SampleCount is the number of samples assessed.
	SampleCount int
	// AlphabetSize is the number of distinct symbols observed.
	AlphabetSize int
	// BitWidth is the width of the raw symbols in bits.
	BitWidth int
	// Fingerprint identifies the sample sequence, for correlating logs
	// and repeated runs.
	Fingerprint uint64
	// Original holds the estimator results on the symbol sequence.
	Original []Result
	// Bitstring holds the estimator results on the expanded bitstring.
	// Nil for binary sources, which have no separate bitstring track.
	Bitstring []Result
	// HOriginal is the lowest completed estimate on the symbol sequence,
	// in bits per symbol.
	HOriginal float64
	// HBitstring is the lowest completed estimate on the bitstring, in
	// bits per bit. -1 for binary sources.
	HBitstring float64
	// HAssessed is the assessed min-entropy in bits per symbol: the
	// lower of HOriginal and BitWidth*HBitstring.
	HAssessed float64
}

// Assess runs the full non-IID estimator battery over a sample sequence
// and returns the per-estimator results together with the assessed
// min-entropy.
//
// The observed symbols are mapped onto a dense alphabet in value order
// before estimation. Binary sources run the eleven-estimator battery
// once. Larger alphabets run the eight symbol-level estimators plus the
// full battery on the bitstring expansion of the raw symbols; the
// expanded bitstring counts toward the sample limit.
//
// Parameters:
//   - samples: The raw sample sequence, one symbol per byte
//   - opts: Optional settings, see WithConfidenceBounds, WithMarkovCutoff,
//     WithVerbose and WithLogger
//
// Returns:
//   - *Assessment: Results and the assessed min-entropy
//   - error: ErrNoSamples on an empty sequence, ErrInvalidAlphabet when
//     fewer than 2 distinct symbols occur, ErrSampleCountExceeded when a
//     track is longer than suffix.MaxLen, ErrInvalidConfig from options
func Assess(samples []uint8, opts ...Option) (*Assessment, error) {
	if len(samples) == 0 {
		return nil, errs.ErrNoSamples
	}
	if len(samples) > suffix.MaxLen {
		return nil, fmt.Errorf("%w: %d samples, limit %d", errs.ErrSampleCountExceeded, len(samples), suffix.MaxLen)
	}

	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	translated, k := compact(samples)
	if k < 2 {
		return nil, fmt.Errorf("%w: %d distinct symbols, need at least 2", errs.ErrInvalidAlphabet, k)
	}

	width := bitstring.Width(samples)
	a := &Assessment{
		SampleCount:  len(samples),
		AlphabetSize: k,
		BitWidth:     width,
		Fingerprint:  hash.Fingerprint(samples),
		HBitstring:   -1,
	}

	original, err := runBattery(translated, k, cfg)
	if err != nil {
		return nil, err
	}
	logTrack(cfg, "original", original)
	a.Original = original
	a.HOriginal = minEntropy(original, math.Log2(float64(k)))
	a.HAssessed = a.HOriginal

	if k > 2 {
		bits, release := bitstring.Expand(samples, width)
		defer release()
		if len(bits) > suffix.MaxLen {
			return nil, fmt.Errorf("%w: bitstring track needs %d bits, limit %d", errs.ErrSampleCountExceeded, len(bits), suffix.MaxLen)
		}

		expanded, err := runBattery(bits, 2, cfg)
		if err != nil {
			return nil, err
		}
		logTrack(cfg, "bitstring", expanded)
		a.Bitstring = expanded
		a.HBitstring = minEntropy(expanded, 1)
		a.HAssessed = math.Min(a.HOriginal, float64(width)*a.HBitstring)
	}

	if cfg.Verbose >= 1 {
		cfg.Logger.Info("assessment finished",
			"samples", a.SampleCount,
			"alphabet", a.AlphabetSize,
			"bits", a.BitWidth,
			"fingerprint", fmt.Sprintf("%016x", a.Fingerprint),
			"h_original", a.HOriginal,
			"h_bitstring", a.HBitstring,
			"h_assessed", a.HAssessed,
		)
	}

	return a, nil
}

// runBattery runs every estimator defined for an alphabet of size k, in
// battery order. The three binary-only estimators join for k == 2.
func runBattery(samples []uint8, k int, cfg *Config) ([]Result, error) {
	results := make([]Result, 0, 11)
	results = append(results, MostCommon(samples, k, cfg))
	if k == 2 {
		results = append(results,
			Collision(samples, cfg),
			Markov(samples, cfg),
		)
	}
	results = append(results, NSAMarkov(samples, k, cfg))
	if k == 2 {
		results = append(results, Compression(samples, cfg))
	}

	tuple, lrs, err := TTupleLRS(samples, k, cfg)
	if err != nil {
		return nil, err
	}
	results = append(results, tuple, lrs,
		MultiMCW(samples, k, cfg),
		Lag(samples, k, cfg),
		MultiMMC(samples, k, cfg),
		LZ78Y(samples, k, cfg),
	)

	// A completed estimate is finite by construction; anything else is a
	// logic fault that must not silently join the minimum.
	for _, r := range results {
		if !r.Done {
			continue
		}
		if err := numeric.Finite(r.Kind.String(), r.Entropy, r.PUpper); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// compact maps the observed symbols onto the dense range [0, k), keeping
// value order so that comparisons breaking count ties by symbol value are
// unaffected by the translation. Returns k < 2 unchanged with no
// translation.
func compact(samples []uint8) ([]uint8, int) {
	var present [256]bool
	for _, s := range samples {
		present[s] = true
	}

	var mapping [256]uint8
	k := 0
	for v, seen := range present {
		if seen {
			mapping[v] = uint8(k) //nolint:gosec // at most 256 distinct symbols
			k++
		}
	}
	if k < 2 {
		return nil, k
	}

	translated := make([]uint8, len(samples))
	for i, s := range samples {
		translated[i] = mapping[s]
	}

	return translated, k
}

// minEntropy returns the lowest entropy among the completed results,
// starting from the per-symbol ceiling.
func minEntropy(results []Result, ceiling float64) float64 {
	h := ceiling
	for _, r := range results {
		if r.Done && r.Entropy < h {
			h = r.Entropy
		}
	}

	return h
}

func logTrack(cfg *Config, track string, results []Result) {
	if cfg.Verbose < 1 {
		return
	}
	for _, r := range results {
		cfg.Logger.Info("estimator finished",
			"track", track,
			"estimator", r.Kind.String(),
			"done", r.Done,
			"entropy", r.Entropy,
		)
		if cfg.Verbose < 2 || !r.Done {
			continue
		}
		if r.Predictions > 0 {
			cfg.Logger.Info("prediction detail",
				"track", track,
				"estimator", r.Kind.String(),
				"correct", r.Correct,
				"predictions", r.Predictions,
				"run", r.Run,
				"p_global", r.PGlobal,
				"p_local", r.PLocal,
			)
		} else {
			cfg.Logger.Info("bound detail",
				"track", track,
				"estimator", r.Kind.String(),
				"p_upper", r.PUpper,
			)
		}
	}
}
