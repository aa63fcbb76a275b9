// Package minentropy assesses the min-entropy of noise-source output
// without assuming the samples are independent and identically distributed.
//
// The assessment follows the NIST SP 800-90B non-IID track: a battery of
// estimators bounds the per-sample min-entropy under different models of
// how a source could misbehave (skewed frequencies, collisions, Markov
// dependence, compressibility, repeated substrings, predictability), and
// the source is credited with the lowest bound. Sources wider than one bit
// are additionally assessed on the MSB-first bitstring expansion of their
// samples, and the final figure takes whichever track is lower.
//
// # Core Features
//
//   - Full non-IID estimator battery with per-estimator diagnostics
//   - Two-track assessment (symbol sequence and bitstring expansion) for
//     multi-bit alphabets
//   - Compression screen for cheap structure triage before a full run
//   - 64-bit xxHash64 fingerprints for correlating repeated runs
//   - Source registry with ID collision detection for keyed stores
//   - Structured logging of estimator internals at selectable verbosity
//
// # Basic Usage
//
// Assessing a capture of one-byte samples:
//
//	import "github.com/rngtools/minentropy"
//
//	samples, _ := os.ReadFile("noise.bin")
//
//	a, err := minentropy.Assess(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("assessed min-entropy: %.4f bits per %d-bit sample\n",
//	    a.HAssessed, a.BitWidth)
//
// Screening before a full assessment:
//
//	report, err := minentropy.Screen(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Structured {
//	    fmt.Println("visible structure; expect a low assessment")
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the estimator
// and compress packages, simplifying the most common use cases. For
// advanced usage, such as running individual estimators or codecs, use
// those packages directly.
package minentropy

import (
	"fmt"

	"github.com/rngtools/minentropy/compress"
	"github.com/rngtools/minentropy/errs"
	"github.com/rngtools/minentropy/estimator"
	"github.com/rngtools/minentropy/internal/bitstring"
	"github.com/rngtools/minentropy/internal/hash"
)

// Assess runs the full non-IID estimator battery over a sample sequence.
//
// Samples are one symbol per byte. The alphabet is inferred from the
// distinct values observed; binary sources run the extended battery with
// the three binary-only estimators, larger alphabets run the symbol track
// plus the bitstring track.
//
// Parameters:
//   - samples: Raw sample sequence, one symbol per byte
//   - opts: Optional configuration functions (see estimator.Option)
//
// Returns:
//   - *estimator.Assessment: Per-estimator results and the assessed
//     min-entropy in bits per sample
//   - error: An error if the samples or configuration are invalid.
//
// Available options:
//   - estimator.WithConfidenceBounds(true|false)
//   - estimator.WithMarkovCutoff(cutoff)
//   - estimator.WithVerbose(0|1|2)
//   - estimator.WithLogger(logger)
//
// Example:
//
//	a, err := minentropy.Assess(samples,
//	    estimator.WithVerbose(1),
//	    estimator.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range a.Original {
//	    fmt.Printf("%-16s done=%-5v H=%.4f\n", r.Kind, r.Done, r.Entropy)
//	}
func Assess(samples []uint8, opts ...estimator.Option) (*estimator.Assessment, error) {
	return estimator.Assess(samples, opts...)
}

// AssessBinary runs the estimator battery over a bit sequence.
//
// Use this for sources that emit one bit per sample. It behaves like
// Assess but rejects any symbol other than 0 or 1 up front, so a capture
// that was meant to be binary cannot silently assess as a wider alphabet.
//
// Parameters:
//   - bits: Bit sequence, one bit per byte, values 0 or 1
//   - opts: Optional configuration functions (see estimator.Option)
//
// Returns:
//   - *estimator.Assessment: Results in bits per bit
//   - error: errs.ErrSymbolOutOfRange if a symbol other than 0 or 1
//     occurs, otherwise as Assess
func AssessBinary(bits []uint8, opts ...estimator.Option) (*estimator.Assessment, error) {
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: value %d at index %d in a binary sequence", errs.ErrSymbolOutOfRange, b, i)
		}
	}

	return estimator.Assess(bits, opts...)
}

// Screen runs the compression screen over a sample sequence.
//
// The screen compresses the samples with every general-purpose codec and
// flags payloads that shrink beyond what their symbol width allows. It is
// a triage step: orders of magnitude faster than Assess, but it only ever
// proves the absence of full entropy, never its presence.
//
// The symbol width is inferred from the largest value observed, matching
// the width Assess uses for the bitstring track.
//
// Parameters:
//   - samples: Raw sample sequence, one symbol per byte
//
// Returns:
//   - *compress.ScreenReport: Per-codec ratios and the structured verdict
//   - error: An error if the samples are empty or a codec misbehaves.
//
// Example:
//
//	report, err := minentropy.Screen(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, result := range report.Results {
//	    fmt.Printf("%s: %.4f\n", result.Codec, result.CompressionRatio())
//	}
func Screen(samples []uint8) (*compress.ScreenReport, error) {
	return compress.Screen(samples, bitstring.Width(samples))
}

// Fingerprint returns the 64-bit xxHash64 fingerprint of a sample
// sequence.
//
// The same fingerprint appears in Assessment results, so callers can
// correlate screens, assessments and logs that ran over the same capture
// without retaining the capture itself.
func Fingerprint(samples []uint8) uint64 {
	return hash.Fingerprint(samples)
}

// SourceID converts a noise-source name to its 64-bit hash identifier.
//
// Use it to key assessment results by source in stores that want
// fixed-size identifiers rather than free-form names. To register a
// whole inventory and detect ID collisions between names, use a
// Registry instead.
//
// The hash function guarantees:
//   - Deterministic: same input always produces same output
//   - Collision-resistant: extremely low probability of collisions
//   - Fast: ~1-2 ns per hash on modern CPUs
//
// Example:
//
//	id := minentropy.SourceID("trng.ring-oscillator.0")
//	store.Put(id, assessment)
func SourceID(name string) uint64 {
	return hash.ID(name)
}
