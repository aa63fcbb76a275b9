// Package estimator implements the non-IID min-entropy estimator battery
// for noise-source samples.
//
// The battery follows the NIST SP 800-90B non-IID assessment: each
// estimator bounds the per-sample min-entropy under a different model of
// how a source could misbehave, and the assessment credits the lowest
// bound. Estimators run independently over the same sample sequence and
// return per-estimator diagnostics along with the entropy bound.
//
// # Key Features
//
//   - **Full Battery Driver**: Assess runs every applicable estimator and
//     combines the symbol-level and bitstring tracks into one assessment
//   - **Distributional Estimates**: Most common value, collision, Markov,
//     NSA Markov and Maurer-style compression statistics
//   - **Repetition Estimates**: t-tuple and longest repeated substring
//     bounds from a single suffix-array pass
//   - **Prediction Estimates**: MultiMCW, lag, MultiMMC and LZ78Y
//     predictors scored through shared confidence bounds
//   - **Configurable Conservatism**: The 99% confidence adjustments can
//     be switched off for maximum-likelihood-only estimates
//
// # Usage Patterns
//
// ## Full Assessment
//
// Run the whole battery and take the assessed minimum:
//
//	a, err := estimator.Assess(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("min-entropy: %.4f bits/sample\n", a.HAssessed)
//
// ## Single Estimates
//
// Each estimator is callable on its own:
//
//	r := estimator.MostCommon(samples, k, nil)
//	if r.Done {
//	    fmt.Printf("MCV: %.4f bits (p_u=%.4f)\n", r.Entropy, r.PUpper)
//	}
//
// ## Diagnostics
//
// Summaries and model internals go to a structured logger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	a, err := estimator.Assess(samples,
//	    estimator.WithVerbose(2),
//	    estimator.WithLogger(logger),
//	)
//
// # Result Semantics
//
// A Result with Done=false means the estimator declined the input (too
// few samples, or a statistic with no solution) and contributes nothing
// to the assessed minimum; it is not an error. Completed results always
// carry an entropy within [0, log2(k)].
package estimator
