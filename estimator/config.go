package estimator

import (
	"fmt"
	"log/slog"

	"github.com/rngtools/minentropy/errs"
	"github.com/rngtools/minentropy/internal/options"
)

// Config carries the settings shared by the estimators and the assessment
// driver. The zero value is NOT the default configuration; use
// DefaultConfig or pass nil to the estimator functions.
type Config struct {
	// ConfidenceBounds applies the 99% confidence adjustments: binomial
	// upper bounds and the run-based local bound for the prediction
	// estimates, the Hoeffding inflation for the NSA Markov estimate, and
	// the lowered sample means for the collision and compression
	// estimates. When false those estimates use raw maximum-likelihood
	// statistics.
	ConfidenceBounds bool
	// MarkovCutoff is the minimum occurrence count for a symbol to stay in
	// the NSA Markov model. 0 keeps every observed symbol.
	MarkovCutoff int
	// Verbose selects the diagnostic volume: 0 silent, 1 per-estimator
	// summaries, 2 adds internal model diagnostics.
	Verbose int
	// Logger receives the diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultConfig returns the settings used when none are supplied:
// confidence bounds on, cutoff 0, silent.
func DefaultConfig() *Config {
	return &Config{
		ConfidenceBounds: true,
		MarkovCutoff:     0,
		Verbose:          0,
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// confidence reports whether confidence adjustments apply. A nil receiver
// selects the defaults.
func (cfg *Config) confidence() bool {
	return cfg == nil || cfg.ConfidenceBounds
}

// markovCutoff returns the NSA Markov symbol cutoff. A nil receiver selects
// the defaults.
func (cfg *Config) markovCutoff() int {
	if cfg == nil {
		return 0
	}

	return cfg.MarkovCutoff
}

// normalized returns a config safe for driver use: nil becomes the default
// config and a missing logger is replaced by a discarding one.
func (cfg *Config) normalized() *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	if cfg.Logger != nil {
		return cfg
	}

	c := *cfg
	c.Logger = slog.New(slog.DiscardHandler)

	return &c
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithConfidenceBounds toggles the 99% confidence adjustments.
func WithConfidenceBounds(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.ConfidenceBounds = enabled
	})
}

// WithMarkovCutoff sets the minimum occurrence count for a symbol to stay
// in the NSA Markov model. The cutoff must not be negative.
func WithMarkovCutoff(cutoff int) Option {
	return options.New(func(cfg *Config) error {
		if cutoff < 0 {
			return fmt.Errorf("%w: markov cutoff %d is negative", errs.ErrInvalidConfig, cutoff)
		}
		cfg.MarkovCutoff = cutoff

		return nil
	})
}

// WithVerbose sets the diagnostic volume: 0 silent, 1 per-estimator
// summaries, 2 adds internal model diagnostics.
func WithVerbose(level int) Option {
	return options.New(func(cfg *Config) error {
		if level < 0 {
			return fmt.Errorf("%w: verbose level %d is negative", errs.ErrInvalidConfig, level)
		}
		cfg.Verbose = level

		return nil
	})
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(cfg *Config) error {
		if logger == nil {
			return fmt.Errorf("%w: logger is nil", errs.ErrInvalidConfig)
		}
		cfg.Logger = logger

		return nil
	})
}
