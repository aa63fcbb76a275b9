package estimator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rngtools/minentropy/errs"
	"github.com/rngtools/minentropy/internal/options"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ConfidenceBounds)
	assert.Zero(t, cfg.MarkovCutoff)
	assert.Zero(t, cfg.Verbose)
	assert.NotNil(t, cfg.Logger)
}

func TestConfigNilReceiver(t *testing.T) {
	var cfg *Config
	assert.True(t, cfg.confidence())
	assert.Zero(t, cfg.markovCutoff())

	norm := cfg.normalized()
	require.NotNil(t, norm)
	assert.True(t, norm.ConfidenceBounds)
	assert.NotNil(t, norm.Logger)
}

func TestConfigNormalizedFillsLogger(t *testing.T) {
	cfg := &Config{ConfidenceBounds: false, Verbose: 1}

	norm := cfg.normalized()
	assert.NotNil(t, norm.Logger)
	assert.False(t, norm.ConfidenceBounds)
	assert.Equal(t, 1, norm.Verbose)

	// The original is left untouched.
	assert.Nil(t, cfg.Logger)

	// A config that already carries a logger passes through as is.
	withLogger := DefaultConfig()
	assert.Same(t, withLogger, withLogger.normalized())
}

func TestOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	cfg := DefaultConfig()
	err := options.Apply(cfg,
		WithConfidenceBounds(false),
		WithMarkovCutoff(3),
		WithVerbose(2),
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.False(t, cfg.ConfidenceBounds)
	assert.Equal(t, 3, cfg.MarkovCutoff)
	assert.Equal(t, 2, cfg.Verbose)
	assert.Same(t, logger, cfg.Logger)
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative cutoff", WithMarkovCutoff(-1)},
		{"negative verbose", WithVerbose(-1)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := options.Apply(DefaultConfig(), tt.opt)
			assert.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}
