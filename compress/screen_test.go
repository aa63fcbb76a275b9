package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rngtools/minentropy/errs"
)

func TestScreenValidation(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		report, err := Screen(nil, 8)
		require.ErrorIs(t, err, errs.ErrNoSamples)
		assert.Nil(t, report)
	})

	t.Run("symbol width too small", func(t *testing.T) {
		_, err := Screen([]byte{1, 2, 3}, 0)
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("symbol width too large", func(t *testing.T) {
		_, err := Screen([]byte{1, 2, 3}, 9)
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})
}

func TestScreenRandomFullWidth(t *testing.T) {
	data := testBytes(128*1024, 0xDEADBEEF)

	report, err := Screen(data, 8)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 8, report.SymbolBits)
	assert.InDelta(t, 1.0, report.Baseline, 1e-12)
	assert.Len(t, report.Results, len(screenCodecs))

	for i, result := range report.Results {
		assert.Equal(t, screenCodecs[i], result.Codec)
		assert.Equal(t, int64(len(data)), result.OriginalSize)
		assert.Positive(t, result.CompressedSize)
	}

	// Full-width random bytes sit at the incompressibility floor.
	assert.InDelta(t, 1.0, report.MeanRatio, 0.02)
	assert.LessOrEqual(t, report.MinRatio, report.MeanRatio)
	assert.GreaterOrEqual(t, report.MaxRatio, report.MeanRatio)
	assert.False(t, report.Structured)
}

func TestScreenStructuredPayload(t *testing.T) {
	data := bytes.Repeat([]byte("abcdabcdabcdabcd"), 8192)

	report, err := Screen(data, 8)
	require.NoError(t, err)

	assert.True(t, report.Structured, "a periodic payload must flag as structured")
	assert.Less(t, report.MeanRatio, report.Threshold())
	assert.Less(t, report.MinRatio, 0.05, "every codec should collapse a short period")
}

func TestScreenConstantBits(t *testing.T) {
	data := make([]byte, 64*1024)

	report, err := Screen(data, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.125, report.Baseline, 1e-12)
	assert.True(t, report.Structured)
	assert.Less(t, report.MeanRatio, 0.05)
}

func TestScreenRandomBits(t *testing.T) {
	// One random bit per byte. No lossless codec can beat the symbolBits/8
	// information floor on average, so the screen must not flag the payload.
	data := testBytes(128*1024, 99)
	for i := range data {
		data[i] &= 1
	}

	report, err := Screen(data, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.125, report.Baseline, 1e-12)
	assert.InDelta(t, 0.1125, report.Threshold(), 1e-9)
	assert.GreaterOrEqual(t, report.MeanRatio, 0.125*0.99)
	assert.False(t, report.Structured)
}

func TestScreenBiasedBytes(t *testing.T) {
	// Heavily skewed frequencies with no repetition pattern beyond what the
	// skew implies. Entropy coding alone recovers most of the redundancy, so
	// the mean ratio drops well below the full-width threshold.
	random := testBytes(128*1024, 7)
	data := make([]byte, len(random))
	for i, b := range random {
		// 3/4 of positions collapse to zero.
		if b < 192 {
			data[i] = 0
		} else {
			data[i] = b
		}
	}

	report, err := Screen(data, 8)
	require.NoError(t, err)

	assert.True(t, report.Structured)
	assert.Less(t, report.MinRatio, 0.75)
}

func BenchmarkScreen(b *testing.B) {
	payloads := []struct {
		name string
		data []byte
	}{
		{name: "random_64k", data: testBytes(64*1024, 1)},
		{name: "periodic_64k", data: bytes.Repeat([]byte("abcd"), 16*1024)},
	}

	for _, payload := range payloads {
		b.Run(payload.name, func(b *testing.B) {
			b.SetBytes(int64(len(payload.data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Screen(payload.data, 8); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
