package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionBlockBoundary(t *testing.T) {
	// 1002 six-bit blocks are the minimum: 1000 prime the dictionary and
	// at least 2 must remain for a deviation estimate.
	short := xorshiftSamples(3, 6011, 2)
	assert.False(t, Compression(short, nil).Done)

	enough := xorshiftSamples(3, 6012, 2)
	r := Compression(enough, nil)
	assert.True(t, r.Done)
	assert.Equal(t, KindCompression, r.Kind)
}

func TestCompressionConstant(t *testing.T) {
	bits := make([]uint8, 60_000)

	r := Compression(bits, nil)
	require.True(t, r.Done)
	assert.Less(t, r.Entropy, 0.01)
	assert.Greater(t, r.PUpper, 0.99)
}

func TestCompressionPeriodicBlocks(t *testing.T) {
	// Twelve-bit period, so the block stream alternates between 000000
	// and 111111. Every recurrence distance is 2, the deviation mean is
	// exactly 1 with zero spread, and the estimate lands just above the
	// constant case.
	bits := repeatPattern([]uint8{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}, 60_000)

	periodic := Compression(bits, nil)
	require.True(t, periodic.Done)
	assert.Greater(t, periodic.Entropy, 0.005)
	assert.Less(t, periodic.Entropy, 0.2)

	constant := Compression(make([]uint8, 60_000), nil)
	assert.Greater(t, periodic.Entropy, constant.Entropy)
}

func TestCompressionUniform(t *testing.T) {
	bits := xorshiftSamples(29, 600_000, 2)

	r := Compression(bits, nil)
	require.True(t, r.Done)
	assert.Greater(t, r.Entropy, 0.7)
	assert.LessOrEqual(t, r.Entropy, 1.0)
}

func TestCompressionConfidenceOrdering(t *testing.T) {
	bits := xorshiftSamples(31, 120_000, 2)

	on := Compression(bits, &Config{ConfidenceBounds: true})
	off := Compression(bits, &Config{ConfidenceBounds: false})
	require.True(t, on.Done)
	require.True(t, off.Done)
	assert.Less(t, on.Entropy, off.Entropy)
}

func TestCompressionGExpectation(t *testing.T) {
	num := 16_666
	logs := make([]float64, num+1)
	for u := 1; u <= num; u++ {
		logs[u] = math.Log2(float64(u))
	}

	rest := float64(1<<compressionBlockBits - 1)
	g := func(p float64) float64 {
		q := (1 - p) / rest
		return compressionG(p, num, logs) + rest*compressionG(q, num, logs)
	}

	// At the uniform point the expected recurrence log is near
	// log2(64) minus the Euler correction gamma/ln 2.
	uniform := g(math.Exp2(-compressionBlockBits))
	assert.Greater(t, uniform, 5.0)
	assert.Less(t, uniform, 5.35)

	// The expectation decreases as probability concentrates.
	assert.Greater(t, uniform, g(0.5))
	assert.Greater(t, g(0.5), g(0.99))

	assert.Zero(t, compressionG(0, num, logs))
}
