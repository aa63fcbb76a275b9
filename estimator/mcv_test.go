package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostCommonKnownCounts(t *testing.T) {
	// 60 zeros and 40 ones: pHat = 0.6, upper bound
	// 0.6 + 2.5758*sqrt(0.24/99) = 0.72683.
	samples := make([]uint8, 100)
	for i := 60; i < 100; i++ {
		samples[i] = 1
	}

	r := MostCommon(samples, 2, nil)
	require.True(t, r.Done)
	assert.Equal(t, KindMostCommon, r.Kind)
	assert.Equal(t, uint8(0), r.Mode)
	assert.Equal(t, int64(60), r.Count)
	assert.InDelta(t, 0.72683, r.PUpper, 1e-4)
	assert.InDelta(t, 0.46032, r.Entropy, 1e-4)
}

func TestMostCommonBoundCapsAtOne(t *testing.T) {
	// Six samples cannot support a 99% bound below 1 for a 0.5 mode.
	r := MostCommon([]uint8{0, 0, 0, 1, 1, 2}, 3, nil)
	require.True(t, r.Done)
	assert.Equal(t, uint8(0), r.Mode)
	assert.Equal(t, int64(3), r.Count)
	assert.Equal(t, 1.0, r.PUpper)
	assert.Zero(t, r.Entropy)
}

func TestMostCommonModeTie(t *testing.T) {
	// Equal counts keep the first (smallest) symbol as the mode.
	r := MostCommon([]uint8{1, 1, 0, 0}, 2, nil)
	require.True(t, r.Done)
	assert.Equal(t, uint8(0), r.Mode)
	assert.Equal(t, int64(2), r.Count)
}

func TestMostCommonTooShort(t *testing.T) {
	assert.False(t, MostCommon(nil, 2, nil).Done)
	assert.False(t, MostCommon([]uint8{1}, 2, nil).Done)
}

func TestMostCommonUniform(t *testing.T) {
	samples := xorshiftSamples(1, 100_000, 2)

	r := MostCommon(samples, 2, nil)
	require.True(t, r.Done)
	assert.Greater(t, r.Entropy, 0.97, "uniform bits should stay near 1 bit")
	assert.LessOrEqual(t, r.Entropy, 1.0)
	assert.InDelta(t, 50_000, float64(r.Count), 1_000)
}

func TestMostCommonCeiling(t *testing.T) {
	// A vanishing mode proportion clamps at log2(k), not above.
	samples := xorshiftSamples(3, 200_000, 4)

	r := MostCommon(samples, 4, nil)
	require.True(t, r.Done)
	assert.LessOrEqual(t, r.Entropy, 2.0)
	assert.Greater(t, r.Entropy, 1.9)
}
