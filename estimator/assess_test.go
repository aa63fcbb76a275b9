package estimator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	translated, k := compact([]uint8{5, 200, 5, 7})
	assert.Equal(t, 3, k)
	assert.Equal(t, []uint8{0, 2, 0, 1}, translated)

	translated, k = compact([]uint8{255, 0, 255})
	assert.Equal(t, 2, k)
	assert.Equal(t, []uint8{1, 0, 1}, translated)

	translated, k = compact([]uint8{9, 9, 9})
	assert.Equal(t, 1, k)
	assert.Nil(t, translated)
}

func TestRunBatteryComposition(t *testing.T) {
	kinds := func(results []Result) []Kind {
		out := make([]Kind, len(results))
		for i, r := range results {
			out[i] = r.Kind
		}

		return out
	}

	binary, err := runBattery(xorshiftSamples(7, 1000, 2), 2, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KindMostCommon, KindCollision, KindMarkov, KindNSAMarkov,
		KindCompression, KindTTuple, KindLRS, KindMultiMCW, KindLag,
		KindMultiMMC, KindLZ78Y,
	}, kinds(binary))

	quaternary, err := runBattery(xorshiftSamples(7, 1000, 4), 4, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KindMostCommon, KindNSAMarkov, KindTTuple, KindLRS,
		KindMultiMCW, KindLag, KindMultiMMC, KindLZ78Y,
	}, kinds(quaternary))
}

func TestMinEntropy(t *testing.T) {
	results := []Result{
		{Kind: KindMostCommon, Done: true, Entropy: 0.9},
		{Kind: KindCompression, Done: false, Entropy: 0.1},
		{Kind: KindLag, Done: true, Entropy: 0.5},
	}

	assert.Equal(t, 0.5, minEntropy(results, 1.0))
	assert.Equal(t, 0.3, minEntropy(results, 0.3))
	assert.Equal(t, 2.0, minEntropy(nil, 2.0))
}

func TestAssessTranslationInvariance(t *testing.T) {
	// compact keeps value order, so any monotone relabeling leaves the
	// symbol-track results untouched. The bitstring track legitimately
	// differs because the raw widths differ.
	base := xorshiftSamples(11, 5000, 4)
	shifted := make([]uint8, len(base))
	for i, s := range base {
		shifted[i] = 10 * (s + 1)
	}

	a1, err := Assess(base)
	require.NoError(t, err)
	a2, err := Assess(shifted)
	require.NoError(t, err)

	assert.Equal(t, a1.AlphabetSize, a2.AlphabetSize)
	assert.Equal(t, a1.Original, a2.Original)
	assert.Equal(t, a1.HOriginal, a2.HOriginal)
	assert.NotEqual(t, a1.Fingerprint, a2.Fingerprint)
}

func TestAssessVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := Assess(xorshiftSamples(13, 2000, 4),
		WithVerbose(2),
		WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "estimator finished")
	assert.Contains(t, out, "track=original")
	assert.Contains(t, out, "track=bitstring")
	assert.Contains(t, out, "prediction detail")
	assert.Contains(t, out, "assessment finished")
}
