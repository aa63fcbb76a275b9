package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveLZ78Y replays the dictionary prediction stream with string-keyed
// maps, including the registration cap: fresh strings register longest
// first until the dictionary fills, registered strings keep counting.
func naiveLZ78Y(samples []uint8, k int) (correct, predictions, run int64) {
	counts := make([]map[string][]int64, lz78yWindow+1)
	for j := 1; j <= lz78yWindow; j++ {
		counts[j] = make(map[string][]int64)
	}
	size := 0

	var current int64
	for i := lz78yWindow + 1; i < len(samples); i++ {
		s := samples[i]

		for j := lz78yWindow; j >= 1; j-- {
			key := string(samples[i-1-j : i-1])
			c := counts[j][key]
			if c == nil {
				if size >= lz78yMaxEntries {
					continue
				}
				size++
				c = make([]int64, k)
				counts[j][key] = c
			}
			c[samples[i-1]]++
		}

		var best int64
		guess := uint8(0)
		seen := false
		for j := 1; j <= lz78yWindow; j++ {
			c := counts[j][string(samples[i-j:i])]
			if c == nil {
				continue
			}
			g, cnt := uint8(0), int64(0)
			for sym, n := range c {
				if n != 0 && n >= cnt {
					g, cnt = uint8(sym), n
				}
			}
			if cnt >= best {
				best, guess, seen = cnt, g, true
			}
		}

		predictions++
		if seen && guess == s {
			correct++
			current++
			if current > run {
				run = current
			}
		} else {
			current = 0
		}
	}

	return correct, predictions, run
}

func TestLZ78YMatchesNaive(t *testing.T) {
	// k=2 exercises the flat tables, k>2 the trie; the capped cases push
	// past 65536 registered strings so the longest-first boundary rule
	// is in play.
	tests := []struct {
		name    string
		samples []uint8
		k       int
	}{
		{"binary", xorshiftSamples(103, 2500, 2), 2},
		{"binary biased", biasedBits(107, 3000, 1, 4), 2},
		{"quaternary", xorshiftSamples(109, 1500, 4), 4},
		{"octets", xorshiftSamples(113, 1500, 256), 256},
		{"periodic", repeatPattern([]uint8{0, 1, 2, 3, 1}, 1500), 4},
		{"binary capped", xorshiftSamples(127, 20_000, 2), 2},
		{"hex capped", xorshiftSamples(131, 6000, 16), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, predictions, run := naiveLZ78Y(tt.samples, tt.k)

			r := LZ78Y(tt.samples, tt.k, &Config{ConfidenceBounds: false})
			require.True(t, r.Done)
			assert.Equal(t, correct, r.Correct)
			assert.Equal(t, predictions, r.Predictions)
			assert.Equal(t, run, r.Run)
		})
	}
}

func TestLZ78YConstant(t *testing.T) {
	samples := repeatPattern([]uint8{0}, 100)

	r := LZ78Y(samples, 2, &Config{ConfidenceBounds: false})
	require.True(t, r.Done)
	assert.Equal(t, int64(83), r.Correct)
	assert.Equal(t, int64(83), r.Predictions)
	assert.Equal(t, int64(83), r.Run)
	assert.Zero(t, r.Entropy)
}

func TestLZ78YLengthBoundary(t *testing.T) {
	// The window plus one continuation must precede the first scored
	// prediction.
	assert.False(t, LZ78Y(repeatPattern([]uint8{1}, 17), 2, nil).Done)

	r := LZ78Y(repeatPattern([]uint8{1}, 18), 2, nil)
	require.True(t, r.Done)
	assert.Equal(t, int64(1), r.Predictions)
}

func TestLZ78YPeriodic(t *testing.T) {
	samples := repeatPattern([]uint8{0, 1, 2}, 9000)

	r := LZ78Y(samples, 3, nil)
	require.True(t, r.Done)
	assert.Less(t, r.Entropy, 0.05)
}

func TestLZ78YUniform(t *testing.T) {
	samples := xorshiftSamples(137, 50_000, 2)

	r := LZ78Y(samples, 2, nil)
	require.True(t, r.Done)
	assert.Greater(t, r.Entropy, 0.75)
	assert.LessOrEqual(t, r.Entropy, 1.0)
}
