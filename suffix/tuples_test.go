package suffix

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveTuples(samples []uint8, minRepeat int) Counts {
	c := Counts{Q: []int64{0}, S: []uint64{0}}
	for j := 1; ; j++ {
		counts := make(map[string]int64)
		for i := 0; i+j <= len(samples); i++ {
			counts[string(samples[i:i+j])]++
		}

		var q int64
		var s uint64
		for _, cnt := range counts {
			if cnt > q {
				q = cnt
			}
			s += uint64(cnt) * uint64(cnt-1) / 2
		}
		if q < 2 {
			break
		}

		c.V = j
		c.Q = append(c.Q, q)
		c.S = append(c.S, s)
	}

	if c.V == 0 {
		return Counts{U: 1}
	}
	c.U = c.V + 1
	for j := 1; j <= c.V; j++ {
		if c.Q[j] < int64(minRepeat) {
			c.U = j
			break
		}
	}

	return c
}

func TestTuplesAgainstReference(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint8
	}{
		{name: "Empty", samples: nil},
		{name: "NoRepeats", samples: []uint8{3, 1, 4, 15, 9, 2, 6}},
		{name: "Alternating", samples: bytes.Repeat([]uint8{0, 1}, 40)},
		{name: "ConstantRun", samples: bytes.Repeat([]uint8{3}, 50)},
		{name: "Periodic", samples: bytes.Repeat([]uint8{2, 0, 1}, 12)},
		{name: "RandomBinary", samples: xorshiftSamples(0x9e3779b97f4a7c15, 600, 2)},
		{name: "RandomQuaternary", samples: xorshiftSamples(0x452821e638d01377, 400, 4)},
		{name: "RandomBytes", samples: xorshiftSamples(0xbf58476d1ce4e5b9, 300, 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.samples)
			require.NoError(t, err)

			for _, minRepeat := range []int{2, 5, 35} {
				require.Equal(t, naiveTuples(tt.samples, minRepeat), a.Tuples(minRepeat),
					"minRepeat=%d", minRepeat)
			}
		})
	}
}

func TestTuplesThresholdBounds(t *testing.T) {
	// 0,1,0,1,...,0,1,2: every binary tuple repeats heavily, nothing
	// containing the trailing 2 does.
	samples := append(bytes.Repeat([]uint8{0, 1}, 30), 2)

	a, err := New(samples)
	require.NoError(t, err)

	c := a.Tuples(2)
	require.Positive(t, c.V)
	require.Equal(t, c.V+1, c.U, "every length up to V repeats at least twice")

	c = a.Tuples(1 << 30)
	require.Equal(t, 1, c.U, "unattainable threshold cuts off at length 1")
}

func BenchmarkNew(b *testing.B) {
	samples := xorshiftSamples(0x2545f4914f6cdd1d, 1<<20, 2)
	b.SetBytes(int64(len(samples)))

	for b.Loop() {
		a, err := New(samples)
		if err != nil {
			b.Fatal(err)
		}
		_ = a.SA()
	}
}

func BenchmarkTuples(b *testing.B) {
	samples := xorshiftSamples(0x2545f4914f6cdd1d, 1<<20, 2)
	a, err := New(samples)
	if err != nil {
		b.Fatal(err)
	}
	a.LCP()
	b.SetBytes(int64(len(samples)))

	for b.Loop() {
		_ = a.Tuples(35)
	}
}
