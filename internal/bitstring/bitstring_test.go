package bitstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint8
		want    int
	}{
		{name: "empty defaults to one bit", samples: nil, want: 1},
		{name: "constant zero still needs one bit", samples: []uint8{0, 0, 0}, want: 1},
		{name: "binary", samples: []uint8{0, 1, 0, 1}, want: 1},
		{name: "two bits", samples: []uint8{0, 3, 1}, want: 2},
		{name: "three bits", samples: []uint8{4}, want: 3},
		{name: "full byte", samples: []uint8{0, 255}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Width(tt.samples))
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint8
		width   int
		want    []uint8
	}{
		{name: "single symbol msb first", samples: []uint8{5}, width: 3, want: []uint8{1, 0, 1}},
		{name: "two symbols", samples: []uint8{1, 2}, width: 2, want: []uint8{0, 1, 1, 0}},
		{name: "binary passthrough", samples: []uint8{0, 1, 1}, width: 1, want: []uint8{0, 1, 1}},
		{name: "full byte", samples: []uint8{0xA5}, width: 8, want: []uint8{1, 0, 1, 0, 0, 1, 0, 1}},
		{name: "empty", samples: nil, width: 4, want: []uint8{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cleanup := Expand(tt.samples, tt.width)
			defer cleanup()

			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpandReusesPooledBuffer(t *testing.T) {
	got1, cleanup1 := Expand([]uint8{1, 2, 3}, 2)
	require.Len(t, got1, 6)
	cleanup1()

	// The pooled buffer is reused and freshly overwritten.
	got2, cleanup2 := Expand([]uint8{3, 3, 3}, 2)
	defer cleanup2()

	require.Equal(t, []uint8{1, 1, 1, 1, 1, 1}, got2)
}
