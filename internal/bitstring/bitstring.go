// Package bitstring expands multi-bit symbols into the one-bit sample
// sequence consumed by the binary-only estimators.
package bitstring

import (
	"math/bits"

	"github.com/rngtools/minentropy/internal/pool"
)

// Width returns the number of bits needed to represent the largest symbol
// in samples, at least 1.
func Width(samples []uint8) int {
	var maxSym uint8
	for _, s := range samples {
		if s > maxSym {
			maxSym = s
		}
	}

	width := bits.Len8(maxSym)
	if width == 0 {
		width = 1
	}

	return width
}

// Expand converts samples into a sequence of one-bit symbols, most
// significant bit first, using width bits per symbol.
//
// The backing buffer comes from the expansion pool; the caller must invoke
// the returned cleanup when done and must not retain the slice afterwards.
func Expand(samples []uint8, width int) ([]uint8, func()) {
	bb := pool.GetBitBuffer()
	bb.SetLength(len(samples) * width)
	out := bb.B

	idx := 0
	for _, s := range samples {
		for j := width - 1; j >= 0; j-- {
			out[idx] = (s >> uint(j)) & 1
			idx++
		}
	}

	return out, func() { pool.PutBitBuffer(bb) }
}
