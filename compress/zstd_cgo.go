//go:build nobuild

// Build with -tags nobuild to back ZstdCodec with the reference libzstd
// implementation through cgo instead of the pure-Go encoder.

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data into a single zstd frame. Level 3
// tracks the pure-Go encoder's default closely enough that screen ratios
// stay comparable across builds.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses a zstd frame produced by Compress.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
