package compress

import (
	"fmt"
	"sort"

	"github.com/rngtools/minentropy/errs"
)

// Codec names accepted by GetCodec and CreateCodec.
const (
	CodecNone = "none"
	CodecZstd = "zstd"
	CodecS2   = "s2"
	CodecLZ4  = "lz4"
)

// Compressor compresses sample payloads.
//
// The input is a raw noise-source capture, one sample per byte, with none of
// the structure a format-aware compressor could rely on. Implementations must
// therefore cope with incompressible input: compressing high-entropy data may
// legitimately grow the payload by the container overhead.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Separate interfaces allow asymmetric implementations where compression and
// decompression have different performance characteristics or resource
// requirements.
//
// Error conditions:
//   - Returns an error if the input is corrupted or invalid
//   - Returns an error if the data was compressed with another algorithm
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression under a stable name.
//
// The name keys the codec registry and labels per-codec entries in screen
// reports.
type Codec interface {
	Compressor
	Decompressor

	// Name returns the registry name of the codec.
	Name() string
}

// CompressionStats records the outcome of compressing one payload with one
// codec.
type CompressionStats struct {
	// Codec is the registry name of the codec that produced the result.
	Codec string

	// OriginalSize is the size of input data before compression.
	OriginalSize int64

	// CompressedSize is the size of data after compression.
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values below 1.0 indicate the codec found structure to remove. Values at or
// slightly above 1.0 indicate incompressible data paying the container
// overhead, the expected outcome for a healthy noise source.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate more removable structure, which for noise-source
// captures means less entropy than the payload size suggests.
//
// Returns:
//   - float64: Space savings percentage (negative when compression expanded
//     the payload)
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// builtinCodecs holds the shared codec instances, keyed by name. All built-in
// codecs are stateless values, so sharing them is safe.
var builtinCodecs = map[string]Codec{
	CodecNone: NewNoOpCodec(),
	CodecZstd: NewZstdCodec(),
	CodecS2:   NewS2Codec(),
	CodecLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the shared built-in Codec registered under name.
//
// Returns:
//   - Codec: The shared codec instance
//   - error: errs.ErrUnknownCodec when name is not registered
func GetCodec(name string) (Codec, error) {
	if codec, ok := builtinCodecs[name]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCodec, name)
}

// CreateCodec creates a fresh Codec instance for the specified name.
//
// Use this over GetCodec when a caller wants an instance it can hold onto
// independently of the registry.
//
// Parameters:
//   - name: Registry name of the codec (see the Codec* constants)
//
// Returns:
//   - Codec: New codec instance for the name
//   - error: errs.ErrUnknownCodec when name is not registered
func CreateCodec(name string) (Codec, error) {
	switch name {
	case CodecNone:
		return NewNoOpCodec(), nil
	case CodecZstd:
		return NewZstdCodec(), nil
	case CodecS2:
		return NewS2Codec(), nil
	case CodecLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCodec, name)
	}
}

// Codecs returns the names of all registered codecs in ascending order.
func Codecs() []string {
	names := make([]string, 0, len(builtinCodecs))
	for name := range builtinCodecs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
