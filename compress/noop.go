package compress

// NoOpCodec provides a no-operation codec that bypasses data without compression.
//
// This codec is useful for:
//   - Testing and benchmarking scenarios where you want to measure overhead without compression
//   - Storing sample captures that are known to be incompressible
//   - Baseline measurements against the compressing codecs
//
// The screen never runs it: a fixed 1.0 ratio carries no information about
// the samples.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-operation codec that bypasses data.
//
// The returned codec implements Compressor, Decompressor and Codec, and
// simply passes data through without any processing.
//
// Returns:
//   - NoOpCodec: New no-op codec instance
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Name returns the registry name of the codec.
func (c NoOpCodec) Name() string {
	return CodecNone
}

// Compress bypasses compression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
//
// Parameters:
//   - data: Input data (returned as-is)
//
// Returns:
//   - []byte: Same slice as input data
//   - error: Always nil
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress bypasses decompression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
//
// Parameters:
//   - data: Input data (returned as-is)
//
// Returns:
//   - []byte: Same slice as input data
//   - error: Always nil
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
