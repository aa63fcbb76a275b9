// Package compress provides compression codecs and a compression-based
// structure screen for noise-source sample payloads.
//
// A capture from a healthy entropy source should be nearly incompressible
// relative to its symbol width. General-purpose compressors are therefore a
// cheap first-pass check: a payload that shrinks substantially under several
// unrelated algorithms has visible structure and cannot be full entropy. The
// screen complements the estimator battery, it does not replace it, because
// compressors miss many statistical defects that the estimators catch.
//
// # Overview
//
// The package has two layers:
//
//  1. Codecs: named compression algorithms behind a common interface
//  2. Screen: runs every general-purpose codec over a payload, verifies each
//     roundtrip, and aggregates the ratios into a structured/incompressible
//     verdict
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	    Name() string
//	}
//
// Codecs are registered under stable names and retrieved with GetCodec or
// CreateCodec:
//
//	codec, err := compress.GetCodec(compress.CodecZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(samples)
//
// # Supported Algorithms
//
// **NoOp** (compress.CodecNone)
//
// Passes data through unchanged. Useful for baseline measurements; the screen
// never runs it.
//
// **Zstandard** (compress.CodecZstd)
//
// LZ77 matching plus finite-state entropy coding. The most sensitive codec in
// the registry: it reacts to repeated substrings and to skewed symbol
// frequencies, so it is usually the first to expose a defective source.
//
// **S2** (compress.CodecS2)
//
// Snappy-compatible block format tuned for throughput. Match-finding only, no
// entropy coding, so it responds to repetition but not to frequency skew.
//
// **LZ4** (compress.CodecLZ4)
//
// Frame format with raw literal runs. Similar sensitivity profile to S2 with
// lower overhead on incompressible input, since frames store such blocks
// uncompressed.
//
// Running codecs with different sensitivity profiles side by side makes the
// report more informative than any single ratio: frequency skew moves zstd
// but not S2 or LZ4, while periodicity moves all three.
//
// # Screening Payloads
//
//	report, err := compress.Screen(samples, 8)
//	if err != nil {
//	    return err
//	}
//	if report.Structured {
//	    // Mean ratio fell below the threshold; the payload cannot be
//	    // full entropy. Run the estimator battery for a bound.
//	}
//	for _, result := range report.Results {
//	    fmt.Printf("%s: ratio=%.4f savings=%.1f%%\n",
//	        result.Codec, result.CompressionRatio(), result.SpaceSavings())
//	}
//
// The symbolBits argument declares how many significant bits each sample byte
// carries. Full-byte samples pass 8; a bit-per-byte expansion passes 1. The
// report's Baseline is symbolBits/8, the best ratio an ideal codec could
// reach on uniform samples of that width, and the structured threshold is a
// fixed margin below it.
//
// Every compressed payload is decompressed and compared against the input
// before its ratio enters the report. A mismatch aborts the screen with
// errs.ErrCorruptedPayload rather than reporting a ratio from a codec that
// lost data.
//
// # Memory Management
//
// The compressing codecs pool their encoder and decoder state, so repeated
// screens allocate little beyond the output buffers. All codecs are stateless
// values and safe for concurrent use.
//
// # Limitations
//
// Compression ratios bound entropy from above, never from below. An
// incompressible payload may still have serious defects (for example
// long-range correlations beyond the codec window), and the margin built into
// the threshold means mild structure can pass unflagged. Treat the screen as
// a triage step before the estimator battery, not as an assessment.
package compress
