package compress

import (
	"bytes"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/rngtools/minentropy/errs"
)

// screenCodecs lists the codecs the screen runs, in report order. The no-op
// codec is excluded: its ratio is 1.0 by construction and would only dilute
// the aggregate.
var screenCodecs = []string{CodecZstd, CodecS2, CodecLZ4}

// screenMargin scales the incompressible baseline into the structured-data
// threshold. A payload whose mean ratio lands below margin*baseline shrank
// beyond what codec overhead variation explains.
const screenMargin = 0.9

// ScreenReport summarizes a compression screen of one sample payload.
type ScreenReport struct {
	// SymbolBits is the declared number of significant bits per sample byte.
	SymbolBits int

	// Baseline is the best ratio an ideal codec could reach on samples that
	// are uniform over SymbolBits bits, i.e. SymbolBits/8. Ratios near or
	// above the baseline are consistent with full-entropy samples.
	Baseline float64

	// Results holds the per-codec outcomes in the order the codecs ran.
	Results []CompressionStats

	// MeanRatio, MinRatio and MaxRatio aggregate the per-codec compression
	// ratios.
	MeanRatio float64
	MinRatio  float64
	MaxRatio  float64

	// Structured reports whether MeanRatio fell below the structured-data
	// threshold. A structured payload is not evidence of a broken source on
	// its own, but it guarantees the per-sample entropy is well below
	// SymbolBits and warrants a full assessment.
	Structured bool
}

// Threshold returns the mean-ratio cutoff below which the screen reports the
// payload as structured.
func (r *ScreenReport) Threshold() float64 {
	return screenMargin * r.Baseline
}

// Screen compresses data with every general-purpose codec in the registry and
// reports how much structure the codecs found.
//
// The screen is a cheap sanity check to run before a full estimator battery:
// samples from a healthy source should be nearly incompressible relative to
// their symbol width, so a payload that shrinks substantially has already
// failed the full-entropy hypothesis. The converse does not hold. Compressors
// miss many kinds of statistical defects, so an incompressible payload still
// needs the estimator battery.
//
// Every codec result is decompressed and compared against the input before it
// contributes to the report, so a defective codec surfaces as an error rather
// than a bogus ratio.
//
// Parameters:
//   - data: Sample payload, one sample per byte
//   - symbolBits: Significant bits per sample byte, in [1, 8]. Samples that
//     use the full byte range pass 8; expanded bitstrings pass 1.
//
// Returns:
//   - *ScreenReport: Per-codec and aggregate compression statistics
//   - error: errs.ErrNoSamples for empty data, errs.ErrInvalidConfig for an
//     out-of-range symbolBits, errs.ErrCorruptedPayload if a codec failed to
//     roundtrip the payload
func Screen(data []byte, symbolBits int) (*ScreenReport, error) {
	if len(data) == 0 {
		return nil, errs.ErrNoSamples
	}
	if symbolBits < 1 || symbolBits > 8 {
		return nil, fmt.Errorf("%w: symbol width %d bits outside [1, 8]", errs.ErrInvalidConfig, symbolBits)
	}

	results := make([]CompressionStats, 0, len(screenCodecs))
	ratios := make([]float64, 0, len(screenCodecs))

	for _, name := range screenCodecs {
		codec := builtinCodecs[name]

		compressed, err := codec.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("%s compression failed: %w", name, err)
		}

		restored, err := codec.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s decompression failed: %w", errs.ErrCorruptedPayload, name, err)
		}
		if !bytes.Equal(restored, data) {
			return nil, fmt.Errorf("%w: %s roundtrip mismatch", errs.ErrCorruptedPayload, name)
		}

		result := CompressionStats{
			Codec:          name,
			OriginalSize:   int64(len(data)),
			CompressedSize: int64(len(compressed)),
		}
		results = append(results, result)
		ratios = append(ratios, result.CompressionRatio())
	}

	mean, err := stats.Mean(ratios)
	if err != nil {
		return nil, fmt.Errorf("ratio aggregation failed: %w", err)
	}
	minRatio, err := stats.Min(ratios)
	if err != nil {
		return nil, fmt.Errorf("ratio aggregation failed: %w", err)
	}
	maxRatio, err := stats.Max(ratios)
	if err != nil {
		return nil, fmt.Errorf("ratio aggregation failed: %w", err)
	}

	report := &ScreenReport{
		SymbolBits: symbolBits,
		Baseline:   float64(symbolBits) / 8.0,
		Results:    results,
		MeanRatio:  mean,
		MinRatio:   minRatio,
		MaxRatio:   maxRatio,
	}
	report.Structured = mean < report.Threshold()

	return report, nil
}
