// Package errs defines the sentinel errors shared across minentropy packages.
//
// Callers match these with errors.Is; producing sites wrap them with
// fmt.Errorf("%w: ...") to attach context. Insufficient input is deliberately
// not represented here: estimators signal it through Result.Done instead of
// an error, so an assessment can continue with the estimators that did run.
package errs

import "errors"

// Input validation errors.
var (
	// ErrInvalidAlphabet indicates the declared alphabet size is outside [2, 256].
	ErrInvalidAlphabet = errors.New("invalid alphabet size")

	// ErrSymbolOutOfRange indicates a sample symbol is not less than the
	// declared alphabet size.
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrSampleCountExceeded indicates the sample sequence is longer than the
	// suffix-sort index type can address.
	ErrSampleCountExceeded = errors.New("sample count exceeded")

	// ErrNoSamples indicates an empty sample sequence was provided where at
	// least one symbol is required.
	ErrNoSamples = errors.New("no samples provided")
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates an option produced an unusable configuration.
	ErrInvalidConfig = errors.New("invalid config")
)

// Numeric errors.
var (
	// ErrNumericFault indicates an estimator produced a non-finite
	// intermediate value from finite input. This is a data or logic fault,
	// not a tolerated underflow.
	ErrNumericFault = errors.New("numeric fault")
)

// Compression screen errors.
var (
	// ErrUnknownCodec indicates a codec name that has not been registered.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrCorruptedPayload indicates a codec failed to reproduce its input on
	// the verification roundtrip.
	ErrCorruptedPayload = errors.New("corrupted payload")
)

// Source registry errors.
var (
	// ErrInvalidSourceName indicates an empty noise-source name.
	ErrInvalidSourceName = errors.New("invalid source name")

	// ErrDuplicateSource indicates a noise-source name was registered twice.
	ErrDuplicateSource = errors.New("source already registered")

	// ErrIDCollision indicates a bare source ID was registered twice. With
	// no names attached a reused ID cannot be told apart from a genuine
	// hash collision.
	ErrIDCollision = errors.New("source id collision")
)
