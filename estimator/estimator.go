package estimator

import "strings"

// Kind identifies a min-entropy estimator.
type Kind int

const (
	// KindMostCommon is the most common value estimate.
	KindMostCommon Kind = iota
	// KindCollision is the collision estimate over binary sequences.
	KindCollision
	// KindMarkov is the first-order Markov estimate over binary sequences.
	KindMarkov
	// KindNSAMarkov is the general-alphabet Markov estimate with symbol cutoff.
	KindNSAMarkov
	// KindCompression is the Maurer-style compression estimate over binary sequences.
	KindCompression
	// KindTTuple is the t-tuple estimate.
	KindTTuple
	// KindLRS is the longest repeated substring estimate.
	KindLRS
	// KindMultiMCW is the multi most-common-in-window prediction estimate.
	KindMultiMCW
	// KindLag is the lag prediction estimate.
	KindLag
	// KindMultiMMC is the multi Markov-model-with-counting prediction estimate.
	KindMultiMMC
	// KindLZ78Y is the LZ78Y prediction estimate.
	KindLZ78Y
)

// kindNames maps Kind to their string representations.
var kindNames = map[Kind]string{
	KindMostCommon:  "mcv",
	KindCollision:   "collision",
	KindMarkov:      "markov",
	KindNSAMarkov:   "nsa-markov",
	KindCompression: "compression",
	KindTTuple:      "t-tuple",
	KindLRS:         "lrs",
	KindMultiMCW:    "multi-mcw",
	KindLag:         "lag",
	KindMultiMMC:    "multi-mmc",
	KindLZ78Y:       "lz78y",
}

// String returns the string representation of the estimator kind.
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "unknown"
}

// kindFromString maps string names to Kind.
var kindFromString = map[string]Kind{
	"mcv":         KindMostCommon,
	"collision":   KindCollision,
	"markov":      KindMarkov,
	"nsa-markov":  KindNSAMarkov,
	"compression": KindCompression,
	"t-tuple":     KindTTuple,
	"lrs":         KindLRS,
	"multi-mcw":   KindMultiMCW,
	"lag":         KindLag,
	"multi-mmc":   KindMultiMMC,
	"lz78y":       KindLZ78Y,
}

// KindFromString returns the Kind for a given string name.
// Returns Kind(-1) for unknown names.
func KindFromString(name string) Kind {
	if kind, exists := kindFromString[strings.ToLower(name)]; exists {
		return kind
	}

	return Kind(-1) // Invalid Kind
}

// Result is the outcome of a single estimator run.
//
// An estimator that cannot run on the given sequence, typically because the
// sequence is too short, reports Done=false and Entropy=-1. That is not an
// error; the assessment minimum simply skips the result.
type Result struct {
	// Kind identifies the estimator that produced this result.
	Kind Kind
	// Entropy is the min-entropy estimate in bits per symbol, or -1 when
	// Done is false.
	Entropy float64
	// Done reports whether the estimator ran to completion.
	Done bool

	// PUpper is the upper-bounded symbol probability behind Entropy.
	PUpper float64

	// Mode and Count describe the modal symbol. Populated by the most
	// common value estimate.
	Mode  uint8
	Count int64

	// Correct, Predictions and Run are the raw prediction statistics
	// populated by the prediction estimates; Run is the longest streak of
	// correct predictions.
	Correct     int64
	Predictions int64
	Run         int64
	// PGlobal is the upper-bounded global prediction probability and PLocal
	// the run-based local probability (-1 when confidence bounds are off).
	// Populated by the prediction estimates.
	PGlobal float64
	PLocal  float64
}

// notDone marks an estimator that could not run on the given sequence.
func notDone(kind Kind) Result {
	return Result{Kind: kind, Entropy: -1}
}
