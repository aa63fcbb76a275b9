package estimator

import (
	"math"
)

// markovChainLen is the chain length the extremal sequences are scored over.
const markovChainLen = 64

// Markov runs the first-order Markov estimate over a binary sequence.
//
// Transition and initial probabilities are the raw maximum-likelihood
// frequencies; the confidence toggle does not apply here. Six extremal
// 64-symbol chains are scored in the log2 domain and the most probable
// one sets the estimate. Chains crossing a transition that never occurred
// are excluded; when that excludes all six, the estimate cannot run.
//
// Parameters:
//   - bits: The sample sequence, symbols 0 and 1 only
//   - cfg: Estimator settings, nil for defaults (unused, kept for battery
//     uniformity)
//
// Returns:
//   - Result: Entropy in [0, 1]; Done=false when no chain is scorable
func Markov(bits []uint8, cfg *Config) Result {
	L := len(bits)
	if L < 2 {
		return notDone(KindMarkov)
	}

	var ones int64
	var trans [2][2]int64
	for i, b := range bits {
		ones += int64(b)
		if i > 0 {
			trans[bits[i-1]][b]++
		}
	}

	// log2 of initial and transition probabilities, -Inf marking classes
	// that never occurred so that any chain crossing one drops out of the
	// maximum below.
	logInit := [2]float64{
		log2Ratio(int64(L)-ones, int64(L)),
		log2Ratio(ones, int64(L)),
	}
	var logT [2][2]float64
	for a := range 2 {
		row := trans[a][0] + trans[a][1]
		for b := range 2 {
			logT[a][b] = log2Ratio(trans[a][b], row)
		}
	}

	chains := [6]float64{
		logInit[0] + 63*logT[0][0],                 // 00000...
		logInit[0] + 32*logT[0][1] + 31*logT[1][0], // 01010...
		logInit[0] + logT[0][1] + 62*logT[1][1],    // 01111...
		logInit[1] + logT[1][0] + 62*logT[0][0],    // 10000...
		logInit[1] + 32*logT[1][0] + 31*logT[0][1], // 10101...
		logInit[1] + 63*logT[1][1],                 // 11111...
	}

	best := math.Inf(-1)
	for _, c := range chains {
		if c > best {
			best = c
		}
	}
	if math.IsInf(best, -1) {
		return notDone(KindMarkov)
	}

	h := -best / markovChainLen
	if h > 1 {
		h = 1
	}

	return Result{
		Kind:    KindMarkov,
		Entropy: h,
		Done:    true,
		PUpper:  math.Exp2(-h),
	}
}

// log2Ratio returns log2(num/den), -Inf when the ratio is undefined or zero.
func log2Ratio(num, den int64) float64 {
	if num <= 0 || den <= 0 {
		return math.Inf(-1)
	}

	return math.Log2(float64(num) / float64(den))
}
