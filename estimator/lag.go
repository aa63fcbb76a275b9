package estimator

import (
	"github.com/rngtools/minentropy/internal/pool"
)

// lagDepth is the largest lag the estimator considers.
const lagDepth = 128

// lagRing remembers the recent positions of one symbol, oldest first.
// Capacity lagDepth suffices: a window of lagDepth positions cannot hold
// more occurrences than that, so a full ring only ever reuses the slot of
// an entry that just left the window.
type lagRing struct {
	pos  []int32
	head int
	size int
}

func (r *lagRing) push(p int32) {
	pos := r.head + r.size
	if pos >= len(r.pos) {
		pos -= len(r.pos)
	}
	r.pos[pos] = p
	if r.size == len(r.pos) {
		r.head++
		if r.head == len(r.pos) {
			r.head = 0
		}
		return
	}
	r.size++
}

// prune drops entries before min from the front of the ring.
func (r *lagRing) prune(min int32) {
	for r.size > 0 && r.pos[r.head] < min {
		r.head++
		if r.head == len(r.pos) {
			r.head = 0
		}
		r.size--
	}
}

func (r *lagRing) at(n int) int32 {
	pos := r.head + n
	if pos >= len(r.pos) {
		pos -= len(r.pos)
	}

	return r.pos[pos]
}

// Lag runs the lag prediction estimate.
//
// One subpredictor per lag in [1, 128] guesses that the sequence repeats
// with that period. Every lag at which the current symbol reappears gets
// a vote, and the guess scored on each step is the sample one
// highest-voted lag back. Votes come from per-symbol rings of recent
// positions, so a step costs only as many updates as the current symbol
// has recent occurrences instead of a scan over all 128 lags.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in bits per symbol; Done=false when len(samples) < 2
func Lag(samples []uint8, k int, cfg *Config) Result {
	if len(samples) < 2 {
		return notDone(KindLag)
	}

	backing, release := pool.GetInt32Slice(256 * lagDepth)
	defer release()
	var rings [256]lagRing
	for s := range rings {
		rings[s].pos = backing[s*lagDepth : (s+1)*lagDepth]
	}

	votes := make([]int64, lagDepth+1)
	win := 1

	var t tally
	rings[samples[0]].push(0)
	for i := 1; i < len(samples); i++ {
		s := samples[i]
		t.record(samples[i-win] == s)

		r := &rings[s]
		r.prune(int32(i - lagDepth)) //nolint:gosec // the driver bounds i below 1<<31
		// Newest entries first, so the votes land in ascending lag
		// order and an equal vote count moves the winner to the lag
		// that reached it last.
		for n := r.size - 1; n >= 0; n-- {
			d := i - int(r.at(n))
			votes[d]++
			if votes[d] >= votes[win] {
				win = d
			}
		}
		r.push(int32(i)) //nolint:gosec // the driver bounds i below 1<<31
	}

	return t.finish(KindLag, k, cfg)
}
