package estimator

// mcwWindows are the window lengths of the four subpredictors, smallest
// first.
var mcwWindows = [4]int{63, 255, 1023, 4095}

// mcwWindow tracks the most common symbol over a sliding window of
// samples. Count ties resolve to the symbol observed most recently.
type mcwWindow struct {
	buf    []uint8
	head   int
	size   int
	counts [256]int
	leader uint8
}

// add slides s into the window, evicting the oldest sample once the
// window is at capacity.
func (w *mcwWindow) add(s uint8) {
	if w.size == len(w.buf) {
		old := w.buf[w.head]
		w.head++
		if w.head == len(w.buf) {
			w.head = 0
		}
		w.size--
		w.counts[old]--
		if old == w.leader {
			w.elect()
		}
	}

	pos := w.head + w.size
	if pos >= len(w.buf) {
		pos -= len(w.buf)
	}
	w.buf[pos] = s
	w.size++
	w.counts[s]++
	if w.counts[s] >= w.counts[w.leader] {
		w.leader = s
	}
}

// elect rescans the window after the leader was evicted. The highest
// remaining count wins, ties resolving to the most recent occurrence.
func (w *mcwWindow) elect() {
	best := 0
	for _, c := range w.counts {
		if c > best {
			best = c
		}
	}
	for n := w.size - 1; n >= 0; n-- {
		pos := w.head + n
		if pos >= len(w.buf) {
			pos -= len(w.buf)
		}
		if s := w.buf[pos]; w.counts[s] == best {
			w.leader = s
			return
		}
	}
}

// MultiMCW runs the multi most common in window prediction estimate.
//
// Four subpredictors guess the most common symbol within sliding windows
// of the last 63, 255, 1023 and 4095 samples, a window covering whatever
// prefix exists until the sequence outgrows it. The guess scored on each
// step comes from the subpredictor with the best record so far, and the
// scored hit rate feeds the shared prediction bound.
//
// Parameters:
//   - samples: The sample sequence, symbols in [0, k)
//   - k: The alphabet size, in [2, 256]
//   - cfg: Estimator settings, nil for defaults
//
// Returns:
//   - Result: Entropy in bits per symbol; Done=false when len(samples) <= 63
func MultiMCW(samples []uint8, k int, cfg *Config) Result {
	if len(samples) <= mcwWindows[0] {
		return notDone(KindMultiMCW)
	}

	var subs [4]*mcwWindow
	for j, width := range mcwWindows {
		subs[j] = &mcwWindow{buf: make([]uint8, width)}
	}
	for _, s := range samples[:mcwWindows[0]] {
		for _, sub := range subs {
			sub.add(s)
		}
	}

	var scores [4]int64
	winner := 0

	var t tally
	for _, s := range samples[mcwWindows[0]:] {
		t.record(subs[winner].leader == s)
		for j, sub := range subs {
			if sub.leader == s {
				scores[j]++
				if scores[j] >= scores[winner] {
					winner = j
				}
			}
		}
		for _, sub := range subs {
			sub.add(s)
		}
	}

	return t.finish(KindMultiMCW, k, cfg)
}
