// Package dict implements the bounded prefix dictionary behind the
// prediction estimators.
//
// A dictionary is a trie of pages. Each page is a direct-mapped table of
// entries keyed by symbol modulo the table size; table sizes come from a
// fixed ascending prime ladder that ends at the exact alphabet size, so a
// page escalates through the ladder on collision and degenerates to a
// perfect lookup table in the worst case. An entry simultaneously counts
// how often its symbol continued the page's prefix and branches to the
// page extending the prefix by that symbol, which keeps transition counts
// and trie structure in one allocation.
//
// Dictionaries bound the number of registered prefixes. Once full, counts
// on known prefixes keep accumulating but new prefixes are dropped, which
// is what the prediction estimators specify for their model caps.
package dict

import (
	"fmt"
	"slices"

	"github.com/rngtools/minentropy/internal/pool"
)

// ladderPrimes is the fixed modulus ladder shared by all dictionaries.
// A dictionary uses the primes below its alphabet size, then the alphabet
// size itself as the final, collision-free modulus.
var ladderPrimes = []int{3, 7, 13, 31, 61, 127, 251}

// Page is one trie node: a direct-mapped symbol table for a single prefix.
type Page struct {
	entries  []entry
	observed bool
}

type entry struct {
	sym    uint8
	count  uint32
	branch *Page
}

func (e *entry) occupied() bool {
	return e.count > 0 || e.branch != nil
}

// Dict is a bounded prefix dictionary over an alphabet of size k.
// It is owned by a single estimator run and is not safe for concurrent use.
type Dict struct {
	root        *Page
	arena       *pool.Arena[Page]
	ladder      []int
	k           int
	prefixes    int
	maxPrefixes int // 0 = unbounded
}

// New creates a dictionary for alphabet size k, bounding the number of
// registered prefixes to maxPrefixes (0 = unbounded).
func New(k, maxPrefixes int) *Dict {
	if k < 2 || k > 256 {
		panic(fmt.Sprintf("minentropy: dict alphabet size %d out of range", k))
	}

	ladder := make([]int, 0, len(ladderPrimes)+1)
	for _, p := range ladderPrimes {
		if p < k {
			ladder = append(ladder, p)
		}
	}
	ladder = append(ladder, k)

	arena := pool.NewArena[Page](256)

	return &Dict{
		root:        arena.Get(),
		arena:       arena,
		ladder:      ladder,
		k:           k,
		maxPrefixes: maxPrefixes,
	}
}

// Root returns the page for the empty prefix.
func (d *Dict) Root() *Page {
	return d.root
}

// Full reports whether the prefix bound has been reached.
func (d *Dict) Full() bool {
	return d.maxPrefixes > 0 && d.prefixes >= d.maxPrefixes
}

// Descend returns the page extending p's prefix by sym, creating the branch
// when create is set. Returns nil when the branch does not exist and may
// not be created.
func (d *Dict) Descend(p *Page, sym uint8, create bool) *Page {
	if p == nil {
		return nil
	}

	if !create {
		if e := p.find(sym); e != nil {
			return e.branch
		}

		return nil
	}

	e := d.ensure(p, sym)
	if e.branch == nil {
		e.branch = d.arena.Get()
	}

	return e.branch
}

// Record registers p's prefix if needed and counts next as its
// continuation. Reports false when the dictionary is full and the prefix
// was not yet registered; no count is recorded in that case.
func (d *Dict) Record(p *Page, next uint8) bool {
	if p == nil {
		return false
	}

	if !p.observed {
		if d.Full() {
			return false
		}
		p.observed = true
		d.prefixes++
	}

	d.ensure(p, next).count++

	return true
}

// Observe walks prefix from the root, creating pages as the prefix bound
// allows, and counts next as its continuation. Reports whether the prefix
// was registered before this call.
func (d *Dict) Observe(prefix []uint8, next uint8) bool {
	p := d.root
	create := !d.Full()
	for _, sym := range prefix {
		if p = d.Descend(p, sym, create); p == nil {
			return false
		}
	}

	existed := p.observed
	d.Record(p, next)

	return existed
}

// Predict walks prefix without creating pages and returns the
// highest-count continuation recorded for it.
func (d *Dict) Predict(prefix []uint8) (sym uint8, count uint32, ok bool) {
	p := d.root
	for _, s := range prefix {
		if p = d.Descend(p, s, false); p == nil {
			return 0, 0, false
		}
	}

	return p.Best()
}

// Best returns the entry with the highest continuation count on p. A
// candidate replaces the incumbent only with a strictly greater count, or
// an equal count and a larger symbol value. Structural entries that never
// counted a continuation are not candidates.
func (p *Page) Best() (sym uint8, count uint32, ok bool) {
	if p == nil {
		return 0, 0, false
	}

	for i := range p.entries {
		e := &p.entries[i]
		if e.count == 0 {
			continue
		}
		if e.count > count || (e.count == count && e.sym > sym) {
			sym, count, ok = e.sym, e.count, true
		}
	}

	return sym, count, ok
}

// Observed reports whether the page's prefix was ever completed, as
// opposed to existing only as structure on the way to longer prefixes.
func (p *Page) Observed() bool {
	return p != nil && p.observed
}

// find returns the entry for sym, or nil when absent. Pages never hold two
// symbols in one slot, so a single probe decides.
func (p *Page) find(sym uint8) *entry {
	if len(p.entries) == 0 {
		return nil
	}

	e := &p.entries[int(sym)%len(p.entries)]
	if e.sym == sym && e.occupied() {
		return e
	}

	return nil
}

// ensure returns the entry for sym, escalating the page through the
// modulus ladder until sym's slot is free of foreign occupants.
func (d *Dict) ensure(p *Page, sym uint8) *entry {
	if len(p.entries) == 0 {
		p.entries = make([]entry, d.ladder[0])
	}

	for {
		e := &p.entries[int(sym)%len(p.entries)]
		if e.occupied() && e.sym != sym {
			d.escalate(p)
			continue
		}
		e.sym = sym

		return e
	}
}

// escalate rehashes p into the next ladder modulus that houses all
// occupied entries collision-free. The final modulus equals the alphabet
// size, where distinct symbols cannot collide.
func (d *Dict) escalate(p *Page) {
	idx := slices.Index(d.ladder, len(p.entries)) + 1

	for ; ; idx++ {
		mod := d.ladder[idx]
		next := make([]entry, mod)
		ok := true
		for i := range p.entries {
			e := &p.entries[i]
			if !e.occupied() {
				continue
			}
			slot := &next[int(e.sym)%mod]
			if slot.occupied() {
				ok = false
				break
			}
			*slot = *e
		}
		if ok {
			p.entries = next
			return
		}
	}
}

// ModulusStats describes the pages sharing one table modulus.
type ModulusStats struct {
	Modulus  int // table size
	Pages    int // pages at this modulus
	Slots    int // total slots across those pages
	Occupied int // occupied slots across those pages
}

// Stats summarizes a dictionary at teardown.
type Stats struct {
	Prefixes  int            // registered prefixes
	Pages     int            // pages allocated, including structural ones
	Entries   int            // occupied entries across all pages
	ByModulus []ModulusStats // occupancy per modulus class, ascending
	Arena     pool.ArenaStats
}

// Close tears the trie down post-order, releasing every page to the arena,
// and returns occupancy diagnostics. The dictionary must not be used
// afterwards.
func (d *Dict) Close() Stats {
	byMod := make(map[int]*ModulusStats)
	stats := Stats{Prefixes: d.prefixes}

	var walk func(p *Page)
	walk = func(p *Page) {
		occ := 0
		for i := range p.entries {
			e := &p.entries[i]
			if e.branch != nil {
				walk(e.branch)
			}
			if e.occupied() {
				occ++
			}
		}

		mod := len(p.entries)
		ms := byMod[mod]
		if ms == nil {
			ms = &ModulusStats{Modulus: mod}
			byMod[mod] = ms
		}
		ms.Pages++
		ms.Slots += mod
		ms.Occupied += occ

		stats.Pages++
		stats.Entries += occ

		p.entries = nil
		d.arena.Put(p)
	}
	walk(d.root)
	d.root = nil

	stats.ByModulus = make([]ModulusStats, 0, len(byMod))
	for _, ms := range byMod {
		stats.ByModulus = append(stats.ByModulus, *ms)
	}
	slices.SortFunc(stats.ByModulus, func(a, b ModulusStats) int { return a.Modulus - b.Modulus })

	stats.Arena = d.arena.Stats()

	return stats
}
