// Package collision tracks noise-source names against their 64-bit IDs
// and detects when two distinct names land on the same ID.
//
// xxHash64 identifiers are effectively unique across realistic source
// inventories, but a store keyed by ID silently merges records if two
// names ever do collide. The tracker makes that condition observable:
// register every name up front and check Collided before trusting
// ID-keyed storage.
package collision

import (
	"github.com/rngtools/minentropy/errs"
)

// Tracker records source names by their 64-bit IDs and flags ID
// collisions between distinct names.
type Tracker struct {
	names    map[uint64]string // ID to name, for collision detection
	ordered  []string          // names in registration order
	collided bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:   make(map[uint64]string),
		ordered: make([]string, 0),
	}
}

// Track records a source name with its ID.
//
// Registering the same name under the same ID twice returns
// errs.ErrDuplicateSource. A distinct name landing on an already-used
// ID is not an error: the name is still recorded and the collision
// flag is set, so the caller can fall back to keying records by name.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidSourceName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return errs.ErrDuplicateSource
		}
		// Two names on one ID. Record anyway; only ID keying is unsafe.
		t.collided = true
	}

	t.names[id] = name
	t.ordered = append(t.ordered, name)

	return nil
}

// TrackID records a bare source ID with no name attached.
//
// Without names a reused ID cannot be told apart from a genuine hash
// collision, so any reuse returns errs.ErrIDCollision.
func (t *Tracker) TrackID(id uint64) error {
	if _, ok := t.names[id]; ok {
		return errs.ErrIDCollision
	}

	t.names[id] = ""

	return nil
}

// Collided reports whether two distinct names were tracked under the
// same ID.
func (t *Tracker) Collided() bool {
	return t.collided
}

// Names returns the tracked source names in registration order.
func (t *Tracker) Names() []string {
	return t.ordered
}

// Count returns the number of tracked source names.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears all tracked state so the tracker can be reused for a
// fresh inventory.
func (t *Tracker) Reset() {
	// Clear the map but keep its capacity across resets.
	for k := range t.names {
		delete(t.names, k)
	}
	t.ordered = t.ordered[:0]
	t.collided = false
}
