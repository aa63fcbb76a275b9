package minentropy

import (
	"github.com/rngtools/minentropy/internal/collision"
	"github.com/rngtools/minentropy/internal/hash"
)

// Registry assigns 64-bit IDs to noise-source names and watches an
// inventory for ID collisions.
//
// SourceID is enough for keying a handful of sources, but a bare hash
// cannot reveal that two names mapped to the same ID. A Registry keeps
// every registered name, so a collision surfaces at registration time
// instead of as silently merged assessment records.
//
// A Registry is not safe for concurrent use.
//
// Example:
//
//	reg := minentropy.NewRegistry()
//	for _, name := range sourceNames {
//	    id, err := reg.Register(name)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    store.Put(id, assessments[name])
//	}
//	if reg.Collided() {
//	    // Two names share an ID; key the store by name instead.
//	}
type Registry struct {
	tracker *collision.Tracker
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{tracker: collision.NewTracker()}
}

// Register records a source name and returns its 64-bit ID.
//
// The ID is the same value SourceID returns for the name. Registering
// a name twice returns errs.ErrDuplicateSource; an empty name returns
// errs.ErrInvalidSourceName. A collision with a previously registered
// name is not an error, it sets the flag reported by Collided.
func (r *Registry) Register(name string) (uint64, error) {
	id := hash.ID(name)
	if err := r.tracker.Track(name, id); err != nil {
		return 0, err
	}

	return id, nil
}

// RegisterID records a pre-hashed source ID with no name attached.
//
// Reusing an ID returns errs.ErrIDCollision, since without names a
// reuse cannot be told apart from a genuine collision.
func (r *Registry) RegisterID(id uint64) error {
	return r.tracker.TrackID(id)
}

// Collided reports whether two registered names share an ID.
func (r *Registry) Collided() bool {
	return r.tracker.Collided()
}

// Names returns the registered source names in registration order.
func (r *Registry) Names() []string {
	return r.tracker.Names()
}

// Count returns the number of registered sources.
func (r *Registry) Count() int {
	return r.tracker.Count()
}

// Reset clears the registry for reuse with a fresh inventory.
func (r *Registry) Reset() {
	r.tracker.Reset()
}
