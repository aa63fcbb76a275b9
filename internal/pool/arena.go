package pool

import "unsafe"

// arenaMaxSegmentBytes caps how large a single growth segment may get.
// Growth doubles until a segment would cross this, then stays flat.
const arenaMaxSegmentBytes = 128 << 20 // 128MiB

// Arena is a typed fixed-block allocator for node-heavy structures.
//
// Prediction dictionaries allocate very large numbers of small pages whose
// lifetimes all end together, which makes the general-purpose heap a poor
// fit. Arena serves blocks out of progressively doubling segments and
// recycles released blocks through a LIFO free list, so a release followed
// by an allocation reuses the still-cached block.
//
// An Arena is owned by a single estimator run and is not safe for
// concurrent use.
type Arena[T any] struct {
	segments [][]T
	next     int  // bump index into the newest segment
	free     []*T // LIFO free list
	inUse    int
	total    int
}

// NewArena creates an arena whose first segment holds firstBlocks blocks.
func NewArena[T any](firstBlocks int) *Arena[T] {
	if firstBlocks < 1 {
		firstBlocks = 1
	}

	a := &Arena[T]{}
	a.segments = append(a.segments, make([]T, firstBlocks))
	a.total = firstBlocks

	return a
}

// Get returns a zeroed block.
//
// Blocks from the free list are re-zeroed before handout; fresh segment
// memory is zero already.
func (a *Arena[T]) Get() *T {
	a.inUse++

	if n := len(a.free); n > 0 {
		p := a.free[n-1]
		a.free = a.free[:n-1]

		var zero T
		*p = zero

		return p
	}

	seg := a.segments[len(a.segments)-1]
	if a.next == len(seg) {
		a.grow()
		seg = a.segments[len(a.segments)-1]
	}

	p := &seg[a.next]
	a.next++

	return p
}

// Put releases a block back to the free list for reuse. Releasing nil is a
// no-op. The block must have come from this arena.
func (a *Arena[T]) Put(p *T) {
	if p == nil {
		return
	}

	a.free = append(a.free, p)
	a.inUse--
}

func (a *Arena[T]) grow() {
	blockBytes := int(unsafe.Sizeof(*new(T)))

	n := len(a.segments[len(a.segments)-1]) * 2
	if blockBytes > 0 {
		if maxBlocks := arenaMaxSegmentBytes / blockBytes; maxBlocks > 0 && n > maxBlocks {
			n = maxBlocks
		}
	}
	if n < 1 {
		n = 1
	}

	a.segments = append(a.segments, make([]T, n))
	a.next = 0
	a.total += n
}

// ArenaStats reports arena occupancy, typically logged at teardown.
type ArenaStats struct {
	Segments       int // segments allocated
	BlocksInUse    int // blocks handed out and not released
	BlocksFree     int // blocks on the free list
	BlocksReserved int // total blocks across all segments
	ReservedBytes  int // total bytes reserved by segments
}

// Stats returns a snapshot of the arena's occupancy.
func (a *Arena[T]) Stats() ArenaStats {
	return ArenaStats{
		Segments:       len(a.segments),
		BlocksInUse:    a.inUse,
		BlocksFree:     len(a.free),
		BlocksReserved: a.total,
		ReservedBytes:  a.total * int(unsafe.Sizeof(*new(T))),
	}
}
