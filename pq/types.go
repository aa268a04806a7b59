package pq

import "cmp"

// Queue is a min-priority queue of items of type T keyed by priorities of type P.
//
// Implementations must keep Insert and DeleteMin at worst logarithmic in the
// queue size; callers build their complexity bounds on that.
type Queue[T comparable, P cmp.Ordered] interface {
	// Insert adds (item, priority). It returns true if item has never been
	// offered to this queue before, false if an equal item was offered earlier
	// (whether or not that entry is still queued).
	Insert(item T, priority P) bool

	// Min returns an item with minimum priority without removing it.
	// The boolean is false when the queue is empty.
	Min() (T, bool)

	// DeleteMin removes the entry Min would return. No-op on an empty queue.
	DeleteMin()

	// Empty reports whether no entries are queued.
	Empty() bool

	// Len returns the number of queued entries, stale duplicates included.
	Len() int
}

// Factory builds a fresh, empty queue.
type Factory[T comparable, P cmp.Ordered] func() Queue[T, P]

// entryLess orders by priority, then by insertion sequence (FIFO on ties).
func entryLess[P cmp.Ordered](pa P, sa uint64, pb P, sb uint64) bool {
	if c := cmp.Compare(pa, pb); c != 0 {
		return c < 0
	}

	return sa < sb
}
