package pq

import (
	"cmp"
	"container/heap"
)

// binaryEntry is one (item, priority) pair held by BinaryHeap.
type binaryEntry[T comparable, P cmp.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

// entries is the heap.Interface view of BinaryHeap's backing slice,
// ordered by priority ascending and then by insertion sequence.
type entries[T comparable, P cmp.Ordered] []binaryEntry[T, P]

func (e entries[T, P]) Len() int { return len(e) }

func (e entries[T, P]) Less(i, j int) bool {
	return entryLess(e[i].priority, e[i].seq, e[j].priority, e[j].seq)
}

func (e entries[T, P]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// Push is called by heap.Push; x must be a binaryEntry.
func (e *entries[T, P]) Push(x any) { *e = append(*e, x.(binaryEntry[T, P])) }

// Pop is called by heap.Pop and removes the last element.
func (e *entries[T, P]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	*e = old[:n-1]

	return item
}

// BinaryHeap is an array-backed min-heap built on container/heap.
//
// It uses the lazy decrease-key pattern: re-inserting an item pushes a new
// entry and the old one stays queued until it is popped.
//
// Complexity: Insert and DeleteMin are O(log n); Min, Empty and Len are O(1).
type BinaryHeap[T comparable, P cmp.Ordered] struct {
	data    entries[T, P]
	seq     uint64
	offered map[T]struct{}
}

// NewBinaryHeap returns an empty binary heap.
func NewBinaryHeap[T comparable, P cmp.Ordered]() *BinaryHeap[T, P] {
	return &BinaryHeap[T, P]{offered: make(map[T]struct{})}
}

// BinaryFactory returns a Factory producing empty binary heaps.
func BinaryFactory[T comparable, P cmp.Ordered]() Factory[T, P] {
	return func() Queue[T, P] { return NewBinaryHeap[T, P]() }
}

// Insert implements Queue.
func (h *BinaryHeap[T, P]) Insert(item T, priority P) bool {
	_, seen := h.offered[item]
	if !seen {
		h.offered[item] = struct{}{}
	}
	heap.Push(&h.data, binaryEntry[T, P]{item: item, priority: priority, seq: h.seq})
	h.seq++

	return !seen
}

// Min implements Queue.
func (h *BinaryHeap[T, P]) Min() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0].item, true
}

// MinPriority returns the priority of the current minimum entry.
func (h *BinaryHeap[T, P]) MinPriority() (P, bool) {
	if len(h.data) == 0 {
		var zero P
		return zero, false
	}

	return h.data[0].priority, true
}

// DeleteMin implements Queue.
func (h *BinaryHeap[T, P]) DeleteMin() {
	if len(h.data) == 0 {
		return
	}
	heap.Pop(&h.data)
}

// Empty implements Queue.
func (h *BinaryHeap[T, P]) Empty() bool { return len(h.data) == 0 }

// Len implements Queue.
func (h *BinaryHeap[T, P]) Len() int { return len(h.data) }
