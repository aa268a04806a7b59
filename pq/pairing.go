package pq

import "cmp"

// pairingNode is one entry of the pairing heap. Children form a singly linked
// list through sibling; the leftmost child is child.
type pairingNode[T comparable, P cmp.Ordered] struct {
	item     T
	priority P
	seq      uint64
	child    *pairingNode[T, P]
	sibling  *pairingNode[T, P]
}

// PairingHeap is a mergeable min-heap.
//
// Complexity:
//
//   - Insert:    O(1)
//   - Min:       O(1)
//   - DeleteMin: O(log n) amortized (two-pass pairing)
//   - Meld:      O(m) where m is the size of the absorbed heap
//     (its sequence numbers are shifted to keep FIFO ties deterministic)
//
// The zero value is not usable; call NewPairingHeap.
type PairingHeap[T comparable, P cmp.Ordered] struct {
	root    *pairingNode[T, P]
	size    int
	seq     uint64
	offered map[T]struct{}
}

// NewPairingHeap returns an empty pairing heap.
func NewPairingHeap[T comparable, P cmp.Ordered]() *PairingHeap[T, P] {
	return &PairingHeap[T, P]{offered: make(map[T]struct{})}
}

// PairingFactory returns a Factory producing empty pairing heaps.
func PairingFactory[T comparable, P cmp.Ordered]() Factory[T, P] {
	return func() Queue[T, P] { return NewPairingHeap[T, P]() }
}

// Insert implements Queue.
func (h *PairingHeap[T, P]) Insert(item T, priority P) bool {
	_, seen := h.offered[item]
	if !seen {
		h.offered[item] = struct{}{}
	}
	n := &pairingNode[T, P]{item: item, priority: priority, seq: h.seq}
	h.seq++
	h.root = meldNodes(h.root, n)
	h.size++

	return !seen
}

// Min implements Queue.
func (h *PairingHeap[T, P]) Min() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}

	return h.root.item, true
}

// MinPriority returns the priority of the current minimum entry.
func (h *PairingHeap[T, P]) MinPriority() (P, bool) {
	if h.root == nil {
		var zero P
		return zero, false
	}

	return h.root.priority, true
}

// DeleteMin implements Queue.
func (h *PairingHeap[T, P]) DeleteMin() {
	if h.root == nil {
		return
	}
	h.root = mergePairs(h.root.child)
	h.size--
}

// Empty implements Queue.
func (h *PairingHeap[T, P]) Empty() bool { return h.root == nil }

// Len implements Queue.
func (h *PairingHeap[T, P]) Len() int { return h.size }

// Meld moves every entry of other into h and empties other.
// Entries from other rank after all of h's entries on priority ties, and keep
// their own relative order. Items offered to either heap count as offered to h.
func (h *PairingHeap[T, P]) Meld(other *PairingHeap[T, P]) {
	if other == nil || other == h {
		return
	}
	shiftSeq(other.root, h.seq)
	h.seq += other.seq
	h.root = meldNodes(h.root, other.root)
	h.size += other.size
	for item := range other.offered {
		h.offered[item] = struct{}{}
	}

	other.root = nil
	other.size = 0
	other.seq = 0
	other.offered = make(map[T]struct{})
}

// meldNodes links two heap-ordered trees; the loser becomes the leftmost child.
// Both roots must have nil siblings.
func meldNodes[T comparable, P cmp.Ordered](a, b *pairingNode[T, P]) *pairingNode[T, P] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if entryLess(b.priority, b.seq, a.priority, a.seq) {
		a, b = b, a
	}
	b.sibling = a.child
	a.child = b

	return a
}

// mergePairs is the two-pass combine of a child list, done iteratively so deep
// heaps do not grow the goroutine stack.
func mergePairs[T comparable, P cmp.Ordered](first *pairingNode[T, P]) *pairingNode[T, P] {
	if first == nil {
		return nil
	}

	// Pass 1: meld adjacent pairs left to right, stacking results in reverse.
	var stack *pairingNode[T, P]
	for first != nil {
		a := first
		b := a.sibling
		if b == nil {
			a.sibling = stack
			stack = a
			break
		}
		next := b.sibling
		a.sibling, b.sibling = nil, nil
		m := meldNodes(a, b)
		m.sibling = stack
		stack = m
		first = next
	}

	// Pass 2: meld right to left.
	root := stack
	stack = stack.sibling
	root.sibling = nil
	for stack != nil {
		n := stack
		stack = stack.sibling
		n.sibling = nil
		root = meldNodes(root, n)
	}

	return root
}

func shiftSeq[T comparable, P cmp.Ordered](root *pairingNode[T, P], by uint64) {
	if root == nil || by == 0 {
		return
	}
	pending := []*pairingNode[T, P]{root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		n.seq += by
		if n.child != nil {
			pending = append(pending, n.child)
		}
		if n.sibling != nil {
			pending = append(pending, n.sibling)
		}
	}
}
