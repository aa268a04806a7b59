// Package pq provides min-priority queues with the contract the search engine
// relies on: a first-offer report from Insert, peek via Min, removal via
// DeleteMin, and an emptiness test.
//
// What
//
//   - Queue[T, P]: the contract. Items are comparable values, priorities are
//     any cmp.Ordered type. Lower priority values come out first.
//   - PairingHeap[T, P]: a mergeable two-pass pairing heap (O(1) Insert,
//     O(log n) amortized DeleteMin, O(m) Meld).
//   - BinaryHeap[T, P]: a container/heap backed array heap (O(log n) Insert
//     and DeleteMin).
//
// Duplicates
//
//	A queue may hold several entries for the same item. Nothing is ever
//	decreased in place; callers push a fresh entry and ignore the stale one
//	when it surfaces. Insert reports true only the first time an item is ever
//	offered to the queue instance, even if every earlier entry was deleted.
//
// Determinism
//
//	Entries with equal priority leave the queue in insertion order (FIFO).
//	Every entry carries a monotonically increasing sequence number that acts
//	as the secondary key, so extraction order is a strict total order.
//
// Preconditions
//
//	Priorities must be totally ordered. Floating-point NaN priorities are a
//	caller error; cmp.Compare places them first.
//
// Usage
//
//	q := pq.NewPairingHeap[string, float64]()
//	q.Insert("b", 2)
//	q.Insert("a", 1)
//	for !q.Empty() {
//	    item, _ := q.Min()
//	    q.DeleteMin()
//	    fmt.Println(item)
//	}
package pq
