// Package pq_test shows the queue contract on both implementations.
package pq_test

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/pq"
)

// ExamplePairingHeap shows lazy duplicates: the cheaper copy of "b" surfaces
// first and its stale copy surfaces last.
func ExamplePairingHeap() {
	q := pq.NewPairingHeap[string, float64]()
	fmt.Println(q.Insert("b", 5))
	fmt.Println(q.Insert("a", 2))
	fmt.Println(q.Insert("b", 1))
	for !q.Empty() {
		item, _ := q.Min()
		q.DeleteMin()
		fmt.Print(item, " ")
	}
	fmt.Println()
	// Output:
	// true
	// true
	// false
	// b a b
}

// ExampleBinaryHeap shows FIFO order among equal priorities.
func ExampleBinaryHeap() {
	q := pq.NewBinaryHeap[int, int]()
	for _, v := range []int{30, 10, 20} {
		q.Insert(v, 0)
	}
	for !q.Empty() {
		item, _ := q.Min()
		q.DeleteMin()
		fmt.Print(item, " ")
	}
	fmt.Println()
	// Output: 30 10 20
}
