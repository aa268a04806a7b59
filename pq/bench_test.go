package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bestfirst/pq"
)

// benchQueue inserts N random priorities and drains the queue.
func benchQueue(b *testing.B, factory pq.Factory[int, float64]) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	prios := make([]float64, N)
	for i := range prios {
		prios[i] = rng.Float64()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := factory()
		for j, p := range prios {
			q.Insert(j, p)
		}
		for !q.Empty() {
			q.DeleteMin()
		}
	}
}

// BenchmarkPairingHeap measures N inserts followed by N delete-mins.
func BenchmarkPairingHeap(b *testing.B) { benchQueue(b, pq.PairingFactory[int, float64]()) }

// BenchmarkBinaryHeap measures N inserts followed by N delete-mins.
func BenchmarkBinaryHeap(b *testing.B) { benchQueue(b, pq.BinaryFactory[int, float64]()) }
