package search_test

import (
	"testing"

	"github.com/katalvlaran/bestfirst/pq"
	"github.com/katalvlaran/bestfirst/search"
)

// gridNext moves right or down on a side×side grid encoded as r*side+c.
func gridNext(side int) search.Transition[int] {
	return search.FromSlice(func(s int) []int {
		r, c := s/side, s%side
		out := make([]int, 0, 2)
		if c+1 < side {
			out = append(out, s+1)
		}
		if r+1 < side {
			out = append(out, s+side)
		}
		return out
	})
}

func benchGrid(b *testing.B, factory pq.Factory[int, float64]) {
	const side = 200
	goal := side*side - 1
	// Manhattan distance to the goal corner.
	cost := func(s int) float64 {
		return float64((side - 1 - s/side) + (side - 1 - s%side))
	}
	eng, err := search.New(0, gridNext(side), func(s int) bool { return s == goal }, cost,
		search.WithQueue(factory))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.Path()
	}
}

// BenchmarkEngine_GridPairing measures path search on a 200×200 grid.
func BenchmarkEngine_GridPairing(b *testing.B) { benchGrid(b, pq.PairingFactory[int, float64]()) }

// BenchmarkEngine_GridBinary is the same search over a binary heap.
func BenchmarkEngine_GridBinary(b *testing.B) { benchGrid(b, pq.BinaryFactory[int, float64]()) }
