// Package bestfirst is a generic best-first search engine with swappable
// priority queues, a YAML graph-problem front end and a small CLI.
//
// 🚀 What is bestfirst?
//
//	A library that answers two questions about any state space you can
//	describe with a transition function, a goal test and a cost:
//		• Is a goal reachable from the start?         (Engine.Exists)
//		• Which states lead from the start to a goal? (Engine.Path)
//
// Both questions run the same control loop: pop the cheapest frontier
// entry, test it against the goal, drop it if already expanded, otherwise
// expand it and push its successors. Duplicates are suppressed lazily, so
// any min-priority queue honouring the pq.Queue contract can drive it.
//
// ✨ Highlights
//
//   - Generic over any comparable state type; successors are iter.Seq values
//     and are consumed lazily.
//   - Two interchangeable frontiers: a pairing heap (O(1) insert, meldable)
//     and a container/heap binary heap. Equal priorities pop FIFO.
//   - Deterministic: same inputs, same expansion order, same path.
//   - Observable: slog records, Prometheus counters and OpenTelemetry spans
//     per run, all optional.
//
// Layout:
//
//	pq/             priority queue contract, PairingHeap, BinaryHeap
//	search/         Engine, Store, options, telemetry
//	problem/        YAML graph problems, validation, priority modes
//	internal/cli/   cobra commands behind cmd/bestfirst
//	cmd/bestfirst/  the bestfirst binary
//
// Quick start:
//
//	next := search.FromSlice(func(n int) []int { return graph[n] })
//	eng, err := search.New(0, next,
//		func(n int) bool { return n == goal },
//		func(n int) float64 { return dist[n] },
//	)
//	if err != nil {
//		return err
//	}
//	path := eng.Path() // nil when no goal is reachable
//
// Or from the command line:
//
//	bestfirst path --priority distance problem.yaml
package bestfirst
