// Package search implements a generic best-first search engine.
//
// What
//
//   - Engine[S] explores a state space from a start state, always expanding the
//     frontier entry with the lowest priority.
//   - The client supplies four functions: a Transition (successors of a
//     state), a GoalTest, a Cost (frontier priority) and, optionally, an
//     EdgeWeight.
//   - Two run modes share one control loop:
//   - Exists: is any goal state reachable?
//   - Path:   the states from start to the first goal extracted.
//
// Control loop
//
//	seed frontier with (start, cost(start))
//	loop:
//	    frontier empty            → exhausted
//	    cur := extract-min
//	    goal(cur)                 → goal found
//	    cur visited               → drop stale entry, continue
//	    mark cur visited
//	    for s in next(cur):
//	        fresh := frontier.Insert(s, cost(s))
//	        if path mode && fresh: predecessor[s] = cur
//
// Duplicates are never removed from the frontier. A state re-offered with a
// different priority gets a second entry; whichever entry surfaces after the
// state was expanded is dropped. Queue membership is never taken to mean
// "not yet visited".
//
// Predecessors
//
//	A state's predecessor is the state whose expansion first offered it to the
//	frontier. That is not necessarily the cheapest one. The start state never
//	has a predecessor. Reconstruction follows predecessors from the goal back
//	to the start; a missing link is a broken invariant and panics with
//	ErrBrokenBacktrack.
//
// Goal test timing
//
//	The goal test runs when an entry is extracted, not when it is inserted.
//	With Dijkstra-style costs (the true distance from the start) this makes
//	the returned path a shortest one.
//
// Determinism
//
//	Extraction order is the queue's order. The shipped queues (package pq)
//	are FIFO among equal priorities, so runs are fully reproducible given a
//	deterministic transition function.
//
// Edge weights
//
//	WithEdgeWeight installs a weight function (default: 1 per edge). The loop
//	does not accumulate it; it is read only by PathWeight.
//
// Cancellation
//
//	ExistsContext and PathContext poll ctx once per iteration and return
//	ctx.Err() when it is done. Exists and Path use the context from
//	WithContext and report "not found" on cancellation.
//
// Concurrency
//
//	A run is synchronous and single-threaded. One Engine must not run twice
//	at the same time; distinct engines share nothing except an optional
//	*Metrics.
//
// Observability
//
//	Each run gets a UUID, an OpenTelemetry span, a debug start record and an
//	info end record on the configured slog.Logger, and optional prometheus
//	counters (NewMetrics, WithMetrics). LastStats returns the counters of the
//	most recent run.
//
// Complexity (V reachable states, E transitions, log-time queue)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (visited set, predecessors, stale frontier entries)
//
// Usage
//
//	next := search.FromSlice(func(n int) []int { return adj[n] })
//	eng, err := search.New(0, next,
//	    func(n int) bool { return n == 2 },
//	    func(n int) float64 { return float64(n) },
//	)
//	if err != nil {
//	    // ErrNilTransition, ErrNilGoalTest, ErrNilCost or ErrOptionViolation
//	}
//	ok := eng.Exists()
//	path := eng.Path()
package search
