// Package problem describes graph search problems in YAML and turns them into
// search engines.
//
// A problem file declares nodes (with an optional heuristic h), weighted
// edges, a start node, one or more goal nodes and a priority mode:
//
//	name: campus
//	start: gate
//	goals: [library]
//	directed: false
//	priority: distance # heuristic | distance | depth
//	nodes:
//	  - {id: gate, h: 4}
//	  - {id: quad, h: 2}
//	  - {id: library}
//	edges:
//	  - {from: gate, to: quad, weight: 3}
//	  - {from: quad, to: library}     # weight defaults to 1
//
// Priority modes
//
//   - heuristic: the frontier is ordered by h. No optimality guarantee.
//   - distance:  the frontier is ordered by the true weighted distance from
//     start (Dijkstra), and transitions follow only shortest-path edges. The
//     path found is a shortest one.
//   - depth:     the frontier is ordered by hop count (BFS). The path found
//     has the fewest edges.
//
// Errors (sentinel): ErrInvalidProblem, ErrDuplicateNode, ErrUnknownNode,
// ErrNegativeWeight, ErrUnknownPriority.
package problem
