package problem

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bestfirst/search"
)

// Engine builds a search engine for the problem using p.Priority.
//
// The engine's edge weight is the graph's lightest edge between two states,
// so PathWeight reports the real cost of a returned path. Extra options are
// applied after the problem's own and may override them.
//
// With PriorityDistance the transition only follows edges on shortest paths
// from the start, which makes every returned path a shortest one.
// PriorityDepth gives the fewest hops. PriorityHeuristic gives no guarantee.
func (p *Problem) Engine(opts ...search.Option[string]) (*search.Engine[string], error) {
	if p.graph == nil {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	g := p.graph

	goals := make(map[string]struct{}, len(p.Goals))
	for _, id := range p.Goals {
		goals[id] = struct{}{}
	}
	isGoal := func(id string) bool {
		_, ok := goals[id]
		return ok
	}

	var (
		next search.Transition[string]
		cost search.Cost[string]
	)
	switch p.Priority {
	case PriorityHeuristic:
		next = search.FromSlice(g.Neighbors)
		cost = g.Heuristic
	case PriorityDistance, "":
		dist := g.Distances(p.Start)
		next = search.FromSlice(func(id string) []string { return g.tightNeighbors(id, dist) })
		cost = func(id string) float64 { return dist[id] }
	case PriorityDepth:
		depth := g.Depths(p.Start)
		next = search.FromSlice(g.Neighbors)
		cost = func(id string) float64 {
			if d, ok := depth[id]; ok {
				return float64(d)
			}
			return Unreachable
		}
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownPriority, p.Priority, Priorities)
	}

	all := slices.Concat([]search.Option[string]{search.WithEdgeWeight[string](g.Weight)}, opts)

	return search.New(p.Start, next, isGoal, cost, all...)
}

// ParsePriority converts a flag or config value to a Priority.
func ParsePriority(s string) (Priority, error) {
	for _, pr := range Priorities {
		if string(pr) == s {
			return pr, nil
		}
	}

	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownPriority, s, Priorities)
}
