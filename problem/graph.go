package problem

import "math"

// arc is one outgoing edge in the adjacency list.
type arc struct {
	to     string
	weight float64
}

// Graph is the read-only adjacency of a validated Problem.
// Neighbor order follows edge declaration order, so searches are deterministic.
type Graph struct {
	ids []string
	h   map[string]float64
	adj map[string][]arc
}

func buildGraph(p *Problem) *Graph {
	g := &Graph{
		ids: make([]string, 0, len(p.Nodes)),
		h:   make(map[string]float64, len(p.Nodes)),
		adj: make(map[string][]arc, len(p.Nodes)),
	}
	for _, n := range p.Nodes {
		g.ids = append(g.ids, n.ID)
		g.h[n.ID] = n.H
	}
	for _, e := range p.Edges {
		w := e.EffectiveWeight()
		g.adj[e.From] = append(g.adj[e.From], arc{to: e.To, weight: w})
		if !p.Directed && e.From != e.To {
			g.adj[e.To] = append(g.adj[e.To], arc{to: e.From, weight: w})
		}
	}

	return g
}

// Vertices returns node IDs in declaration order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Heuristic returns the h value of id (0 for unknown IDs).
func (g *Graph) Heuristic(id string) float64 { return g.h[id] }

// Neighbors returns the targets of id's outgoing edges, in declaration order.
// Parallel edges yield repeated targets.
func (g *Graph) Neighbors(id string) []string {
	arcs := g.adj[id]
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}

	return out
}

// Weight returns the lightest edge weight from→to, or +Inf if there is none.
func (g *Graph) Weight(from, to string) float64 {
	best := math.Inf(1)
	for _, a := range g.adj[from] {
		if a.to == to && a.weight < best {
			best = a.weight
		}
	}

	return best
}
