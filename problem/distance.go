package problem

import "github.com/katalvlaran/bestfirst/pq"

// Distances computes the weighted shortest distance from source to every
// vertex with Dijkstra's algorithm. Unreachable vertices map to Unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries)
func (g *Graph) Distances(source string) map[string]float64 {
	r := &distRunner{
		g:       g,
		dist:    make(map[string]float64, len(g.ids)),
		visited: make(map[string]bool, len(g.ids)),
		pq:      pq.NewBinaryHeap[string, float64](),
	}
	r.init(source)
	r.process()

	return r.dist
}

// distRunner holds the mutable state of one Dijkstra execution.
type distRunner struct {
	g       *Graph
	dist    map[string]float64              // best known distance from source
	visited map[string]bool                 // distance finalized
	pq      *pq.BinaryHeap[string, float64] // lazy min-heap of (vertex, distance)
}

// init sets every distance to Unreachable and seeds the heap with source=0.
func (r *distRunner) init(source string) {
	// 1) Every vertex starts unreachable.
	for _, v := range r.g.ids {
		r.dist[v] = Unreachable
	}
	// 2) An undeclared source reaches nothing.
	if _, ok := r.g.h[source]; !ok {
		return
	}
	// 3) Seed the heap with the source at distance 0.
	r.dist[source] = 0
	r.pq.Insert(source, 0)
}

// process pops the closest vertex until the heap is empty and relaxes its
// outgoing edges.
func (r *distRunner) process() {
	for !r.pq.Empty() {
		// 1) Pop the closest entry.
		u, _ := r.pq.Min()
		d, _ := r.pq.MinPriority()
		r.pq.DeleteMin()

		// 2) Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		// 3) Finalize u and relax its outgoing edges.
		r.visited[u] = true
		r.relax(u, d)
	}
}

// relax improves the distance of each neighbour of u reachable through a
// strictly shorter path and pushes a fresh heap entry for it.
func (r *distRunner) relax(u string, du float64) {
	for _, a := range r.g.adj[u] {
		nd := du + a.weight
		if nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.pq.Insert(a.to, nd)
	}
}

// tightNeighbors returns the targets v of u's edges that lie on a shortest
// path: dist[u] + w(u,v) == dist[v].
func (g *Graph) tightNeighbors(u string, dist map[string]float64) []string {
	du := dist[u]
	if du == Unreachable {
		return nil
	}
	var out []string
	for _, a := range g.adj[u] {
		if du+a.weight == dist[a.to] {
			out = append(out, a.to)
		}
	}

	return out
}
