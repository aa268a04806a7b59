package problem

// Depths returns the hop count from source to every vertex it reaches,
// computed breadth-first. Vertices source cannot reach are absent.
func (g *Graph) Depths(source string) map[string]int {
	w := &walker{
		g:     g,
		queue: make([]string, 0, len(g.ids)),
		depth: make(map[string]int, len(g.ids)),
	}
	if _, ok := g.h[source]; !ok {
		return w.depth
	}
	w.enqueue(source, 0)
	w.loop()

	return w.depth
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *Graph
	queue []string
	depth map[string]int
}

// enqueue records id's depth and appends it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.depth[id] = d
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, enqueueing each unseen neighbour one
// level deeper than its parent.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		next := w.depth[cur] + 1
		for _, a := range w.g.adj[cur] {
			if _, seen := w.depth[a.to]; !seen {
				w.enqueue(a.to, next)
			}
		}
	}
}
