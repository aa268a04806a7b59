package search

// Store is the visited set plus the backtrack map of one engine.
//
// The visited set guarantees a state is expanded at most once per run.
// The backtrack map records, for each discovered state, the state that first
// discovered it; later records for the same child are ignored.
// A Store is not safe for concurrent use.
type Store[S comparable] struct {
	visited map[S]struct{}
	pred    map[S]S
}

// NewStore returns an empty Store.
func NewStore[S comparable]() *Store[S] {
	return &Store[S]{
		visited: make(map[S]struct{}),
		pred:    make(map[S]S),
	}
}

// MarkVisited adds s to the visited set.
func (st *Store[S]) MarkVisited(s S) { st.visited[s] = struct{}{} }

// IsVisited reports whether s was marked visited since the last Reset.
func (st *Store[S]) IsVisited(s S) bool {
	_, ok := st.visited[s]
	return ok
}

// VisitedCount returns the size of the visited set.
func (st *Store[S]) VisitedCount() int { return len(st.visited) }

// RecordPredecessor stores parent as the predecessor of child unless child
// already has one. It reports whether the record was stored.
func (st *Store[S]) RecordPredecessor(child, parent S) bool {
	if _, ok := st.pred[child]; ok {
		return false
	}
	st.pred[child] = parent

	return true
}

// PredecessorOf returns the recorded predecessor of s.
func (st *Store[S]) PredecessorOf(s S) (S, bool) {
	p, ok := st.pred[s]
	return p, ok
}

// Reset clears both the visited set and the backtrack map.
func (st *Store[S]) Reset() {
	clear(st.visited)
	clear(st.pred)
}
