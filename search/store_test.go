package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bestfirst/search"
)

func TestStore_Visited(t *testing.T) {
	st := search.NewStore[string]()
	assert.False(t, st.IsVisited("a"))
	st.MarkVisited("a")
	st.MarkVisited("a")
	assert.True(t, st.IsVisited("a"))
	assert.False(t, st.IsVisited("b"))
	assert.Equal(t, 1, st.VisitedCount())
}

func TestStore_FirstPredecessorWins(t *testing.T) {
	st := search.NewStore[string]()
	_, ok := st.PredecessorOf("c")
	assert.False(t, ok)

	assert.True(t, st.RecordPredecessor("c", "a"))
	assert.False(t, st.RecordPredecessor("c", "b"))

	p, ok := st.PredecessorOf("c")
	assert.True(t, ok)
	assert.Equal(t, "a", p)
}

func TestStore_Reset(t *testing.T) {
	st := search.NewStore[int]()
	st.MarkVisited(1)
	st.RecordPredecessor(2, 1)
	st.Reset()

	assert.False(t, st.IsVisited(1))
	assert.Equal(t, 0, st.VisitedCount())
	_, ok := st.PredecessorOf(2)
	assert.False(t, ok)
	assert.True(t, st.RecordPredecessor(2, 3), "reset forgets earlier records")
}
