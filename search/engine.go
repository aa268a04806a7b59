package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/bestfirst/pq"
)

// Engine is a best-first searcher over states of type S.
//
// One Engine serves one problem: a start state plus transition, goal and cost
// functions. It may run many times; every run starts from a clean store and a
// fresh frontier. Runs must not overlap: an Engine is not safe for concurrent
// use.
type Engine[S comparable] struct {
	start S
	next  Transition[S]
	goal  GoalTest[S]
	cost  Cost[S]
	opts  Options[S]

	store  *Store[S]
	tracer trace.Tracer
	last   Stats
}

// New builds an Engine. It returns ErrNilTransition, ErrNilGoalTest or
// ErrNilCost for missing functions and ErrOptionViolation for bad options.
//
// The behaviour of the supplied functions is not checked: a transition that
// never ends, an impure goal test or a NaN cost leave the result undefined.
func New[S comparable](start S, next Transition[S], goal GoalTest[S], cost Cost[S], opts ...Option[S]) (*Engine[S], error) {
	if next == nil {
		return nil, ErrNilTransition
	}
	if goal == nil {
		return nil, ErrNilGoalTest
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine[S]{
		start:  start,
		next:   next,
		goal:   goal,
		cost:   cost,
		opts:   o,
		store:  NewStore[S](),
		tracer: newTracer(o.TracerProvider),
	}, nil
}

// Start returns the start state.
func (e *Engine[S]) Start() S { return e.start }

// LastStats returns the statistics of the most recent run.
func (e *Engine[S]) LastStats() Stats { return e.last }

// Exists reports whether a goal state is reachable from the start state.
// A canceled configured context yields false.
func (e *Engine[S]) Exists() bool {
	found, _ := e.ExistsContext(e.opts.Ctx)
	return found
}

// Path returns the states from start to a goal, both inclusive, or an empty
// slice when no goal is reachable. A canceled configured context yields nil.
func (e *Engine[S]) Path() []S {
	path, _ := e.PathContext(e.opts.Ctx)
	return path
}

// ExistsContext is Exists with cooperative cancellation: ctx is polled once
// per loop iteration and its error is returned if it is done.
func (e *Engine[S]) ExistsContext(ctx context.Context) (bool, error) {
	_, found, err := e.run(ctx, ModeExistence)
	return found, err
}

// PathContext is Path with cooperative cancellation.
func (e *Engine[S]) PathContext(ctx context.Context) ([]S, error) {
	path, _, err := e.run(ctx, ModePath)
	return path, err
}

// PathWeight sums the configured edge weights along path.
// Paths shorter than two states weigh 0.
func (e *Engine[S]) PathWeight(path []S) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += e.opts.EdgeWeight(path[i-1], path[i])
	}

	return total
}

// runner holds the mutable state of a single run.
type runner[S comparable] struct {
	e     *Engine[S]
	ctx   context.Context
	mode  Mode
	queue pq.Queue[S, float64]
	stats Stats
}

// run resets the engine's bookkeeping, seeds a fresh frontier with the start
// state and drives the loop to a terminal outcome. In path mode a found goal
// is turned into the start→goal path.
func (e *Engine[S]) run(ctx context.Context, mode Mode) ([]S, bool, error) {
	// 1) Fresh runner and frontier; clear bookkeeping from any previous run.
	if ctx == nil {
		ctx = context.Background()
	}
	r := &runner[S]{
		e:     e,
		ctx:   ctx,
		mode:  mode,
		queue: e.opts.Queue(),
		stats: Stats{RunID: uuid.NewString(), Mode: mode},
	}
	e.store.Reset()

	// 2) Open the span and announce the run.
	ctx, span := e.startSpan(ctx, r.stats)
	e.opts.Logger.DebugContext(ctx, "search run started",
		slog.String("run_id", r.stats.RunID),
		slog.String("mode", mode.String()),
	)

	// 3) Seed the start state and drive the loop.
	began := time.Now()
	r.queue.Insert(e.start, e.cost(e.start))
	goal, err := r.loop()
	r.stats.Duration = time.Since(began)

	// 4) Classify the outcome; in path mode walk back from the goal.
	var path []S
	switch {
	case err != nil:
		r.stats.Outcome = OutcomeCanceled
	case r.stats.Outcome == OutcomeNone:
		r.stats.Outcome = OutcomeExhausted
	case mode == ModePath:
		path = e.reconstruct(goal)
		r.stats.PathLen = len(path)
	}

	// 5) Publish stats and close out telemetry.
	e.last = r.stats
	e.finish(ctx, span, r.stats, err)

	return path, r.stats.Outcome == OutcomeGoalFound, err
}

// loop is the shared control loop of both modes:
//
//  1. empty frontier → exhausted
//  2. extract the minimum entry
//  3. goal test → goal found
//  4. already visited → drop the stale entry
//  5. mark visited and push every successor; in path mode the first offer of
//     a successor records the current state as its predecessor.
func (r *runner[S]) loop() (S, error) {
	var zero S
	e := r.e
	for {
		select {
		case <-r.ctx.Done():
			return zero, r.ctx.Err()
		default:
		}

		if r.queue.Empty() {
			return zero, nil
		}
		cur, _ := r.queue.Min()
		r.queue.DeleteMin()

		if e.goal(cur) {
			r.stats.Outcome = OutcomeGoalFound
			e.opts.OnGoal(cur)
			return cur, nil
		}

		// Skip stale entry: cur was expanded through an earlier entry.
		if e.store.IsVisited(cur) {
			r.stats.Stale++
			e.opts.OnDiscard(cur)
			continue
		}

		e.store.MarkVisited(cur)
		r.stats.Expanded++
		e.opts.OnExpand(cur)
		r.expand(cur)
	}
}

// expand pushes every successor of cur into the frontier.
func (r *runner[S]) expand(cur S) {
	e := r.e
	successors := e.next(cur)
	if successors == nil {
		return
	}
	for s := range successors {
		r.stats.Inserted++
		fresh := r.queue.Insert(s, e.cost(s))
		if r.mode == ModePath && fresh && e.store.RecordPredecessor(s, cur) {
			r.stats.Recorded++
		}
	}
}

// reconstruct walks predecessors from goal back to the start state.
// A gap in the chain means the bookkeeping invariant is broken; it panics.
func (e *Engine[S]) reconstruct(goal S) []S {
	path := []S{goal}
	for cur := goal; cur != e.start; {
		prev, ok := e.store.PredecessorOf(cur)
		if !ok {
			panic(fmt.Sprintf("%v: no predecessor for %v", ErrBrokenBacktrack, cur))
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
