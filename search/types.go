package search

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/bestfirst/pq"
)

// Sentinel errors for engine construction and runs.
var (
	// ErrNilTransition is returned by New when the transition function is nil.
	ErrNilTransition = errors.New("search: transition function is nil")

	// ErrNilGoalTest is returned by New when the goal test is nil.
	ErrNilGoalTest = errors.New("search: goal test is nil")

	// ErrNilCost is returned by New when the cost function is nil.
	ErrNilCost = errors.New("search: cost function is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBrokenBacktrack is the panic message prefix used when path
	// reconstruction meets a non-start state without a recorded predecessor.
	ErrBrokenBacktrack = errors.New("search: backtrack chain broken")
)

// Transition yields the successors of a state. The sequence must be finite;
// it may be empty.
type Transition[S comparable] func(S) iter.Seq[S]

// GoalTest reports whether a state satisfies the goal. It must be pure.
type GoalTest[S comparable] func(S) bool

// Cost maps a state to its frontier priority; lower is explored sooner.
// It must never return NaN.
type Cost[S comparable] func(S) float64

// EdgeWeight maps a transition from→to to its weight.
type EdgeWeight[S comparable] func(from, to S) float64

// FromSlice adapts a slice-producing successor function to a Transition.
func FromSlice[S comparable](fn func(S) []S) Transition[S] {
	return func(s S) iter.Seq[S] {
		return func(yield func(S) bool) {
			for _, next := range fn(s) {
				if !yield(next) {
					return
				}
			}
		}
	}
}

// UnitWeight is the default EdgeWeight: every edge weighs 1.
func UnitWeight[S comparable](_, _ S) float64 { return 1 }

// Mode selects what a run produces.
type Mode int

const (
	// ModeExistence answers whether a goal is reachable.
	ModeExistence Mode = iota

	// ModePath additionally records predecessors and returns a path.
	ModePath
)

// String returns the metric/log label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeExistence:
		return "existence"
	case ModePath:
		return "path"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeNone means no run has finished yet.
	OutcomeNone Outcome = iota

	// OutcomeGoalFound means an extracted state passed the goal test.
	OutcomeGoalFound

	// OutcomeExhausted means the frontier drained without reaching a goal.
	OutcomeExhausted

	// OutcomeCanceled means the run's context was done before it finished.
	OutcomeCanceled
)

// String returns the metric/log label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeGoalFound:
		return "goal_found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats describes the most recent run of an Engine.
//
//   - Expanded: states handed to the transition function.
//   - Stale:    extracted entries discarded because their state was visited.
//   - Inserted: successor entries pushed into the frontier.
//   - Recorded: predecessor edges stored (path mode only).
//   - PathLen:  number of states in the returned path (0 if none).
type Stats struct {
	RunID    string
	Mode     Mode
	Outcome  Outcome
	Expanded int
	Stale    int
	Inserted int
	Recorded int
	PathLen  int
	Duration time.Duration
}

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced by New as ErrOptionViolation.
type Option[S comparable] func(*Options[S])

// Options holds the tunables and callbacks of an Engine.
type Options[S comparable] struct {
	// Ctx is polled once per loop iteration by Exists and Path.
	Ctx context.Context

	// Queue builds the frontier for each run.
	Queue pq.Factory[S, float64]

	// EdgeWeight is used by PathWeight. The control loop does not read it.
	EdgeWeight EdgeWeight[S]

	// Logger receives one record per run start and end.
	Logger *slog.Logger

	// Metrics, if non-nil, receives run counters.
	Metrics *Metrics

	// TracerProvider supplies the tracer for run spans. Nil means the global one.
	TracerProvider trace.TracerProvider

	// OnExpand is called when a state is marked visited, before its successors.
	OnExpand func(S)

	// OnDiscard is called when a stale frontier entry is dropped.
	OnDiscard func(S)

	// OnGoal is called with the state that satisfied the goal test.
	OnGoal func(S)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a pairing-heap frontier
//   - unit edge weights
//   - a discarding logger, no metrics, the global tracer provider
//   - no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:        context.Background(),
		Queue:      pq.PairingFactory[S, float64](),
		EdgeWeight: UnitWeight[S],
		Logger:     slog.New(slog.DiscardHandler),
		OnExpand:   func(S) {},
		OnDiscard:  func(S) {},
		OnGoal:     func(S) {},
	}
}

// WithContext sets the context used by Exists and Path.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithQueue sets the frontier factory. A nil factory is an option violation.
func WithQueue[S comparable](factory pq.Factory[S, float64]) Option[S] {
	return func(o *Options[S]) {
		if factory == nil {
			o.err = fmt.Errorf("%w: queue factory is nil", ErrOptionViolation)
			return
		}
		o.Queue = factory
	}
}

// WithEdgeWeight sets the weight function used by PathWeight.
func WithEdgeWeight[S comparable](fn EdgeWeight[S]) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.EdgeWeight = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger[S comparable](l *slog.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables prometheus counters for every run.
func WithMetrics[S comparable](m *Metrics) Option[S] {
	return func(o *Options[S]) { o.Metrics = m }
}

// WithTracerProvider sets the OpenTelemetry tracer provider for run spans.
func WithTracerProvider[S comparable](tp trace.TracerProvider) Option[S] {
	return func(o *Options[S]) { o.TracerProvider = tp }
}

// WithOnExpand registers a callback run for each expanded state.
func WithOnExpand[S comparable](fn func(S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscard registers a callback run for each stale entry dropped.
func WithOnDiscard[S comparable](fn func(S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// WithOnGoal registers a callback run with the goal state of a successful run.
func WithOnGoal[S comparable](fn func(S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}
