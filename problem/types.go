package problem

import (
	"errors"
	"math"
)

// Sentinel errors for problem loading and engine construction.
var (
	// ErrInvalidProblem wraps structural validation failures and YAML errors.
	ErrInvalidProblem = errors.New("problem: invalid problem")

	// ErrDuplicateNode is returned when a node ID is declared twice.
	ErrDuplicateNode = errors.New("problem: duplicate node")

	// ErrUnknownNode is returned when start, a goal or an edge endpoint is not declared.
	ErrUnknownNode = errors.New("problem: unknown node")

	// ErrNegativeWeight is returned for edges with negative weight.
	ErrNegativeWeight = errors.New("problem: negative edge weight")

	// ErrUnknownPriority is returned for a priority mode other than
	// heuristic, distance or depth.
	ErrUnknownPriority = errors.New("problem: unknown priority mode")
)

// Priority selects how frontier priorities are derived from the graph.
type Priority string

const (
	// PriorityHeuristic uses each node's h value.
	PriorityHeuristic Priority = "heuristic"

	// PriorityDistance uses the weighted shortest distance from start and
	// restricts transitions to shortest-path edges.
	PriorityDistance Priority = "distance"

	// PriorityDepth uses the hop count from start.
	PriorityDepth Priority = "depth"
)

// Priorities lists the accepted priority modes.
var Priorities = []Priority{PriorityHeuristic, PriorityDistance, PriorityDepth}

// DefaultWeight is the weight of an edge that omits one.
const DefaultWeight = 1.0

// Unreachable is the priority given to nodes the start cannot reach.
var Unreachable = math.Inf(1)

// Problem is a search problem over a declared graph, as read from YAML.
type Problem struct {
	Name     string   `yaml:"name"`
	Start    string   `yaml:"start" validate:"required"`
	Goals    []string `yaml:"goals" validate:"required,min=1,dive,required"`
	Directed bool     `yaml:"directed"`
	Priority Priority `yaml:"priority" validate:"omitempty,oneof=heuristic distance depth"`
	Nodes    []Node   `yaml:"nodes" validate:"required,min=1,dive"`
	Edges    []Edge   `yaml:"edges" validate:"dive"`

	graph *Graph
}

// Node is a declared state. H is its heuristic priority.
type Node struct {
	ID string  `yaml:"id" validate:"required"`
	H  float64 `yaml:"h"`
}

// Edge connects From to To (and To to From unless the problem is directed).
// A nil Weight means DefaultWeight.
type Edge struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Weight *float64 `yaml:"weight"`
}

// EffectiveWeight returns the edge weight, defaulting to DefaultWeight.
func (e Edge) EffectiveWeight() float64 {
	if e.Weight == nil {
		return DefaultWeight
	}

	return *e.Weight
}
