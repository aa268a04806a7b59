package problem

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads and validates a YAML problem from path.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML problem from r and validates it. Unknown fields and
// trailing documents are rejected. The returned Problem has its Graph built.
func Load(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: more than one document", ErrInvalidProblem)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks struct tags first, then the graph semantics:
// unique node IDs, declared endpoints, start and goals, finite non-negative
// weights and finite heuristics. On success it (re)builds the Graph.
func (p *Problem) Validate() error {
	if p.Priority == "" {
		p.Priority = PriorityDistance
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}

	declared := make(map[string]struct{}, len(p.Nodes))
	for _, n := range p.Nodes {
		if _, dup := declared[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		if math.IsNaN(n.H) || math.IsInf(n.H, 0) {
			return fmt.Errorf("%w: node %q has non-finite h", ErrInvalidProblem, n.ID)
		}
		declared[n.ID] = struct{}{}
	}

	known := func(role, id string) error {
		if _, ok := declared[id]; !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownNode, role, id)
		}
		return nil
	}
	if err := known("start", p.Start); err != nil {
		return err
	}
	for _, g := range p.Goals {
		if err := known("goal", g); err != nil {
			return err
		}
	}
	for i, e := range p.Edges {
		if err := known(fmt.Sprintf("edge[%d].from", i), e.From); err != nil {
			return err
		}
		if err := known(fmt.Sprintf("edge[%d].to", i), e.To); err != nil {
			return err
		}
		w := e.EffectiveWeight()
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: edge %s→%s has non-finite weight", ErrInvalidProblem, e.From, e.To)
		}
	}

	p.graph = buildGraph(p)

	return nil
}

// Graph returns the adjacency built by Validate, or nil before validation.
func (p *Problem) Graph() *Graph { return p.graph }
