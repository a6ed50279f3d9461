package operations

import (
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/polynomial"
)

// Normaliser rewrites a term list. It may mutate l in place and return it,
// or consume l and return a new list.
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Normalise returns the normalised list.
	Normalise(l *domain.TermList) *domain.TermList
}

// Pipeline chains normalisers and runs them in order.
type Pipeline struct {
	steps []Normaliser
}

// NewPipeline creates a pipeline running steps in the order given.
func NewPipeline(steps ...Normaliser) *Pipeline {
	return &Pipeline{steps: steps}
}

// Process runs l through every step and returns the final list.
// A nil list is treated as empty.
func (p *Pipeline) Process(l *domain.TermList) *domain.TermList {
	if l == nil {
		l = domain.NewTermList()
	}
	for _, step := range p.steps {
		l = step.Normalise(l)
	}
	return l
}

// Add appends a step to the pipeline.
func (p *Pipeline) Add(step Normaliser) {
	p.steps = append(p.steps, step)
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Names returns the step names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Simplifier merges like terms.
type Simplifier struct{}

// Name implements Normaliser.
func (Simplifier) Name() string { return "simplify" }

// Normalise implements Normaliser.
func (Simplifier) Normalise(l *domain.TermList) *domain.TermList {
	polynomial.Simplify(l)
	return l
}

// Orderer sorts terms by descending exponent.
type Orderer struct{}

// Name implements Normaliser.
func (Orderer) Name() string { return "order" }

// Normalise implements Normaliser.
func (Orderer) Normalise(l *domain.TermList) *domain.TermList {
	return polynomial.Ordered(l)
}

// ZeroPruner drops terms whose coefficient is zero.
type ZeroPruner struct{}

// Name implements Normaliser.
func (ZeroPruner) Name() string { return "prune-zero" }

// Normalise implements Normaliser.
func (ZeroPruner) Normalise(l *domain.TermList) *domain.TermList {
	polynomial.PruneZero(l)
	return l
}
