package operations

import (
	"fmt"
	"sort"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/polynomial"
)

// Operator applies one arithmetic operation to the operands held by an engine.
type Operator interface {
	// Operation returns the operation this operator implements.
	Operation() domain.Operation

	// Apply computes the result. The engine's operands are consumed.
	Apply(e *polynomial.Engine) (*domain.TermList, error)
}

// Registry maps operations to their operators.
type Registry struct {
	operators map[domain.Operation]Operator
}

// NewRegistry creates an empty operator registry.
func NewRegistry() *Registry {
	return &Registry{
		operators: make(map[domain.Operation]Operator),
	}
}

// Register adds an operator, replacing any operator already registered for
// the same operation.
func (r *Registry) Register(op Operator) {
	r.operators[op.Operation()] = op
}

// Get returns the operator for op.
// Returns an error wrapping domain.ErrUnknownOperation if none is registered.
func (r *Registry) Get(op domain.Operation) (Operator, error) {
	operator, ok := r.operators[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, op)
	}
	return operator, nil
}

// Lookup resolves a raw keyword to its operator.
func (r *Registry) Lookup(keyword string) (Operator, error) {
	op := domain.ParseOperation(keyword)
	if !op.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, keyword)
	}
	return r.Get(op)
}

// Operations returns the registered operations in declaration order.
func (r *Registry) Operations() []domain.Operation {
	ops := make([]domain.Operation, 0, len(r.operators))
	for op := range r.operators {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
