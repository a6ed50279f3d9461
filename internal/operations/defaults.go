package operations

import (
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/polynomial"
)

// RegisterDefaults registers add, subtract and multiply.
func RegisterDefaults(r *Registry) {
	r.Register(adder{})
	r.Register(subtracter{})
	r.Register(multiplier{})
}

// DefaultRegistry returns a registry holding the built-in operators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

type adder struct{}

func (adder) Operation() domain.Operation { return domain.OperationAdd }

func (adder) Apply(e *polynomial.Engine) (*domain.TermList, error) {
	return e.Add(), nil
}

type subtracter struct{}

func (subtracter) Operation() domain.Operation { return domain.OperationSubtract }

func (subtracter) Apply(e *polynomial.Engine) (*domain.TermList, error) {
	return e.Subtract(), nil
}

type multiplier struct{}

func (multiplier) Operation() domain.Operation { return domain.OperationMultiply }

func (multiplier) Apply(e *polynomial.Engine) (*domain.TermList, error) {
	return e.Multiply()
}

// OperandPipeline returns the steps applied to each parsed operand.
func OperandPipeline() *Pipeline {
	return NewPipeline(Simplifier{})
}

// ResultPipeline returns the steps applied to every computed result.
func ResultPipeline(pruneZero bool) *Pipeline {
	p := NewPipeline(Orderer{})
	if pruneZero {
		p.Add(ZeroPruner{})
	}
	return p
}
