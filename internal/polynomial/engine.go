package polynomial

import "github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"

// Engine owns the two operands of one operation.
//
// LargerFirst may swap the operands so the longer list drives addition.
// The swap is internal: Subtract negates whichever list holds the original
// second operand, so results always mean first − second as entered.
type Engine struct {
	first       *domain.TermList
	second      *domain.TermList
	firstCount  int
	secondCount int
	swapped     bool
	spent       bool
}

// NewEngine takes ownership of both operands. Operands should already be
// simplified; their term counts are cached here.
func NewEngine(first, second *domain.TermList) *Engine {
	first, second = first.Take(), second.Take()
	return &Engine{
		first:       first,
		second:      second,
		firstCount:  first.Len(),
		secondCount: second.Len(),
	}
}

// LargerFirst swaps the operands, and their cached counts, when the second
// has strictly more terms than the first. It reports whether a swap happened.
func (e *Engine) LargerFirst() bool {
	if e.firstCount < e.secondCount {
		e.first, e.second = e.second, e.first
		e.firstCount, e.secondCount = e.secondCount, e.firstCount
		e.swapped = !e.swapped
		return true
	}
	return false
}

// Counts returns the cached term counts of the operands in their current
// positions.
func (e *Engine) Counts() (first, second int) {
	return e.firstCount, e.secondCount
}

// Add returns the sum of the operands.
func (e *Engine) Add() *domain.TermList {
	first, second := e.take()
	return Add(first, second)
}

// Subtract returns the original first operand minus the original second.
func (e *Engine) Subtract() *domain.TermList {
	first, second := e.take()
	if e.swapped {
		Negate(first)
	} else {
		Negate(second)
	}
	return Add(first, second)
}

// Multiply returns the product of the operands.
func (e *Engine) Multiply() (*domain.TermList, error) {
	first, second := e.take()
	return Multiply(first, second)
}

// take hands the operands to an operation. An engine computes once; later
// calls see empty operands.
func (e *Engine) take() (first, second *domain.TermList) {
	if e.spent {
		return domain.NewTermList(), domain.NewTermList()
	}
	e.spent = true
	return e.first.Take(), e.second.Take()
}
