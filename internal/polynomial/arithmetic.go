package polynomial

import (
	"fmt"
	"math"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// Add returns first + second. Both operands must be simplified.
//
// For every term of first, second is scanned for the matching exponent; a
// match is folded into the first term and removed from second, and the scan
// for that term stops since simplified operands hold at most one match.
// Terms left in second are appended. When either operand is empty the other
// is returned unchanged.
//
// Add consumes both operands; they are empty on return.
func Add(first, second *domain.TermList) *domain.TermList {
	if second.Len() == 0 {
		second.Clear()
		return first.Take()
	}
	if first.Len() == 0 {
		return second.Take()
	}

	result := first.Take()
	rest := second.Take()

	outer := result.Iterator()
	for outer.Next() {
		term := outer.Term()
		inner := rest.Iterator()
		for inner.Next() {
			if inner.Term().Exponent == term.Exponent {
				term.Coefficient += inner.Term().Coefficient
				inner.Remove()
				break
			}
		}
	}

	for _, t := range rest.Terms() {
		result.Append(t)
	}
	return result
}

// Negate flips the sign of every coefficient in l, in place.
func Negate(l *domain.TermList) {
	for _, t := range l.Terms() {
		t.Negate()
	}
}

// Multiply returns first × second. Both operands must be simplified.
//
// For each term of first the products with every term of second are
// collected into a scratch list, which is then added into the running
// accumulator. Like exponents merge into the accumulator as each batch is
// added; batches are not simplified beforehand.
//
// Multiply consumes both operands. It fails with domain.ErrExponentOverflow
// when a product exponent leaves the int32 range.
func Multiply(first, second *domain.TermList) (*domain.TermList, error) {
	defer first.Clear()
	defer second.Clear()

	acc := domain.NewTermList()
	for _, t1 := range first.Terms() {
		scratch := domain.NewTermList()
		for _, t2 := range second.Terms() {
			exponent := int64(t1.Exponent) + int64(t2.Exponent)
			if exponent > math.MaxInt32 || exponent < math.MinInt32 {
				return domain.NewTermList(), fmt.Errorf("%w: x^%d * x^%d",
					domain.ErrExponentOverflow, t1.Exponent, t2.Exponent)
			}
			scratch.Append(domain.NewTerm(t1.Coefficient*t2.Coefficient, int32(exponent)))
		}
		acc = Add(acc, scratch)
	}
	return acc, nil
}
