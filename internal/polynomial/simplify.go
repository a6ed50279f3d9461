package polynomial

import "github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"

// Simplify merges terms that share an exponent, in place.
//
// Each duplicate's coefficient is added into the earliest slot with that
// exponent and the duplicate slot is removed. The outer scan restarts after
// every merge so removals never skip a term. Slots are compared by identity,
// so a term is never merged with itself even when another slot holds an
// equal value. Merged coefficients of zero are kept.
func Simplify(l *domain.TermList) {
	outer := l.Iterator()
	for outer.Next() {
		term := outer.Term()
		inner := l.Iterator()
		for inner.Next() {
			other := inner.Term()
			if other == term || other.Exponent != term.Exponent {
				continue
			}
			term.Coefficient += other.Coefficient
			inner.Remove()
			outer = l.Iterator()
		}
	}
}

// PruneZero removes every term whose coefficient is exactly zero.
func PruneZero(l *domain.TermList) {
	it := l.Iterator()
	for it.Next() {
		if it.Term().Coefficient == 0 {
			it.Remove()
		}
	}
}
