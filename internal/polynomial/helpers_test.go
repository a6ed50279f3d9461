package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// mustParse parses and simplifies line, failing the test on error.
func mustParse(t *testing.T, line string) *domain.TermList {
	t.Helper()
	l, err := Parse(line)
	require.NoError(t, err)
	Simplify(l)
	return l
}

// coefficientsByExponent flattens a list for order-insensitive comparison.
func coefficientsByExponent(l *domain.TermList) map[int32]float64 {
	out := make(map[int32]float64, l.Len())
	for _, t := range l.Terms() {
		out[t.Exponent] += t.Coefficient
	}
	return out
}

// assertSamePolynomial compares two lists as multisets of terms.
func assertSamePolynomial(t *testing.T, want, got *domain.TermList) {
	t.Helper()
	w, g := coefficientsByExponent(want), coefficientsByExponent(got)
	require.Len(t, g, len(w))
	for exp, coef := range w {
		gotCoef, ok := g[exp]
		require.Truef(t, ok, "missing exponent %d", exp)
		require.InDeltaf(t, coef, gotCoef, 1e-9, "coefficient of x^%d", exp)
	}
}
