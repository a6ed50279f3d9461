package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// Parse reads whitespace separated coefficient/exponent pairs into a list
// ordered by descending exponent. The list is not simplified.
//
// An empty line is the zero polynomial. On failure the returned list is
// empty and the error wraps domain.ErrMalformedOperand.
func Parse(line string) (*domain.TermList, error) {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return domain.NewTermList(), fmt.Errorf("%w: %d tokens do not form coefficient/exponent pairs",
			domain.ErrMalformedOperand, len(fields))
	}

	unordered := domain.NewTermList()
	for i := 0; i < len(fields); i += 2 {
		coefficient, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(coefficient) || math.IsInf(coefficient, 0) {
			return domain.NewTermList(), fmt.Errorf("%w: coefficient %q is not a finite number",
				domain.ErrMalformedOperand, fields[i])
		}
		exponent, err := strconv.ParseInt(fields[i+1], 10, 32)
		if err != nil {
			return domain.NewTermList(), fmt.Errorf("%w: exponent %q is not a 32-bit integer",
				domain.ErrMalformedOperand, fields[i+1])
		}
		unordered.Append(domain.NewTerm(coefficient, int32(exponent)))
	}

	ordered := domain.NewTermList()
	DescendingExponentOrder(unordered, ordered)
	return ordered, nil
}

// Encode renders a list as coefficient/exponent pairs that Parse accepts.
// Coefficients use the shortest form that round-trips exactly.
func Encode(l *domain.TermList) string {
	var b strings.Builder
	for i, t := range l.Terms() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(t.Coefficient, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(t.Exponent), 10))
	}
	return b.String()
}
