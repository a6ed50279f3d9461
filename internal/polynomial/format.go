package polynomial

import (
	"strconv"
	"strings"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// Formatter renders term lists in display form, e.g. "2x^2 + 4x + 5 ".
type Formatter struct {
	// Precision is the number of decimal places printed for coefficients.
	// -1 prints the shortest representation that round-trips.
	Precision int
}

// DefaultFormatter returns a formatter using the shortest number form.
func DefaultFormatter() Formatter {
	return Formatter{Precision: -1}
}

// Format renders l with the default formatter.
func Format(l *domain.TermList) string {
	return DefaultFormatter().Format(l)
}

// Format renders l, which should already be simplified and ordered.
//
// The first term prints its coefficient with its own sign. Every later term
// is preceded by "+ " or "- " and prints the absolute coefficient. Each term
// ends with a single space; an empty list renders as "".
func (f Formatter) Format(l *domain.TermList) string {
	var b strings.Builder
	for i, t := range l.Terms() {
		c := t.Coefficient
		if i > 0 {
			if c >= 0 {
				b.WriteString("+ ")
			} else {
				b.WriteString("- ")
				c = -c
			}
		}
		b.WriteString(f.number(c))
		switch t.Exponent {
		case 0:
		case 1:
			b.WriteByte('x')
		default:
			b.WriteString("x^")
			b.WriteString(strconv.FormatInt(int64(t.Exponent), 10))
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func (f Formatter) number(c float64) string {
	if c == 0 {
		// -0 prints as 0
		c = 0
	}
	if f.Precision < 0 {
		return strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strconv.FormatFloat(c, 'f', f.Precision, 64)
}
