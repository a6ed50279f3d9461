package polynomial

import "github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"

// DescendingExponentOrder moves every term of src to the end of dst,
// largest exponent first. src is empty on return.
//
// This is a selection sort and runs in O(n²); term counts are small. On
// equal exponents the earlier term in src is moved first.
func DescendingExponentOrder(src, dst *domain.TermList) {
	for src.Len() > 0 {
		pos := 0
		for i := 1; i < src.Len(); i++ {
			if src.At(i).Exponent > src.At(pos).Exponent {
				pos = i
			}
		}
		dst.Append(src.RemoveAt(pos))
	}
}

// Ordered consumes l and returns a new list in descending exponent order.
func Ordered(l *domain.TermList) *domain.TermList {
	out := domain.NewTermList()
	if l == nil {
		return out
	}
	DescendingExponentOrder(l, out)
	return out
}
