package domain

// Term is a single monomial: Coefficient·x^Exponent.
//
// Terms have no identity beyond the slot that holds them. Two distinct *Term
// values with equal fields are still different terms; simplification relies
// on that to avoid merging a term with itself.
type Term struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
	Exponent    int32   `json:"exponent" yaml:"exponent"`
}

// NewTerm allocates a new term slot.
func NewTerm(coefficient float64, exponent int32) *Term {
	return &Term{Coefficient: coefficient, Exponent: exponent}
}

// Negate flips the sign of the coefficient in place.
func (t *Term) Negate() {
	t.Coefficient = -t.Coefficient
}

// TermList is an ordered, mutable sequence of term slots.
// A nil *TermList behaves as an empty list for read operations.
type TermList struct {
	terms []*Term
}

// NewTermList creates a list holding the given slots in order.
func NewTermList(terms ...*Term) *TermList {
	l := &TermList{terms: make([]*Term, 0, len(terms))}
	l.terms = append(l.terms, terms...)
	return l
}

// Len returns the number of terms in the list.
func (l *TermList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.terms)
}

// Append adds a slot to the end of the list.
func (l *TermList) Append(t *Term) {
	l.terms = append(l.terms, t)
}

// At returns the slot at position i.
func (l *TermList) At(i int) *Term {
	return l.terms[i]
}

// RemoveAt removes and returns the slot at position i.
func (l *TermList) RemoveAt(i int) *Term {
	t := l.terms[i]
	copy(l.terms[i:], l.terms[i+1:])
	l.terms[len(l.terms)-1] = nil
	l.terms = l.terms[:len(l.terms)-1]
	return t
}

// Clear drops every slot.
func (l *TermList) Clear() {
	if l == nil {
		return
	}
	clear(l.terms)
	l.terms = l.terms[:0]
}

// Take moves every slot into a new list and leaves l empty.
// It is how operations take ownership of an operand.
func (l *TermList) Take() *TermList {
	if l == nil {
		return NewTermList()
	}
	out := &TermList{terms: l.terms}
	l.terms = nil
	return out
}

// Terms returns the slots in order. The returned slice is a copy; the
// slots themselves are shared.
func (l *TermList) Terms() []*Term {
	if l == nil {
		return nil
	}
	out := make([]*Term, len(l.terms))
	copy(out, l.terms)
	return out
}

// Values returns a copy of every term's value in order.
func (l *TermList) Values() []Term {
	if l.Len() == 0 {
		return nil
	}
	out := make([]Term, len(l.terms))
	for i, t := range l.terms {
		out[i] = *t
	}
	return out
}

// Iterator returns a cursor over the list that supports removing the
// current slot without disturbing the rest of the traversal.
func (l *TermList) Iterator() *TermIterator {
	return &TermIterator{list: l, current: -1}
}

// TermIterator walks a TermList front to back.
type TermIterator struct {
	list    *TermList
	next    int
	current int
}

// Next advances to the next slot and reports whether one exists.
func (it *TermIterator) Next() bool {
	if it.next >= it.list.Len() {
		it.current = -1
		return false
	}
	it.current = it.next
	it.next++
	return true
}

// Term returns the current slot.
func (it *TermIterator) Term() *Term {
	return it.list.terms[it.current]
}

// Remove deletes the current slot. The following call to Next yields the
// slot that came after it.
func (it *TermIterator) Remove() {
	if it.current < 0 {
		panic("domain: TermIterator.Remove called without a current term")
	}
	it.list.RemoveAt(it.current)
	it.next = it.current
	it.current = -1
}
