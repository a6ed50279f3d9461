// Package polynomial implements single-variable polynomial arithmetic over
// domain.TermList values.
//
// The functions here are pure with respect to everything except the lists
// passed to them. Arithmetic takes ownership of its operands: after Add,
// Subtract or Multiply the operand lists are empty and the caller holds only
// the returned result.
//
// Pipeline for one operation:
//
//	Parse → Simplify → (Engine.LargerFirst) → Add | Subtract | Multiply → DescendingExponentOrder → Format
package polynomial
