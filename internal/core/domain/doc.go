// Package domain defines the core entities of the polynomial calculator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Term: a coefficient/exponent pair held in a slot
//   - TermList: an ordered, mutable sequence of term slots
//   - Operation: add, subtract or multiply
//   - Record: the three raw lines of one operation
//   - Evaluation: the outcome of evaluating a record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
