package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent evaluation failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Record Errors.

	// ErrMalformedOperand indicates an odd token count or a token that is
	// not a number of the expected kind.
	ErrMalformedOperand = errors.New("malformed polynomial")

	// ErrUnknownOperation indicates an operation keyword other than
	// add, subtract or multiply.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrIncompleteRecord indicates the source ended before three lines
	// of a record were read.
	ErrIncompleteRecord = errors.New("incomplete record")

	// ErrExponentOverflow indicates a product exponent outside the int32 range.
	ErrExponentOverflow = errors.New("exponent overflow")

	// ErrSourceUnavailable indicates the record source could not be opened or read.
	ErrSourceUnavailable = errors.New("record source unavailable")
)

// User-facing messages printed in place of a result.
const (
	MessageInvalidOperation     = "Invalid Operation. Please use 'add' 'subtract' or 'multiply'"
	MessageAlsoInvalidOperation = "This equation also contains an invalid operation. Please use 'add' 'subtract' or 'multiply'"
	MessageIncompleteRecord     = "Each operation requires three lines of input."
	MessageExponentOverflow     = "The result has an exponent outside the supported range."
)

// OperandError reports a malformed operand and which side it was on.
type OperandError struct {
	Operand Operand
	Cause   error
}

// Error returns the user-facing message for the operand.
func (e *OperandError) Error() string {
	return fmt.Sprintf("Invalid %s polynomial. Every term needs a coefficient and an integer exponent.", e.Operand)
}

// Unwrap returns the underlying parse failure.
func (e *OperandError) Unwrap() error {
	return e.Cause
}
