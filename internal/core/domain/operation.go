package domain

import "strings"

// Operation identifies the arithmetic applied to a pair of operands.
type Operation int

// Supported operations.
const (
	// OperationInvalid marks an unrecognised keyword.
	OperationInvalid Operation = iota

	// OperationAdd is polynomial addition.
	OperationAdd

	// OperationSubtract is polynomial subtraction (first minus second).
	OperationSubtract

	// OperationMultiply is polynomial multiplication.
	OperationMultiply
)

// ParseOperation maps a keyword to an Operation. Matching ignores case and
// any whitespace inside the keyword, so "Sub tract" is OperationSubtract.
func ParseOperation(keyword string) Operation {
	switch strings.ToLower(strings.Join(strings.Fields(keyword), "")) {
	case "add":
		return OperationAdd
	case "subtract":
		return OperationSubtract
	case "multiply":
		return OperationMultiply
	default:
		return OperationInvalid
	}
}

// IsValid returns true for the three supported operations.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply:
		return true
	default:
		return false
	}
}

// String returns the canonical keyword.
func (o Operation) String() string {
	switch o {
	case OperationAdd:
		return "add"
	case OperationSubtract:
		return "subtract"
	case OperationMultiply:
		return "multiply"
	default:
		return "invalid"
	}
}

// Symbol returns the operator printed between operands.
func (o Operation) Symbol() string {
	switch o {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "-"
	case OperationMultiply:
		return "*"
	default:
		return ""
	}
}
