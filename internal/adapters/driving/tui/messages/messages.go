// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// EvaluationCompleted carries an evaluated record back to the model.
type EvaluationCompleted struct {
	Evaluation domain.Evaluation
}

// SettingsLoaded carries the active settings, or the error reading them.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// Field identifies an input field.
type Field int

// Input fields in display order.
const (
	FieldFirst Field = iota
	FieldSecond
	FieldOperation
)

// FieldCount is the number of input fields.
const FieldCount = 3

// String returns the field label.
func (f Field) String() string {
	switch f {
	case FieldFirst:
		return "first"
	case FieldSecond:
		return "second"
	case FieldOperation:
		return "operation"
	default:
		return "unknown"
	}
}
