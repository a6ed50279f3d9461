// Package tui provides an interactive terminal calculator for polycalc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Calculator evaluates records.
	Calculator driving.CalculatorService

	// Settings shows the active configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
