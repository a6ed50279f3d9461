package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// OutputFormat selects how evaluations are written to the result sink.
type OutputFormat string

// Available output formats.
const (
	// OutputText prints the equation and result as plain lines.
	OutputText OutputFormat = "text"

	// OutputJSON writes one JSON object per evaluation.
	OutputJSON OutputFormat = "json"

	// OutputYAML writes one YAML document per evaluation.
	OutputYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputText:
		return "Text (equation and result lines)"
	case OutputJSON:
		return "JSON (one object per record)"
	case OutputYAML:
		return "YAML (one document per record)"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputText, OutputJSON, OutputYAML}
}

// FormatSettings controls how coefficients are rendered.
type FormatSettings struct {
	// Precision is the number of decimal places printed.
	// -1 prints the shortest representation that round-trips.
	Precision int
}

// EngineSettings controls the arithmetic engine.
type EngineSettings struct {
	// Reorder enables the larger-operand-first heuristic.
	Reorder bool

	// PruneZero drops zero-coefficient terms from results.
	PruneZero bool
}

// RunSettings controls runs over a record source.
type RunSettings struct {
	// Workers is the number of records evaluated concurrently.
	Workers int

	// Output is the default output format.
	Output OutputFormat
}

// WatchSettings controls the watch command.
type WatchSettings struct {
	// MinInterval is the minimum time between two re-evaluations.
	MinInterval time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	Format FormatSettings
	Engine EngineSettings
	Run    RunSettings
	Watch  WatchSettings
}

// DefaultAppSettings returns settings matching the classic calculator
// behaviour: shortest number rendering, operand reordering on, zero terms
// kept, sequential text output.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Format: FormatSettings{Precision: -1},
		Engine: EngineSettings{Reorder: true},
		Run: RunSettings{
			Workers: 1,
			Output:  OutputText,
		},
		Watch: WatchSettings{MinInterval: 500 * time.Millisecond},
	}
}

// Validate checks settings for values the engine cannot honour.
func (s *AppSettings) Validate() error {
	if s.Format.Precision < -1 || s.Format.Precision > 17 {
		return fmt.Errorf("%w: format precision %d out of range [-1, 17]", ErrInvalidInput, s.Format.Precision)
	}
	if s.Run.Workers < 1 {
		return fmt.Errorf("%w: run workers must be positive, got %d", ErrInvalidInput, s.Run.Workers)
	}
	if !s.Run.Output.IsValid() {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidInput, s.Run.Output)
	}
	if s.Watch.MinInterval < 0 {
		return fmt.Errorf("%w: watch interval must not be negative", ErrInvalidInput)
	}
	return nil
}
