// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Focus     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
		Focus:     lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles for the calculator view.
type Styles struct {
	theme *Theme

	// Title is the application header.
	Title lipgloss.Style

	// Label precedes each input field.
	Label lipgloss.Style

	// FocusedLabel marks the field receiving keystrokes.
	FocusedLabel lipgloss.Style

	// InputField frames an input.
	InputField lipgloss.Style

	// Operand renders operand lines of an equation.
	Operand lipgloss.Style

	// Symbol renders the operation symbol.
	Symbol lipgloss.Style

	// Result renders a computed result.
	Result lipgloss.Style

	// Error renders user-facing messages.
	Error lipgloss.Style

	// Muted renders history and hints.
	Muted lipgloss.Style

	// Panel frames the latest evaluation.
	Panel lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Label: lipgloss.NewStyle().
			Width(11).
			Foreground(theme.Muted),

		FocusedLabel: lipgloss.NewStyle().
			Width(11).
			Bold(true).
			Foreground(theme.Focus),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Operand: lipgloss.NewStyle(),

		Symbol: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Result: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
