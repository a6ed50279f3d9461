package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// Ensure Text implements the interface.
var _ driven.ResultSink = (*Text)(nil)

// Text writes evaluations in the classic layout:
//
//	2x^2 + 3x
//	+
//	1x + 5
//	=
//	2x^2 + 4x + 5
//	<blank>
//
// Invalid records print their messages instead of the equation.
type Text struct {
	w       io.Writer
	message lipgloss.Style
	result  lipgloss.Style
	styled  bool
}

// NewText creates a plain text sink.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// NewStyledText creates a text sink that colours messages and results.
// Callers should only use it when w is a terminal.
func NewStyledText(w io.Writer) *Text {
	return &Text{
		w:       w,
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		result:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		styled:  true,
	}
}

// Write prints one evaluation followed by a blank line.
func (t *Text) Write(_ context.Context, ev domain.Evaluation) error {
	var lines []string
	if ev.Valid() {
		lines = append(lines, ev.First, ev.Symbol, ev.Second, "=")
	}
	for _, msg := range ev.Messages {
		lines = append(lines, t.render(t.message, msg))
	}
	if ev.Computed {
		lines = append(lines, t.render(t.result, ev.Result))
	}
	lines = append(lines, "")

	for _, line := range lines {
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

// Incomplete prints the incomplete record message.
func (t *Text) Incomplete(_ context.Context, _ int) error {
	if _, err := fmt.Fprintln(t.w, t.render(t.message, domain.MessageIncompleteRecord)); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

func (t *Text) render(style lipgloss.Style, s string) string {
	if !t.styled {
		return s
	}
	return style.Render(s)
}
