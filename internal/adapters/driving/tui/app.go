package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/tui/components/input"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/tui/keymap"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/tui/messages"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/tui/styles"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// historySize is the number of past evaluations kept on screen.
const historySize = 8

// App is the calculator TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	fields [messages.FieldCount]*input.Field
	focus  messages.Field

	// history holds past evaluations, newest first.
	history []domain.Evaluation

	// next is the index given to the next evaluated record.
	next int

	settings *domain.AppSettings
	err      error

	showHelp bool
	width    int
	height   int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		fields: [messages.FieldCount]*input.Field{
			input.NewField(s, "First", "coefficient/exponent pairs, e.g. 2 2 3 1"),
			input.NewField(s, "Second", "coefficient/exponent pairs, e.g. 1 1 5 0"),
			input.NewField(s, "Operation", "add, subtract or multiply"),
		},
	}
	a.fields[messages.FieldFirst].Focus()

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("polycalc"),
		a.fields[a.focus].Init(),
		a.loadSettings(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, f := range a.fields {
			f.SetWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.EvaluationCompleted:
		a.history = append([]domain.Evaluation{msg.Evaluation}, a.history...)
		if len(a.history) > historySize {
			a.history = a.history[:historySize]
		}
		return a, nil

	case messages.SettingsLoaded:
		a.settings = msg.Settings
		a.err = msg.Err
		return a, nil
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case key.Matches(msg, a.keys.Next):
		return a, a.setFocus((a.focus + 1) % messages.FieldCount)
	case key.Matches(msg, a.keys.Prev):
		return a, a.setFocus((a.focus + messages.FieldCount - 1) % messages.FieldCount)
	case key.Matches(msg, a.keys.Evaluate):
		return a, a.evaluate()
	case key.Matches(msg, a.keys.Clear):
		for _, f := range a.fields {
			f.Reset()
		}
		return a, a.setFocus(messages.FieldFirst)
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFocus(field messages.Field) tea.Cmd {
	a.fields[a.focus].Blur()
	a.focus = field
	return a.fields[a.focus].Focus()
}

// evaluate returns a command evaluating the current field values.
func (a *App) evaluate() tea.Cmd {
	record := domain.Record{
		Index:     a.next,
		First:     a.fields[messages.FieldFirst].Value(),
		Second:    a.fields[messages.FieldSecond].Value(),
		Operation: a.fields[messages.FieldOperation].Value(),
	}
	a.next++

	ctx, calc := a.ctx, a.ports.Calculator
	return func() tea.Msg {
		return messages.EvaluationCompleted{Evaluation: calc.Evaluate(ctx, record)}
	}
}

func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	settings := a.ports.Settings
	return func() tea.Msg {
		s, err := settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("polycalc"))
	if a.settings != nil {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  precision %s · reorder %t · prune zero %t",
			precisionLabel(a.settings.Format.Precision), a.settings.Engine.Reorder, a.settings.Engine.PruneZero)))
	}
	b.WriteString("\n\n")

	for _, f := range a.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(a.history) > 0 {
		b.WriteString(a.styles.Panel.Render(a.renderEvaluation(a.history[0])))
		b.WriteString("\n")
		for _, ev := range a.history[1:] {
			b.WriteString(a.styles.Muted.Render(summary(ev)))
			b.WriteString("\n")
		}
	}

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("settings: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(a.helpLine()))
	return b.String()
}

// renderEvaluation lays out an evaluation the same way the text output does.
func (a *App) renderEvaluation(ev domain.Evaluation) string {
	var lines []string
	if ev.Valid() {
		lines = append(lines,
			a.styles.Operand.Render(ev.First),
			a.styles.Symbol.Render(ev.Symbol),
			a.styles.Operand.Render(ev.Second),
			a.styles.Symbol.Render("="),
		)
	}
	for _, m := range ev.Messages {
		lines = append(lines, a.styles.Error.Render(m))
	}
	if ev.Computed {
		result := ev.Result
		if strings.TrimSpace(result) == "" {
			result = "(zero polynomial)"
		}
		lines = append(lines, a.styles.Result.Render(result))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) helpLine() string {
	bindings := a.keys.ShortHelp()
	if a.showHelp {
		bindings = a.keys.FullHelp()
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	return strings.Join(parts, " • ")
}

// summary renders a one-line history entry.
func summary(ev domain.Evaluation) string {
	if !ev.Computed {
		if len(ev.Messages) > 0 {
			return fmt.Sprintf("#%d  %s", ev.Index+1, ev.Messages[len(ev.Messages)-1])
		}
		return fmt.Sprintf("#%d  no result", ev.Index+1)
	}
	return fmt.Sprintf("#%d  (%s) %s (%s) = %s", ev.Index+1,
		strings.TrimSpace(ev.First), ev.Symbol, strings.TrimSpace(ev.Second), strings.TrimSpace(ev.Result))
}

func precisionLabel(p int) string {
	if p < 0 {
		return "shortest"
	}
	return fmt.Sprintf("%d", p)
}

// Focus returns the field receiving keystrokes.
func (a *App) Focus() messages.Field {
	return a.focus
}

// History returns past evaluations, newest first.
func (a *App) History() []domain.Evaluation {
	return a.history
}

// Settings returns the loaded settings, or nil before they arrive.
func (a *App) Settings() *domain.AppSettings {
	return a.settings
}
