package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewField(t *testing.T) {
	f := NewField(nil, "First", "pairs")

	assert.Equal(t, "First", f.Label())
	assert.Empty(t, f.Value())
	assert.False(t, f.Focused())
	assert.Equal(t, 50, f.Width())
}

func TestField_FocusAndType(t *testing.T) {
	f := NewField(nil, "First", "")
	f.Focus()
	assert.True(t, f.Focused())

	for _, r := range "2 2" {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "2 2", f.Value())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_IgnoresKeysWhenBlurred(t *testing.T) {
	f := NewField(nil, "First", "")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Empty(t, f.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	f := NewField(nil, "Operation", "")

	f.SetValue("add")
	assert.Equal(t, "add", f.Value())

	f.Reset()
	assert.Empty(t, f.Value())
}

func TestField_SetWidth(t *testing.T) {
	f := NewField(nil, "First", "")

	f.SetWidth(80)
	assert.Equal(t, 80, f.Width())
	assert.Equal(t, 64, f.textinput.Width)

	f.SetWidth(10)
	assert.Equal(t, 20, f.textinput.Width)
}

func TestField_View(t *testing.T) {
	f := NewField(nil, "Second", "")
	f.SetValue("1 0")

	view := f.View()
	assert.Contains(t, view, "Second")
	assert.Contains(t, view, "1 0")
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewField(nil, "First", "").Init())
}
