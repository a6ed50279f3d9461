package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

const sampleRecords = "2 2 3 1\n1 1 5 0\nadd\n2 1\n3 1\nmultiply\n"

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCmd_File(t *testing.T) {
	setupServices(t)
	path := writeInput(t, "records.txt", sampleRecords)

	out, err := execute(t, "", "run", path)

	require.NoError(t, err)
	assert.Equal(t,
		"2x^2 + 3x \n+\n1x + 5 \n=\n2x^2 + 4x + 5 \n\n"+
			"2x \n*\n3x \n=\n6x^2 \n\n",
		out)
}

func TestRunCmd_DefaultFile(t *testing.T) {
	setupServices(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project1.txt"), []byte("1 0\n2 0\nadd\n"), 0o600))
	t.Chdir(dir)

	out, err := execute(t, "", "run")

	require.NoError(t, err)
	assert.Equal(t, "1 \n+\n2 \n=\n3 \n\n", out)
}

func TestRunCmd_Stdin(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "1 1\n1 1\nsubtract\n", "run", "-")

	require.NoError(t, err)
	assert.Equal(t, "1x \n-\n1x \n=\n0x \n\n", out)
}

func TestRunCmd_MissingFile(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestRunCmd_IncompleteRecord(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "1 0\n2 0\nadd\n1 0\n", "run", "-")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, domain.MessageIncompleteRecord+"\n"))
}

func TestRunCmd_Strict(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "1 0\n2 0\nadd\n1 0\n", "run", "-", "--strict")

	require.ErrorIs(t, err, domain.ErrIncompleteRecord)
	assert.Contains(t, err.Error(), "ends after record 1")
	assert.Contains(t, out, "1 \n+\n2 \n=\n3 \n")
}

func TestRunCmd_StrictCompleteInput(t *testing.T) {
	setupServices(t)

	_, err := execute(t, sampleRecords, "run", "-", "--strict")

	assert.NoError(t, err)
}

func TestRunCmd_InvalidOperation(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "1 0\n2 0\ndivide\n", "run", "-")

	require.NoError(t, err)
	assert.Equal(t, domain.MessageInvalidOperation+"\n\n", out)
}

func TestRunCmd_JSONOutput(t *testing.T) {
	setupServices(t)

	out, err := execute(t, sampleRecords, "run", "-", "-o", "json", "--workers", "2")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var ev domain.Evaluation
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &ev))
	assert.Equal(t, 1, ev.Index)
	assert.Equal(t, "6x^2 ", ev.Result)
	assert.Equal(t, "6 2", ev.Canonical)
	assert.NotEmpty(t, ev.RunID)
}

func TestRunCmd_YAMLOutput(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "2 1\n3 1\nmultiply\n", "run", "-", "--output", "yaml")

	require.NoError(t, err)
	var ev domain.Evaluation
	require.NoError(t, yaml.Unmarshal([]byte(out), &ev))
	assert.Equal(t, "6x^2 ", ev.Result)
	assert.Equal(t, "*", ev.Symbol)
}

func TestRunCmd_FlagsOverrideSettings(t *testing.T) {
	store := setupServices(t)
	require.NoError(t, store.Set("engine.prune_zero", false))

	out, err := execute(t, "1 1 1 0\n1 1\nsubtract\n", "run", "-", "--prune-zero", "--precision", "1")

	require.NoError(t, err)
	assert.Equal(t, "1.0x + 1.0 \n-\n1.0x \n=\n1.0 \n\n", out)
}

func TestRunCmd_StoredSettingsApply(t *testing.T) {
	store := setupServices(t)
	require.NoError(t, store.Set("format.precision", 2))

	out, err := execute(t, "0.5 1\n0.25 0\nadd\n", "run", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "0.50x + 0.25 \n")
}

func TestRunCmd_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown output", []string{"run", "-", "-o", "xml"}},
		{"zero workers", []string{"run", "-", "-w", "0"}},
		{"precision too large", []string{"run", "-", "--precision", "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupServices(t)

			_, err := execute(t, "", tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRunCmd_TooManyArgs(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "", "run", "a.txt", "b.txt")

	assert.Error(t, err)
}
