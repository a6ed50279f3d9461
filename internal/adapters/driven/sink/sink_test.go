package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

func computed() domain.Evaluation {
	return domain.Evaluation{
		Index:          0,
		Operation:      "add",
		Symbol:         "+",
		FirstValid:     true,
		SecondValid:    true,
		OperationValid: true,
		First:          "2x^2 + 3x ",
		Second:         "1x + 5 ",
		Computed:       true,
		Result:         "2x^2 + 4x + 5 ",
		Canonical:      "2 2 4 1 5 0",
		Terms: []domain.Term{
			{Coefficient: 2, Exponent: 2},
			{Coefficient: 4, Exponent: 1},
			{Coefficient: 5, Exponent: 0},
		},
	}
}

func invalidFirst() domain.Evaluation {
	return domain.Evaluation{
		Index:          1,
		Operation:      "add",
		SecondValid:    true,
		OperationValid: true,
		Messages:       []string{"Invalid first polynomial. Every term needs a coefficient and an integer exponent."},
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestText_Computed(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewText(&buf).Write(context.Background(), computed()))

	assert.Equal(t, "2x^2 + 3x \n+\n1x + 5 \n=\n2x^2 + 4x + 5 \n\n", buf.String())
}

func TestText_Invalid(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewText(&buf).Write(context.Background(), invalidFirst()))

	assert.Equal(t, "Invalid first polynomial. Every term needs a coefficient and an integer exponent.\n\n", buf.String())
}

func TestText_InvalidOperation(t *testing.T) {
	var buf bytes.Buffer
	ev := domain.Evaluation{
		FirstValid:  true,
		SecondValid: true,
		Operation:   "divide",
		Messages:    []string{domain.MessageInvalidOperation},
	}

	require.NoError(t, NewText(&buf).Write(context.Background(), ev))

	assert.Equal(t, domain.MessageInvalidOperation+"\n\n", buf.String())
}

func TestText_ValidButNotComputed(t *testing.T) {
	var buf bytes.Buffer
	ev := computed()
	ev.Computed = false
	ev.Result = ""
	ev.Messages = []string{domain.MessageExponentOverflow}

	require.NoError(t, NewText(&buf).Write(context.Background(), ev))

	assert.Equal(t, "2x^2 + 3x \n+\n1x + 5 \n=\n"+domain.MessageExponentOverflow+"\n\n", buf.String())
}

func TestText_Incomplete(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewText(&buf).Incomplete(context.Background(), 2))

	assert.Equal(t, domain.MessageIncompleteRecord+"\n", buf.String())
}

func TestText_WriteError(t *testing.T) {
	s := NewText(failingWriter{})

	assert.Error(t, s.Write(context.Background(), computed()))
	assert.Error(t, s.Incomplete(context.Background(), 1))
}

func TestStyledText_KeepsContent(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewStyledText(&buf).Write(context.Background(), computed()))

	assert.Contains(t, buf.String(), "2x^2 + 4x + 5")
	assert.True(t, strings.HasPrefix(buf.String(), "2x^2 + 3x \n+\n"))
}

func TestJSON_Write(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSON(&buf)

	require.NoError(t, s.Write(context.Background(), computed()))
	require.NoError(t, s.Write(context.Background(), invalidFirst()))
	require.NoError(t, s.Incomplete(context.Background(), 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first domain.Evaluation
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, computed(), first)

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, false, second["computed"])
	assert.NotContains(t, second, "result")

	var inc IncompleteRecord
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &inc))
	assert.Equal(t, IncompleteRecord{Incomplete: true, Lines: 1, Message: domain.MessageIncompleteRecord}, inc)
}

func TestYAML_Write(t *testing.T) {
	var buf bytes.Buffer
	s := NewYAML(&buf)

	require.NoError(t, s.Write(context.Background(), computed()))
	require.NoError(t, s.Incomplete(context.Background(), 2))
	require.NoError(t, s.Close())

	dec := yaml.NewDecoder(&buf)

	var ev domain.Evaluation
	require.NoError(t, dec.Decode(&ev))
	assert.Equal(t, computed(), ev)

	var inc IncompleteRecord
	require.NoError(t, dec.Decode(&inc))
	assert.Equal(t, 2, inc.Lines)
	assert.True(t, inc.Incomplete)
}

func TestCollector(t *testing.T) {
	c := NewCollector()

	require.NoError(t, c.Write(context.Background(), computed()))
	require.NoError(t, c.Incomplete(context.Background(), 1))

	evs := c.Evaluations()
	require.Len(t, evs, 1)
	evs[0].Result = "mutated"
	assert.Equal(t, "2x^2 + 4x + 5 ", c.Evaluations()[0].Result)
	assert.Equal(t, 1, c.IncompleteLines())
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  domain.OutputFormat
		styled  bool
		want    any
		wantErr bool
	}{
		{format: domain.OutputText, want: &Text{}},
		{format: "", want: &Text{}},
		{format: domain.OutputText, styled: true, want: &Text{}},
		{format: domain.OutputJSON, want: &JSON{}},
		{format: domain.OutputYAML, want: &YAML{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			s, closer, err := New(tt.format, &bytes.Buffer{}, tt.styled)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.NoError(t, closer.Close())
		})
	}
}
