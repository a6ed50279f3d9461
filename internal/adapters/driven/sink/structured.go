package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// Ensure the structured sinks implement the interface.
var (
	_ driven.ResultSink = (*JSON)(nil)
	_ driven.ResultSink = (*YAML)(nil)
)

// IncompleteRecord is the structured form of an incomplete trailing record.
type IncompleteRecord struct {
	Incomplete bool   `json:"incomplete" yaml:"incomplete"`
	Lines      int    `json:"lines" yaml:"lines"`
	Message    string `json:"message" yaml:"message"`
}

func incomplete(lines int) IncompleteRecord {
	return IncompleteRecord{Incomplete: true, Lines: lines, Message: domain.MessageIncompleteRecord}
}

// JSON writes one JSON object per line.
type JSON struct {
	enc *json.Encoder
}

// NewJSON creates a JSON lines sink.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Write encodes one evaluation.
func (j *JSON) Write(_ context.Context, ev domain.Evaluation) error {
	if err := j.enc.Encode(ev); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Incomplete encodes an IncompleteRecord.
func (j *JSON) Incomplete(_ context.Context, lines int) error {
	if err := j.enc.Encode(incomplete(lines)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes one YAML document per evaluation.
type YAML struct {
	enc *yaml.Encoder
}

// NewYAML creates a YAML sink. Close flushes the final document.
func NewYAML(w io.Writer) *YAML {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAML{enc: enc}
}

// Write encodes one evaluation as a document.
func (y *YAML) Write(_ context.Context, ev domain.Evaluation) error {
	if err := y.enc.Encode(ev); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// Incomplete encodes an IncompleteRecord document.
func (y *YAML) Incomplete(_ context.Context, lines int) error {
	if err := y.enc.Encode(incomplete(lines)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// Close flushes the encoder.
func (y *YAML) Close() error {
	return y.enc.Close()
}
