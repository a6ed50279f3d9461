package driving

import (
	"context"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// CalculatorService evaluates polynomial records.
type CalculatorService interface {
	// Evaluate parses, validates and computes a single record.
	// Invalid input is reported through the evaluation's messages, never
	// as an error.
	Evaluate(ctx context.Context, record domain.Record) domain.Evaluation

	// Run reads every record from src and writes its evaluation to sink in
	// input order. It returns an error only when the source cannot be read,
	// the sink fails, or ctx is cancelled.
	Run(ctx context.Context, src driven.RecordSource, sink driven.ResultSink, opts domain.RunOptions) (*domain.RunSummary, error)

	// Operations lists the operations this calculator can apply.
	Operations() []domain.Operation
}
