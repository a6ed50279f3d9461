package driven

import (
	"context"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// ResultSink receives evaluated records.
// Calls arrive in record order from a single goroutine.
type ResultSink interface {
	// Write emits one evaluated record.
	Write(ctx context.Context, ev domain.Evaluation) error

	// Incomplete reports that the source ended part way through a record.
	// remaining is the number of lines read for that record (1 or 2).
	Incomplete(ctx context.Context, remaining int) error
}
