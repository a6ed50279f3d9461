package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driving"
	"github.com/StevenWojsnis/polynomialCalculator/internal/logger"
	"github.com/StevenWojsnis/polynomialCalculator/internal/operations"
	"github.com/StevenWojsnis/polynomialCalculator/internal/polynomial"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// linesPerRecord is the number of input lines making up one record.
const linesPerRecord = 3

// CalculatorService evaluates records: parse both operands, simplify,
// optionally reorder, apply the operation and format the result.
type CalculatorService struct {
	registry  *operations.Registry
	operands  *operations.Pipeline
	results   *operations.Pipeline
	formatter polynomial.Formatter
	reorder   bool
}

// NewCalculatorService creates a calculator using the given operator registry
// and engine/format settings. A nil registry uses the built-in operators.
func NewCalculatorService(registry *operations.Registry, settings domain.AppSettings) *CalculatorService {
	if registry == nil {
		registry = operations.DefaultRegistry()
	}
	return &CalculatorService{
		registry:  registry,
		operands:  operations.OperandPipeline(),
		results:   operations.ResultPipeline(settings.Engine.PruneZero),
		formatter: polynomial.Formatter{Precision: settings.Format.Precision},
		reorder:   settings.Engine.Reorder,
	}
}

// Operations lists the operations held by the registry.
func (s *CalculatorService) Operations() []domain.Operation {
	return s.registry.Operations()
}

// Evaluate parses, validates and computes a single record.
func (s *CalculatorService) Evaluate(_ context.Context, record domain.Record) domain.Evaluation {
	ev := domain.Evaluation{
		Index:     record.Index,
		Operation: record.Operation,
	}

	first, firstErr := polynomial.Parse(record.First)
	if firstErr != nil {
		ev.Messages = append(ev.Messages, (&domain.OperandError{Operand: domain.OperandFirst, Cause: firstErr}).Error())
		logger.Debug("Record %d: first operand: %v", record.Index, firstErr)
	}
	ev.FirstValid = firstErr == nil

	second, secondErr := polynomial.Parse(record.Second)
	if secondErr != nil {
		ev.Messages = append(ev.Messages, (&domain.OperandError{Operand: domain.OperandSecond, Cause: secondErr}).Error())
		logger.Debug("Record %d: second operand: %v", record.Index, secondErr)
	}
	ev.SecondValid = secondErr == nil

	operator, opErr := s.registry.Lookup(record.Operation)
	ev.OperationValid = opErr == nil
	if opErr != nil {
		logger.Debug("Record %d: %v", record.Index, opErr)
		if ev.FirstValid && ev.SecondValid {
			ev.Messages = append(ev.Messages, domain.MessageInvalidOperation)
		} else {
			ev.Messages = append(ev.Messages, domain.MessageAlsoInvalidOperation)
		}
	}

	if !ev.Valid() {
		return ev
	}

	first = s.operands.Process(first)
	second = s.operands.Process(second)

	// Operand strings are captured before the engine consumes the lists.
	ev.First = s.formatter.Format(first)
	ev.Second = s.formatter.Format(second)
	ev.Symbol = operator.Operation().Symbol()

	engine := polynomial.NewEngine(first, second)
	if s.reorder && engine.LargerFirst() {
		firstCount, secondCount := engine.Counts()
		logger.Debug("Record %d: operands swapped (%d terms before %d)", record.Index, firstCount, secondCount)
	}

	result, err := operator.Apply(engine)
	if err != nil {
		logger.Warn("Record %d: %v", record.Index, err)
		if errors.Is(err, domain.ErrExponentOverflow) {
			ev.Messages = append(ev.Messages, domain.MessageExponentOverflow)
		} else {
			ev.Messages = append(ev.Messages, err.Error())
		}
		return ev
	}

	result = s.results.Process(result)
	ev.Computed = true
	ev.Result = s.formatter.Format(result)
	ev.Canonical = polynomial.Encode(result)
	ev.Terms = result.Values()

	return ev
}

// Run reads records from src until it is exhausted and writes each
// evaluation to sink in input order.
//
// Up to opts.Workers records are evaluated concurrently. A source that ends
// part way through a record is reported to the sink and ends the run without
// an error.
func (s *CalculatorService) Run(
	ctx context.Context,
	src driven.RecordSource,
	sink driven.ResultSink,
	opts domain.RunOptions,
) (*domain.RunSummary, error) {
	workers := max(opts.Workers, 1)
	summary := &domain.RunSummary{RunID: uuid.NewString()}

	logger.Section("Polynomial Run")
	defer logger.Elapsed("Run "+summary.RunID, time.Now())
	logger.Debug("Run ID: %s, workers: %d", summary.RunID, workers)

	for {
		batch, partial, err := s.readBatch(ctx, src, summary.Records, workers)
		if err != nil {
			return summary, err
		}

		evaluations, err := s.evaluateBatch(ctx, batch, workers)
		if err != nil {
			return summary, err
		}

		for i := range evaluations {
			evaluations[i].RunID = summary.RunID
			if err := sink.Write(ctx, evaluations[i]); err != nil {
				return summary, fmt.Errorf("write record %d: %w", evaluations[i].Index, err)
			}
			summary.Records++
			if evaluations[i].Computed {
				summary.Computed++
			} else {
				summary.Rejected++
			}
		}

		if partial > 0 {
			logger.Warn("Source ended after %d of %d lines of record %d", partial, linesPerRecord, summary.Records)
			summary.Incomplete = true
			if err := sink.Incomplete(ctx, partial); err != nil {
				return summary, fmt.Errorf("report incomplete record: %w", err)
			}
			break
		}
		if len(batch) < workers {
			break
		}
	}

	logger.Info("Run %s: %d records, %d computed, %d rejected",
		summary.RunID, summary.Records, summary.Computed, summary.Rejected)

	return summary, nil
}

// readBatch reads up to size complete records. partial is the number of
// lines read for a trailing record the source could not complete.
func (s *CalculatorService) readBatch(
	ctx context.Context,
	src driven.RecordSource,
	offset, size int,
) (batch []domain.Record, partial int, err error) {
	batch = make([]domain.Record, 0, size)
	for len(batch) < size {
		var lines [linesPerRecord]string
		n := 0
		for n < linesPerRecord {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
			line, err := src.Next(ctx)
			if errors.Is(err, io.EOF) {
				return batch, n, nil
			}
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
			}
			lines[n] = line
			n++
		}
		batch = append(batch, domain.Record{
			Index:     offset + len(batch),
			First:     lines[0],
			Second:    lines[1],
			Operation: lines[2],
		})
	}
	return batch, 0, nil
}

// evaluateBatch evaluates records concurrently and returns evaluations in
// the same order as batch.
func (s *CalculatorService) evaluateBatch(
	ctx context.Context,
	batch []domain.Record,
	workers int,
) ([]domain.Evaluation, error) {
	out := make([]domain.Evaluation, len(batch))
	if len(batch) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.Evaluate(gctx, batch[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
