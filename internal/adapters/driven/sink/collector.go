package sink

import (
	"context"
	"sync"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// Ensure Collector implements the interface.
var _ driven.ResultSink = (*Collector)(nil)

// Collector keeps evaluations in memory.
type Collector struct {
	mu          sync.Mutex
	evaluations []domain.Evaluation
	incomplete  int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Write appends ev.
func (c *Collector) Write(_ context.Context, ev domain.Evaluation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evaluations = append(c.evaluations, ev)
	return nil
}

// Incomplete records how many lines the trailing record had.
func (c *Collector) Incomplete(_ context.Context, lines int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.incomplete = lines
	return nil
}

// Evaluations returns a copy of everything written so far.
func (c *Collector) Evaluations() []domain.Evaluation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Evaluation, len(c.evaluations))
	copy(out, c.evaluations)
	return out
}

// IncompleteLines returns the line count of an incomplete trailing record,
// or 0 if the source ended cleanly.
func (c *Collector) IncompleteLines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.incomplete
}
