package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/sink"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/source"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// maxRunWorkers caps the concurrency a client may request.
const maxRunWorkers = 8

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	First     string `json:"first" jsonschema:"first polynomial as coefficient/exponent pairs, e.g. '2 2 3 1' for 2x^2 + 3x"`
	Second    string `json:"second" jsonschema:"second polynomial as coefficient/exponent pairs"`
	Operation string `json:"operation" jsonschema:"one of add, subtract or multiply"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Evaluation domain.Evaluation `json:"evaluation"`
}

// RunInput is the input schema for the run tool.
type RunInput struct {
	Text    string `json:"text" jsonschema:"records of three lines each: first polynomial, second polynomial, operation"`
	Workers int    `json:"workers,omitempty" jsonschema:"records evaluated concurrently (default 1)"`
}

// RunOutput is the output schema for the run tool.
type RunOutput struct {
	Evaluations []domain.Evaluation `json:"evaluations"`
	Summary     domain.RunSummary   `json:"summary"`
	Message     string              `json:"message,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Add, subtract or multiply two single-variable polynomials",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run",
		Description: "Evaluate a batch of three-line polynomial records",
	}, s.handleRun)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	ev := s.ports.Calculator.Evaluate(ctx, domain.Record{
		First:     input.First,
		Second:    input.Second,
		Operation: input.Operation,
	})
	return nil, EvaluateOutput{Evaluation: ev}, nil
}

// handleRun handles the run tool invocation.
func (s *Server) handleRun(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunInput,
) (*mcp.CallToolResult, RunOutput, error) {
	workers := min(max(input.Workers, 1), maxRunWorkers)

	collector := sink.NewCollector()
	summary, err := s.ports.Calculator.Run(ctx, source.NewStringReader(input.Text), collector,
		domain.RunOptions{Workers: workers})
	if err != nil {
		return nil, RunOutput{}, fmt.Errorf("run: %w", err)
	}

	output := RunOutput{
		Evaluations: collector.Evaluations(),
		Summary:     *summary,
	}
	if output.Evaluations == nil {
		output.Evaluations = []domain.Evaluation{}
	}
	if summary.Incomplete {
		output.Message = domain.MessageIncompleteRecord
	}

	return nil, output, nil
}
