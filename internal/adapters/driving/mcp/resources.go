package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for polycalc resources.
	uriScheme = "polycalc://"
)

// operationInfo describes one supported operation.
type operationInfo struct {
	Keyword string `json:"keyword"`
	Symbol  string `json:"symbol"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "operations",
		Name:        "operations",
		Description: "Operation keywords accepted on the third line of a record",
		MIMEType:    "application/json",
	}, s.handleOperationsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active formatting and engine settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleOperationsResource lists the supported operations.
func (s *Server) handleOperationsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ops := s.ports.Calculator.Operations()
	infos := make([]operationInfo, len(ops))
	for i, op := range ops {
		infos[i] = operationInfo{Keyword: op.String(), Symbol: op.Symbol()}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleSettingsResource returns the active settings, or defaults when no
// settings service is configured.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = *current
	}

	return jsonResource(req.Params.URI, settingsView(settings))
}

// settingsView flattens settings to the same keys the config file uses.
func settingsView(s domain.AppSettings) map[string]any {
	return map[string]any{
		"format.precision":      s.Format.Precision,
		"engine.reorder":        s.Engine.Reorder,
		"engine.prune_zero":     s.Engine.PruneZero,
		"run.workers":           s.Run.Workers,
		"run.output":            s.Run.Output.String(),
		"watch.min_interval_ms": s.Watch.MinInterval.Milliseconds(),
	}
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
