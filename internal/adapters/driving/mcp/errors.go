// Package mcp provides an MCP (Model Context Protocol) server adapter for
// polycalc. It lets AI assistants evaluate polynomial records through the
// calculator service.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
