// Package sink provides driven.ResultSink implementations.
//
// Text prints the classic equation layout, JSON and YAML emit one
// structured document per record, and Collector keeps evaluations in memory
// for the TUI and MCP adapters.
package sink
