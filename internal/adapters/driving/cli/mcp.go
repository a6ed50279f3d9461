package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can evaluate
polynomial records.

Tools:
  evaluate  - evaluate one record
  run       - evaluate multi-line input, three lines per record

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, for example to test with MCP Inspector.

Examples:
  polycalc mcp serve
  polycalc mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "polycalc": {
        "command": "/path/to/polycalc",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	addEngineFlags(mcpServeCmd)
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	calc, err := newCalculator(settings)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Calculator: calc,
		Settings:   settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
