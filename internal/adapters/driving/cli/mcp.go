package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/mcp"
	"github.com/workly-labs/workly-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes tools to list and search jobs, manage contracts and read
reports for the signed-in user. Every tool call checks the session first.

By default, the server communicates over stdio using JSON-RPC and can be
used with any MCP-compatible assistant.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  workly mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  workly mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "workly": {
        "command": "/path/to/workly",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	PreRunE: requireSession,
	RunE:    runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Session:   sessionManager,
		Jobs:      jobService,
		Contracts: contractService,
		Reports:   reportService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if err := sessionManager.Watch(cmd.Context()); err != nil {
		logger.Warn("watching session store: %v", err)
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
