package cli

import (
	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server for editor integration",
	Long: `Run dockergen as a Model Context Protocol (MCP) server.

Editors and coding assistants call detection, entry point resolution and
generation as tools. The server communicates via stdin/stdout using
newline-delimited JSON-RPC 2.0; logs go to stderr.

Tools:
  dockergen_detect      Detect the project type of a directory
  dockergen_entrypoint  Resolve the default entry point
  dockergen_generate    Generate (or dry-run) a Dockerfile

Example editor configuration:
{
  "mcpServers": {
    "dockergen": {
      "command": "dockergen",
      "args": ["serve"]
    }
  }
}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	server := mcp.NewServer(newService(),
		mcp.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
		mcp.WithLogger(logger),
		mcp.WithVersion(Version))

	return server.Run(ctx)
}
