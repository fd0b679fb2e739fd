package cli

import (
	mcpadapter "github.com/edgecheck/edgecheck/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the edgecheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start edgecheck MCP server (stdio)",
		Long:  "Start the edgecheck MCP server using stdio transport. This allows AI coding assistants to run integration reports and revision comparisons.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workspace == "" {
				workspace = "."
			}
			s := mcpadapter.NewEdgecheckMCPServer(workspace)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace path (defaults to current working directory)")

	return cmd
}
