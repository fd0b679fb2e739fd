package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewEdgecheckMCPServer creates a new MCP server with the edgecheck tools
// and resources registered. The workspacePath is the directory holding the
// tool configuration and resource tree.
func NewEdgecheckMCPServer(workspacePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"edgecheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workspacePath)
	registerResources(s, workspacePath)

	return s
}
