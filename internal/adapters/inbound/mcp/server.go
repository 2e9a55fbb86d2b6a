package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewKubegradeMCPServer creates a new MCP server with the kubegrade tools
// registered. The challengeDir is the root of the challenge repository
// holding the k8s manifest directory.
func NewKubegradeMCPServer(challengeDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"kubegrade",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, challengeDir)

	return s
}
