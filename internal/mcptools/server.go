package mcptools

import (
	"testctl/internal/config"
	"testctl/internal/run"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates the MCP server exposing the testctl tools.
func NewServer(version string, cfg config.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"testctl",
		version,
		server.WithToolCapabilities(true),
	)

	handlers := NewHandlers(cfg, run.NewEngineExecutor())
	for _, tool := range Definitions() {
		switch tool.Name {
		case "run_tests":
			s.AddTool(tool, handlers.HandleRunTests)
		case "list_categories":
			s.AddTool(tool, handlers.HandleListCategories)
		case "doctor":
			s.AddTool(tool, handlers.HandleDoctor)
		}
	}

	return s
}

// ServeStdio serves the MCP protocol over stdin/stdout until the client
// disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
