// Package mcptools exposes the dispatcher over the Model Context Protocol
// so agent runtimes (Claude, Cursor) can drive test runs through stdio.
package mcptools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Definitions returns the MCP tools offered by testctl serve.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("run_tests",
			mcp.WithDescription("Run the browser test suite and return the run summary"),
			mcp.WithString("category",
				mcp.Description("Test category filter"),
				mcp.Enum("all", "api", "ui", "integration", "smoke"),
			),
			mcp.WithString("browser",
				mcp.Description("Browser selector passed through to the engine"),
				mcp.Enum("chromium", "firefox", "webkit"),
			),
			mcp.WithString("env",
				mcp.Description("Execution venue"),
				mcp.Enum("local", "docker"),
			),
			mcp.WithBoolean("parallel",
				mcp.Description("Ask the engine to parallelize"),
			),
			mcp.WithBoolean("coverage",
				mcp.Description("Enable coverage instrumentation and threshold enforcement"),
			),
			mcp.WithBoolean("headed",
				mcp.Description("Disable headless mode"),
			),
			mcp.WithString("output",
				mcp.Description("Artifact root directory (default: test-results)"),
			),
		),
		mcp.NewTool("list_categories",
			mcp.WithDescription("List the valid test category filters"),
		),
		mcp.NewTool("doctor",
			mcp.WithDescription("Check that the delegated engine and container runtime are available"),
		),
	}
}
