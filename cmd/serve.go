package cmd

import (
	"fmt"

	"testctl/internal/mcptools"
	"testctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve testctl tools over MCP (stdio transport)",
		Long: `Runs testctl as an MCP server using stdio transport, exposing the
run_tests, list_categories and doctor tools.

This mode is designed for integration with AI assistants like Claude or
Cursor: configure the server in the assistant's MCP settings and the agent
can drive test runs directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			server := mcptools.NewServer(rootCmd.Version, cfg)
			logging.Info("Serve", "Starting testctl MCP server (stdio transport)...")

			if err := mcptools.ServeStdio(server); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}
}
