package cmd

import (
	"fmt"

	"testctl/internal/artifacts"

	"github.com/spf13/cobra"
)

var cleanOutput string

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Purge the artifact root",
	Long: `Removes the artifact root directory and everything beneath it without
running any tests. Equivalent to the --clean flag of the run command.`,
	RunE: runCleanCmd,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "test-results", "Artifact root directory")
}

func runCleanCmd(cmd *cobra.Command, args []string) error {
	ws := artifacts.NewWorkspace(cleanOutput)
	if err := ws.Clean(); err != nil {
		return err
	}
	fmt.Printf("🧹 Removed %s\n", cleanOutput)
	return nil
}
