package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

// For mocking in tests
var lookPath = exec.LookPath

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are available",
	Long: `Verifies that the delegated test engine and the container runtime can be
found on PATH. The engine is required for every run; the container runtime is
only needed for the docker venue and is reported as a warning when absent.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := "pytest"
	if len(cfg.Engine.Command) > 0 {
		engine = cfg.Engine.Command[0]
	}

	healthy := true

	if path, err := lookPath(engine); err == nil {
		fmt.Printf("✅ %s (%s)\n", engine, path)
	} else {
		fmt.Printf("❌ %s not found on PATH\n", engine)
		healthy = false
	}

	if path, err := lookPath("docker"); err == nil {
		fmt.Printf("✅ docker (%s)\n", path)
	} else {
		fmt.Printf("⚠️  docker not found on PATH (required only for --env docker)\n")
	}

	if !healthy {
		return fmt.Errorf("environment check failed: delegated engine %q is not available", engine)
	}
	return nil
}
