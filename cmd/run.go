package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testctl/internal/artifacts"
	"testctl/internal/config"
	"testctl/internal/reporting"
	"testctl/internal/run"
	"testctl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	runType     string
	runEnv      string
	runBrowser  string
	runHeaded   bool
	runParallel bool
	runWorkers  int
	runCoverage bool
	runSlow     bool
	runVerbose  bool
	runOutput   string
	runClean    bool
)

// For mocking in tests
var newExecutor = func() run.Executor { return run.NewEngineExecutor() }
var loadConfig = config.LoadConfig
var newReporter = func(verbose bool) reporting.Reporter { return reporting.NewConsoleReporter(verbose) }
var exitFunc = os.Exit

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the browser test suite through the delegated engine",
	Long: `The run command resolves the requested testing intent into one concrete
engine invocation and executes it as a child process.

Test categories:
- all:         every test (no filter)
- api:         API tests only
- ui:          UI tests only
- integration: integration tests only
- smoke:       smoke tests only

Venues:
- local:  run the engine as a direct child process
- docker: run the engine inside the configured container image

The artifact root and its screenshots/videos/traces/reports subdirectories
are created before execution and are never deleted afterwards, even when the
run fails. The engine's exit code is propagated unchanged so CI systems can
distinguish failure classes the engine itself defines.

Example usage:
  testctl run                          # Run all tests locally
  testctl run --type smoke --parallel  # Smoke tests, engine-side parallelism
  testctl run --type api --coverage    # API tests with coverage enforcement
  testctl run --env docker             # Containerized venue
  testctl run --browser firefox --headed
  testctl run --clean --output ci-artifacts`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Test selection and venue
	runCmd.Flags().StringVar(&runType, "type", "all", "Test category (all, api, ui, integration, smoke)")
	runCmd.Flags().StringVar(&runEnv, "env", "local", "Execution venue (local, docker)")
	runCmd.Flags().StringVar(&runBrowser, "browser", "chromium", "Browser selector (chromium, firefox, webkit)")
	runCmd.Flags().BoolVar(&runSlow, "slow", false, "Narrow the selection to slow tests")

	// Execution control
	runCmd.Flags().BoolVar(&runHeaded, "headed", false, "Disable headless mode")
	runCmd.Flags().BoolVar(&runParallel, "parallel", false, "Enable engine-side parallelism")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Parallel worker count (default from configuration)")
	runCmd.Flags().BoolVar(&runCoverage, "coverage", false, "Enable coverage with minimum threshold enforcement")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Full tracebacks and progress output")

	// Artifacts
	runCmd.Flags().StringVar(&runOutput, "output", "test-results", "Artifact root directory")
	runCmd.Flags().BoolVar(&runClean, "clean", false, "Purge the artifact root before running")

	_ = runCmd.RegisterFlagCompletionFunc("type", completeTypeFlag)
	_ = runCmd.RegisterFlagCompletionFunc("env", completeEnvFlag)
	_ = runCmd.RegisterFlagCompletionFunc("browser", completeBrowserFlag)
}

// completeTypeFlag provides shell completion for the type flag
func completeTypeFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"all", "api", "ui", "integration", "smoke"}, cobra.ShellCompDirectiveDefault
}

// completeEnvFlag provides shell completion for the env flag
func completeEnvFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"local", "docker"}, cobra.ShellCompDirectiveDefault
}

// completeBrowserFlag provides shell completion for the browser flag
func completeBrowserFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"chromium", "firefox", "webkit"}, cobra.ShellCompDirectiveDefault
}

// parseRunRequest converts the parsed flags into an immutable RunRequest.
// It is a pure translation: no side effects, nothing is executed on error.
func parseRunRequest() (run.RunRequest, error) {
	req := run.DefaultRequest()

	category, err := run.ParseCategory(runType)
	if err != nil {
		return run.RunRequest{}, err
	}
	req.Category = category

	venue, err := run.ParseVenue(runEnv)
	if err != nil {
		return run.RunRequest{}, err
	}
	req.Venue = venue

	// The browser selector is passed through unvalidated; the engine owns
	// rejection of browsers it cannot launch.
	req.Browser = run.Browser(runBrowser)

	req.Headed = runHeaded
	req.Parallel = runParallel
	if runWorkers > 0 {
		req.Workers = runWorkers
	}
	req.Coverage = runCoverage
	req.Slow = runSlow
	req.Verbose = runVerbose
	req.OutputDir = runOutput
	req.Clean = runClean

	return req, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	reporter := newReporter(runVerbose)

	req, err := parseRunRequest()
	if err != nil {
		reporter.Final(reporting.StatusError, "%v", err)
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		reporter.Final(reporting.StatusError, "Failed to load configuration: %v", err)
		return err
	}

	// Create context with signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Forward interrupts into the pipeline so the child engine is
	// terminated rather than orphaned.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	reporter.Progress("Category: %s, venue: %s, browser: %s", req.Category, req.Venue, req.Browser)

	start := time.Now()
	inv, result, runErr := run.Dispatch(ctx, req, cfg, newExecutor())

	if runErr != nil {
		var delegated *run.DelegatedFailure
		if errors.As(runErr, &delegated) {
			writeSummary(start, req, inv, result, reporting.StatusError)
			reporter.Final(reporting.StatusError, "Tests failed with exit code %d after %s (artifacts: %s)",
				delegated.ExitCode, result.WallTime.Round(time.Millisecond), req.OutputDir)
			// The engine's exit code passes through unchanged.
			exitFunc(delegated.ExitCode)
			return nil
		}
		reporter.Final(reporting.StatusError, "%v", runErr)
		return runErr
	}

	writeSummary(start, req, inv, result, reporting.StatusSuccess)
	reporter.Final(reporting.StatusSuccess, "All tests passed in %s (artifacts: %s)",
		result.WallTime.Round(time.Millisecond), req.OutputDir)
	return nil
}

// writeSummary records the machine-readable run summary for the invocation
// Dispatch executed. A write failure is logged, not surfaced: the classified
// line stays the single final output.
func writeSummary(start time.Time, req run.RunRequest, inv run.Invocation, result run.RunResult, status reporting.Status) {
	ws := artifacts.NewWorkspace(req.OutputDir)
	summary := reporting.NewRunSummary(start, req, inv, result, status)
	if path, err := reporting.WriteSummary(ws, summary); err != nil {
		logging.Warn("Run", "Failed to write run summary: %v", err)
	} else {
		logging.Debug("Run", "Run summary saved to %s", path)
	}
}
