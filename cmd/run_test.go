package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"testctl/internal/artifacts"
	"testctl/internal/config"
	"testctl/internal/reporting"
	"testctl/internal/run"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyExecutor records invocations and returns a canned result.
type spyExecutor struct {
	calls  []run.Invocation
	result run.RunResult
	err    error
}

func (s *spyExecutor) Execute(ctx context.Context, inv run.Invocation) (run.RunResult, error) {
	s.calls = append(s.calls, inv)
	return s.result, s.err
}

// spyReporter captures progress and final lines for assertions.
type spyReporter struct {
	progress []string
	finals   []string
	statuses []reporting.Status
}

func (r *spyReporter) Progress(format string, args ...interface{}) {
	r.progress = append(r.progress, fmt.Sprintf(format, args...))
}

func (r *spyReporter) Final(status reporting.Status, format string, args ...interface{}) {
	r.statuses = append(r.statuses, status)
	r.finals = append(r.finals, fmt.Sprintf(format, args...))
}

// withRunMocks swaps the run command's collaborators for test doubles and
// restores them on cleanup. It returns the reporter and the captured exit
// codes.
func withRunMocks(t *testing.T, executor run.Executor) (*spyReporter, *[]int) {
	t.Helper()

	origExecutor := newExecutor
	origConfig := loadConfig
	origReporter := newReporter
	origExit := exitFunc
	t.Cleanup(func() {
		newExecutor = origExecutor
		loadConfig = origConfig
		newReporter = origReporter
		exitFunc = origExit
	})

	reporter := &spyReporter{}
	var exitCodes []int

	newExecutor = func() run.Executor { return executor }
	loadConfig = func() (config.Config, error) { return config.DefaultConfig(), nil }
	newReporter = func(verbose bool) reporting.Reporter { return reporter }
	exitFunc = func(code int) { exitCodes = append(exitCodes, code) }

	return reporter, &exitCodes
}

// resetRunFlags puts the run command's flag variables back to their defaults
// and restores the previous values on cleanup.
func resetRunFlags(t *testing.T) {
	t.Helper()

	origType, origEnv, origBrowser := runType, runEnv, runBrowser
	origHeaded, origParallel, origWorkers := runHeaded, runParallel, runWorkers
	origCoverage, origSlow, origVerbose := runCoverage, runSlow, runVerbose
	origOutput, origClean := runOutput, runClean
	t.Cleanup(func() {
		runType, runEnv, runBrowser = origType, origEnv, origBrowser
		runHeaded, runParallel, runWorkers = origHeaded, origParallel, origWorkers
		runCoverage, runSlow, runVerbose = origCoverage, origSlow, origVerbose
		runOutput, runClean = origOutput, origClean
	})

	runType, runEnv, runBrowser = "all", "local", "chromium"
	runHeaded, runParallel, runWorkers = false, false, 0
	runCoverage, runSlow, runVerbose = false, false, false
	runOutput, runClean = "test-results", false
}

func TestRunRun_HappyPath(t *testing.T) {
	t.Chdir(t.TempDir())
	resetRunFlags(t)

	executor := &spyExecutor{result: run.RunResult{ExitCode: 0}}
	reporter, exitCodes := withRunMocks(t, executor)

	runType = "smoke"
	runCmd.SetContext(context.Background())

	err := runRun(runCmd, nil)
	require.NoError(t, err)

	require.Len(t, executor.calls, 1)
	assert.Contains(t, executor.calls[0].Args, "smoke")

	require.Len(t, reporter.statuses, 1, "exactly one final line")
	assert.Equal(t, reporting.StatusSuccess, reporter.statuses[0])
	assert.Empty(t, *exitCodes, "a passing run must not force an exit code")
}

func TestRunRun_InvalidCategory(t *testing.T) {
	resetRunFlags(t)

	executor := &spyExecutor{}
	reporter, exitCodes := withRunMocks(t, executor)

	runType = "bogus"
	runCmd.SetContext(context.Background())

	err := runRun(runCmd, nil)
	require.Error(t, err)

	var parseErr *run.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "bogus")

	assert.Empty(t, executor.calls, "nothing must execute on a parse failure")
	require.Len(t, reporter.statuses, 1)
	assert.Equal(t, reporting.StatusError, reporter.statuses[0])
	assert.Empty(t, *exitCodes)
}

func TestRunRun_EngineFailurePassesExitCodeThrough(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)
	resetRunFlags(t)

	executor := &spyExecutor{
		result: run.RunResult{ExitCode: 1},
		err:    &run.DelegatedFailure{ExitCode: 1},
	}
	reporter, exitCodes := withRunMocks(t, executor)

	runType = "api"
	runCoverage = true
	runCmd.SetContext(context.Background())

	err := runRun(runCmd, nil)
	require.NoError(t, err, "a delegated failure is reported via the exit code, not an error return")

	require.Len(t, executor.calls, 1)
	assert.Contains(t, executor.calls[0].Args, "--cov=src")

	require.Len(t, reporter.statuses, 1)
	assert.Equal(t, reporting.StatusError, reporter.statuses[0])
	assert.Contains(t, reporter.finals[0], "exit code 1")

	assert.Equal(t, []int{1}, *exitCodes)

	// Artifacts survive the failure
	for _, sub := range artifacts.Subdirs() {
		assert.DirExists(t, filepath.Join(tempDir, "test-results", sub))
	}
}

func TestParseRunRequest(t *testing.T) {
	resetRunFlags(t)

	runType = "integration"
	runEnv = "docker"
	runBrowser = "webkit"
	runParallel = true
	runWorkers = 8
	runOutput = "ci-artifacts"

	req, err := parseRunRequest()
	require.NoError(t, err)

	assert.Equal(t, run.CategoryIntegration, req.Category)
	assert.Equal(t, run.VenueDocker, req.Venue)
	assert.Equal(t, run.Browser("webkit"), req.Browser)
	assert.True(t, req.Parallel)
	assert.Equal(t, 8, req.Workers)
	assert.Equal(t, "ci-artifacts", req.OutputDir)
}

func TestParseRunRequest_CaseSensitiveCategory(t *testing.T) {
	resetRunFlags(t)

	for _, value := range []string{"API", "Smoke", "ALL"} {
		runType = value
		_, err := parseRunRequest()
		require.Error(t, err, "category %q must be rejected", value)
	}
}

func TestParseRunRequest_BrowserPassesThroughUnvalidated(t *testing.T) {
	resetRunFlags(t)

	runBrowser = "netscape-navigator"
	req, err := parseRunRequest()
	require.NoError(t, err)
	assert.Equal(t, run.Browser("netscape-navigator"), req.Browser)
}
