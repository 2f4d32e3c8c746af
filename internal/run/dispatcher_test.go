package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"testctl/internal/artifacts"
	"testctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyExecutor records invocations and returns a canned result.
type spyExecutor struct {
	calls        []Invocation
	result       RunResult
	err          error
	layoutAtCall bool
}

func (s *spyExecutor) Execute(ctx context.Context, inv Invocation) (RunResult, error) {
	s.calls = append(s.calls, inv)
	// Record whether the artifact layout existed when the child would start
	s.layoutAtCall = true
	for _, sub := range artifacts.Subdirs() {
		dir := filepath.Join("test-results", sub)
		if _, err := os.Stat(dir); err != nil {
			s.layoutAtCall = false
		}
	}
	return s.result, s.err
}

func TestDispatch_ExecutesResolvedInvocation(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	req := DefaultRequest()
	req.Category = CategorySmoke
	spy := &spyExecutor{result: RunResult{ExitCode: 0}}

	inv, result, err := Dispatch(context.Background(), req, config.DefaultConfig(), spy)
	require.NoError(t, err)
	assert.True(t, result.Success())

	require.Len(t, spy.calls, 1)
	assert.Equal(t, "python3", spy.calls[0].Program)
	assert.Contains(t, spy.calls[0].Args, "smoke")

	// The returned invocation is the one that was executed
	assert.Equal(t, spy.calls[0], inv)
}

func TestDispatch_LayoutExistsBeforeExecution(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	spy := &spyExecutor{result: RunResult{ExitCode: 0}}

	_, _, err := Dispatch(context.Background(), DefaultRequest(), config.DefaultConfig(), spy)
	require.NoError(t, err)

	assert.True(t, spy.layoutAtCall, "artifact layout must exist before the child starts")
	for _, sub := range artifacts.Subdirs() {
		assert.DirExists(t, filepath.Join(tempDir, "test-results", sub))
	}
}

func TestDispatch_ArtifactsSurviveFailure(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	// Pre-seed an artifact so we can verify nothing is purged on failure
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "test-results", "screenshots"), 0755))
	seeded := filepath.Join(tempDir, "test-results", "screenshots", "failure.png")
	require.NoError(t, os.WriteFile(seeded, []byte("png"), 0644))

	spy := &spyExecutor{
		result: RunResult{ExitCode: 1},
		err:    &DelegatedFailure{ExitCode: 1},
	}

	_, result, err := Dispatch(context.Background(), DefaultRequest(), config.DefaultConfig(), spy)
	require.Error(t, err)
	assert.Equal(t, 1, result.ExitCode)

	assert.FileExists(t, seeded, "artifacts must survive a failed run")
	for _, sub := range artifacts.Subdirs() {
		assert.DirExists(t, filepath.Join(tempDir, "test-results", sub))
	}
}

func TestDispatch_CleanPurgesBeforeRun(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	stale := filepath.Join(tempDir, "test-results", "reports", "old.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0644))

	req := DefaultRequest()
	req.Clean = true
	spy := &spyExecutor{result: RunResult{ExitCode: 0}}

	_, _, err := Dispatch(context.Background(), req, config.DefaultConfig(), spy)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	// The layout is recreated after the purge
	for _, sub := range artifacts.Subdirs() {
		assert.DirExists(t, filepath.Join(tempDir, "test-results", sub))
	}
}

func TestDispatch_ResolveErrorSkipsExecution(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Engine.Command = nil
	spy := &spyExecutor{}

	_, _, err := Dispatch(context.Background(), DefaultRequest(), cfg, spy)
	require.Error(t, err)
	assert.Empty(t, spy.calls, "execution must not be reached when resolution fails")
}

func TestDispatch_ExitCodePassthrough(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	for _, code := range []int{1, 2, 5, 137} {
		spy := &spyExecutor{
			result: RunResult{ExitCode: code},
			err:    &DelegatedFailure{ExitCode: code},
		}

		_, result, err := Dispatch(context.Background(), DefaultRequest(), config.DefaultConfig(), spy)
		require.Error(t, err)
		assert.Equal(t, code, result.ExitCode, "exit code must pass through unchanged")
	}
}
