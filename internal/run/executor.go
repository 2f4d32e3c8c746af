package run

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"
	"time"

	"testctl/pkg/logging"
)

// Executor runs one resolved invocation to completion.
type Executor interface {
	Execute(ctx context.Context, inv Invocation) (RunResult, error)
}

// For mocking in tests
var execLookPath = exec.LookPath

// EngineExecutor spawns the delegated engine as a child process and blocks
// until it terminates. It imposes no timeout of its own; the engine and the
// surrounding CI layer own timeout policy.
type EngineExecutor struct{}

// NewEngineExecutor creates the production executor.
func NewEngineExecutor() *EngineExecutor {
	return &EngineExecutor{}
}

// Preflight verifies that the invocation's program can be found before any
// process is spawned.
func (e *EngineExecutor) Preflight(inv Invocation) error {
	if _, err := execLookPath(inv.Program); err != nil {
		return &EnvironmentError{Tool: inv.Program, Err: err}
	}
	return nil
}

// Execute spawns the child with the resolved argument list and the injected
// environment, forwards cancellation as SIGTERM, and reports the child's
// exit code verbatim. The engine's output streams pass through untouched.
func (e *EngineExecutor) Execute(ctx context.Context, inv Invocation) (RunResult, error) {
	if err := e.Preflight(inv); err != nil {
		return RunResult{}, err
	}

	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), inv.Env...)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return RunResult{}, &EnvironmentError{Tool: inv.Program, Err: err}
	}

	logging.Debug("Executor", "Started %s (PID: %d)", inv.Program, cmd.Process.Pid)

	// Forward an operator interrupt to the child so no orphaned engine
	// process is left running. The child owns its own shutdown from there.
	waitDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			if cmd.Process != nil {
				if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
					logging.Warn("Executor", "Failed to forward SIGTERM: %v", err)
				}
			}
		case <-waitDone:
		}
	}()

	err := cmd.Wait()
	close(waitDone)
	result := RunResult{WallTime: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &DelegatedFailure{ExitCode: result.ExitCode}
		}
		return result, err
	}

	return result, nil
}
