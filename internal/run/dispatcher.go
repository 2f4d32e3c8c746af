// Package run implements the dispatch pipeline: a RunRequest is resolved
// into exactly one delegated engine invocation, executed as a child process,
// and mapped to a single observed result. The pipeline is strictly
// sequential (parse -> resolve -> execute -> report) and carries no state
// across invocations; a failed run is never retried by the dispatcher.
package run

import (
	"context"

	"testctl/internal/artifacts"
	"testctl/internal/config"
	"testctl/pkg/logging"
)

// Dispatch resolves and executes one request. The artifact layout is
// guaranteed to exist before the child starts and is never deleted here,
// even on failure: artifacts must survive for postmortem inspection.
//
// The resolved Invocation is returned alongside the result so callers can
// record exactly what was executed without resolving a second time. The
// returned RunResult is valid whenever execution reached the child; the
// error then carries the classification (DelegatedFailure for a nonzero
// engine exit, EnvironmentError when the spawn never happened).
func Dispatch(ctx context.Context, req RunRequest, cfg config.Config, executor Executor) (Invocation, RunResult, error) {
	inv, err := Resolve(req, cfg)
	if err != nil {
		return Invocation{}, RunResult{}, err
	}

	ws := artifacts.NewWorkspace(req.OutputDir)
	if req.Clean {
		if err := ws.Clean(); err != nil {
			return inv, RunResult{}, err
		}
	}
	if err := ws.EnsureLayout(); err != nil {
		return inv, RunResult{}, err
	}

	logging.Info("Dispatcher", "Delegating to %s (%d args, venue: %s)",
		inv.Program, len(inv.Args), inv.Venue)

	result, err := executor.Execute(ctx, inv)
	return inv, result, err
}
