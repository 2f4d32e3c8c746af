package run

import (
	"fmt"

	"testctl/internal/config"
)

// Resolve builds the concrete engine invocation for a request. It is pure
// and deterministic: an identical request and configuration always yield an
// identical Invocation, so CI logs stay reproducible.
//
// Parallelism is honored for every category, including smoke: smoke tests
// are assumed fast and parallel-safe.
func Resolve(req RunRequest, cfg config.Config) (Invocation, error) {
	if len(cfg.Engine.Command) == 0 {
		return Invocation{}, &ResolutionError{Reason: "engine command is empty"}
	}

	program := cfg.Engine.Command[0]
	args := append([]string{}, cfg.Engine.Command[1:]...)

	// Category filter. "all" applies no marker clause; --slow narrows the
	// selection to the slow marker, combined with the category when one is
	// set.
	if marker := markerClause(req); marker != "" {
		args = append(args, "-m", marker)
	}

	// The engine is always asked for per-test output; --verbose only widens
	// the traceback format.
	args = append(args, "-v")
	if req.Verbose {
		args = append(args, "--tb=long")
	} else {
		args = append(args, "--tb=short")
	}

	if req.Parallel {
		workers := req.Workers
		if workers <= 0 {
			workers = cfg.Engine.Workers
		}
		args = append(args, "-n", fmt.Sprintf("%d", workers))
	}

	if req.Coverage {
		args = append(args,
			fmt.Sprintf("--cov=%s", cfg.Coverage.Source),
			"--cov-report=html",
			"--cov-report=term-missing",
			fmt.Sprintf("--cov-fail-under=%d", cfg.Coverage.Threshold),
		)
	}

	inv := Invocation{
		Program: program,
		Args:    args,
		Env:     childEnv(req, cfg),
		Venue:   req.Venue,
	}

	if req.Venue == VenueDocker {
		return containerize(inv, req, cfg)
	}
	return inv, nil
}

// markerClause returns the marker expression for the request, or "" when no
// filter applies.
func markerClause(req RunRequest) string {
	switch {
	case req.Slow && req.Category != CategoryAll:
		return fmt.Sprintf("%s and slow", req.Category)
	case req.Slow:
		return "slow"
	case req.Category != CategoryAll:
		return string(req.Category)
	}
	return ""
}

// childEnv builds the KEY=VALUE pairs injected into the child environment.
// The snapshot values are forwarded verbatim; unset variables are omitted so
// the engine's own defaults apply.
func childEnv(req RunRequest, cfg config.Config) []string {
	env := []string{
		fmt.Sprintf("PLAYWRIGHT_BROWSER=%s", req.Browser),
		fmt.Sprintf("TEST_RESULTS_DIR=%s", req.OutputDir),
	}

	// --headed overrides any ambient HEADLESS value; otherwise the snapshot
	// is forwarded as-is.
	switch {
	case req.Headed:
		env = append(env, "HEADLESS=false")
	case cfg.Env.Headless != "":
		env = append(env, fmt.Sprintf("%s=%s", config.EnvHeadless, cfg.Env.Headless))
	}

	if cfg.Env.SlowMo != "" {
		env = append(env, fmt.Sprintf("%s=%s", config.EnvSlowMo, cfg.Env.SlowMo))
	}
	if cfg.Env.Timeout != "" {
		env = append(env, fmt.Sprintf("%s=%s", config.EnvTimeout, cfg.Env.Timeout))
	}
	if cfg.Env.BaseURL != "" {
		env = append(env, fmt.Sprintf("%s=%s", config.EnvBaseURL, cfg.Env.BaseURL))
	}
	if cfg.Env.CI != "" {
		env = append(env, fmt.Sprintf("%s=%s", config.EnvCI, cfg.Env.CI))
	}

	return env
}
