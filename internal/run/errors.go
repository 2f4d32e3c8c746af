package run

import "fmt"

// ParseError reports malformed or unrecognized CLI input. Nothing is
// executed once a ParseError is raised; no child process is spawned.
type ParseError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %s", e.Value, e.Flag, e.Reason)
}

// ResolutionError reports an internally inconsistent configuration. No flag
// combination is currently disallowed; the type is reserved for future
// constraints.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("inconsistent configuration: %s", e.Reason)
}

// EnvironmentError reports that a required external tool is absent from the
// invocation environment. It is detected before spawn.
type EnvironmentError struct {
	Tool string
	Err  error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("required tool %q not found: %v", e.Tool, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// DelegatedFailure reports a nonzero exit from the delegated engine. The
// exit code is propagated verbatim as the dispatcher's own exit code so CI
// systems can distinguish failure classes the engine itself defines.
type DelegatedFailure struct {
	ExitCode int
}

func (e *DelegatedFailure) Error() string {
	return fmt.Sprintf("delegated engine exited with code %d", e.ExitCode)
}
