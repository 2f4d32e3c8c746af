package run

import "time"

// Category selects which group of tests the delegated engine executes.
type Category string

const (
	// CategoryAll runs every test; no marker filter is applied.
	CategoryAll Category = "all"
	// CategoryAPI runs API tests only.
	CategoryAPI Category = "api"
	// CategoryUI runs UI tests only.
	CategoryUI Category = "ui"
	// CategoryIntegration runs integration tests only.
	CategoryIntegration Category = "integration"
	// CategorySmoke runs smoke tests only.
	CategorySmoke Category = "smoke"
)

// Categories returns the valid category values in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryAPI, CategoryUI, CategoryIntegration, CategorySmoke}
}

// ParseCategory validates a category token. Matching is case-sensitive; an
// unknown token is a ParseError so an operator never believes an unsupported
// filter took effect.
func ParseCategory(token string) (Category, error) {
	for _, c := range Categories() {
		if token == string(c) {
			return c, nil
		}
	}
	return "", &ParseError{Flag: "type", Value: token,
		Reason: "must be one of: all, api, ui, integration, smoke"}
}

// Venue selects where the delegated engine executes.
type Venue string

const (
	// VenueLocal runs the engine as a direct child process.
	VenueLocal Venue = "local"
	// VenueDocker runs the engine inside a container.
	VenueDocker Venue = "docker"
)

// ParseVenue validates a venue token.
func ParseVenue(token string) (Venue, error) {
	switch token {
	case string(VenueLocal):
		return VenueLocal, nil
	case string(VenueDocker):
		return VenueDocker, nil
	}
	return "", &ParseError{Flag: "env", Value: token, Reason: "must be 'local' or 'docker'"}
}

// Browser is the browser selector forwarded to the engine. It is passed
// through unvalidated against engine capability; the engine owns rejection
// of browsers it cannot launch.
type Browser string

const (
	BrowserChromium Browser = "chromium"
	BrowserFirefox  Browser = "firefox"
	BrowserWebkit   Browser = "webkit"
)

// RunRequest represents one invocation intent. It is constructed once per
// dispatcher invocation, immutable after construction, and discarded after
// the delegated process terminates.
type RunRequest struct {
	Category  Category
	Venue     Venue
	Browser   Browser
	Headed    bool
	Parallel  bool
	Workers   int
	Coverage  bool
	Slow      bool
	Verbose   bool
	OutputDir string
	Clean     bool
}

// DefaultRequest returns a RunRequest with all defaults applied.
func DefaultRequest() RunRequest {
	return RunRequest{
		Category:  CategoryAll,
		Venue:     VenueLocal,
		Browser:   BrowserChromium,
		Workers:   4,
		OutputDir: "test-results",
	}
}

// Invocation is the concrete, fully resolved command for one delegated run.
// Arguments are kept as an ordered sequence of discrete tokens, never a
// single interpolated string, so no quoting or injection hazards arise.
type Invocation struct {
	// Program is the executable looked up on PATH.
	Program string
	// Args are the argument tokens, excluding the program itself.
	Args []string
	// Env holds KEY=VALUE pairs appended to the inherited environment.
	Env []string
	// Venue the invocation was resolved for.
	Venue Venue
}

// RunResult is the observed outcome of one delegated execution.
type RunResult struct {
	// ExitCode is the delegated engine's own exit code, propagated verbatim.
	ExitCode int
	// WallTime is the elapsed time of the child process.
	WallTime time.Duration
}

// Success reports whether the delegated engine exited zero.
func (r RunResult) Success() bool {
	return r.ExitCode == 0
}
