// Package artifacts manages the artifact root directory that receives
// screenshots, videos, traces and reports from a delegated engine run.
//
// The layout is created idempotently before execution and is never removed
// by the dispatcher afterwards, even when the run fails: artifacts must
// survive for postmortem inspection. Two concurrent invocations pointed at
// the same root are not arbitrated; that is a documented limitation, not a
// guarantee.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
)

// Standard artifact subdirectories, owned by the delegated engine once the
// run starts.
const (
	DirScreenshots = "screenshots"
	DirVideos      = "videos"
	DirTraces      = "traces"
	DirReports     = "reports"
)

// Workspace represents one artifact root.
type Workspace struct {
	root string
}

// NewWorkspace creates a workspace for the given artifact root. Nothing is
// touched on disk until EnsureLayout or Clean is called.
func NewWorkspace(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the artifact root path.
func (w *Workspace) Root() string {
	return w.root
}

// Subdirs returns the standard artifact subdirectory names.
func Subdirs() []string {
	return []string{DirScreenshots, DirVideos, DirTraces, DirReports}
}

// EnsureLayout creates the artifact root and its standard subdirectories.
// Creation is idempotent: an existing layout is left untouched.
func (w *Workspace) EnsureLayout() error {
	for _, sub := range Subdirs() {
		dir := filepath.Join(w.root, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
		}
	}
	return nil
}

// Clean removes the artifact root and everything beneath it. It is only
// invoked on explicit operator request (--clean or the clean command),
// never as part of failure handling.
func (w *Workspace) Clean() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("failed to remove artifact root %s: %w", w.root, err)
	}
	return nil
}

// ReportPath returns the path of a file inside the reports subdirectory.
func (w *Workspace) ReportPath(name string) string {
	return filepath.Join(w.root, DirReports, name)
}
