package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"testctl/internal/artifacts"
	"testctl/internal/run"
)

// RunSummary is the machine-readable record of one invocation, written into
// the reports subdirectory for CI consumption.
type RunSummary struct {
	StartTime time.Time     `json:"start_time"`
	Category  run.Category  `json:"category"`
	Venue     run.Venue     `json:"venue"`
	Browser   run.Browser   `json:"browser"`
	Program   string        `json:"program"`
	Args      []string      `json:"args"`
	ExitCode  int           `json:"exit_code"`
	WallTime  time.Duration `json:"wall_time_ns"`
	Status    Status        `json:"status"`
}

// NewRunSummary assembles a summary from the request, the resolved
// invocation, and the observed result.
func NewRunSummary(start time.Time, req run.RunRequest, inv run.Invocation, result run.RunResult, status Status) RunSummary {
	return RunSummary{
		StartTime: start,
		Category:  req.Category,
		Venue:     req.Venue,
		Browser:   req.Browser,
		Program:   inv.Program,
		Args:      inv.Args,
		ExitCode:  result.ExitCode,
		WallTime:  result.WallTime,
		Status:    status,
	}
}

// WriteSummary saves the summary as a timestamped JSON file under the
// workspace reports directory.
func WriteSummary(ws *artifacts.Workspace, summary RunSummary) (string, error) {
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run summary: %w", err)
	}

	filename := fmt.Sprintf("testctl-run-%s.json", summary.StartTime.Format("20060102-150405"))
	fullPath := ws.ReportPath(filename)

	if err := os.WriteFile(fullPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write run summary: %w", err)
	}

	return fullPath, nil
}
