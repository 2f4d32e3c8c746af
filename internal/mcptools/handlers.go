package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"testctl/internal/config"
	"testctl/internal/run"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers implements the tool handlers over the dispatch pipeline.
type Handlers struct {
	cfg      config.Config
	executor run.Executor
}

// NewHandlers creates tool handlers for the given configuration.
func NewHandlers(cfg config.Config, executor run.Executor) *Handlers {
	return &Handlers{cfg: cfg, executor: executor}
}

// HandleRunTests executes one dispatch and returns the run summary. A
// nonzero engine exit is a tool result, not a protocol error, so agents can
// inspect the failure.
func (h *Handlers) HandleRunTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := run.DefaultRequest()
	req.OutputDir = h.cfg.Artifacts.Root

	category, err := run.ParseCategory(request.GetString("category", string(run.CategoryAll)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req.Category = category

	venue, err := run.ParseVenue(request.GetString("env", string(run.VenueLocal)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req.Venue = venue

	req.Browser = run.Browser(request.GetString("browser", string(run.BrowserChromium)))
	req.Parallel = request.GetBool("parallel", false)
	req.Coverage = request.GetBool("coverage", false)
	req.Headed = request.GetBool("headed", false)
	if output := request.GetString("output", ""); output != "" {
		req.OutputDir = output
	}

	start := time.Now()
	inv, result, runErr := run.Dispatch(ctx, req, h.cfg, h.executor)

	summary := map[string]interface{}{
		"category":  req.Category,
		"venue":     req.Venue,
		"browser":   req.Browser,
		"program":   inv.Program,
		"exit_code": result.ExitCode,
		"wall_time": result.WallTime.String(),
		"artifacts": req.OutputDir,
		"success":   runErr == nil,
	}
	if runErr != nil {
		var delegated *run.DelegatedFailure
		if !errors.As(runErr, &delegated) {
			// Dispatch never reached the engine.
			return mcp.NewToolResultError(fmt.Sprintf("Run failed before execution: %v", runErr)), nil
		}
		summary["error"] = runErr.Error()
	}
	summary["start_time"] = start.Format(time.RFC3339)

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format summary: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleListCategories returns the valid category tokens.
func (h *Handlers) HandleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := run.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}

	jsonData, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format categories: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleDoctor reports the availability of the external tools the
// dispatcher delegates to.
func (h *Handlers) HandleDoctor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checks := map[string]string{}

	engine := "pytest"
	if len(h.cfg.Engine.Command) > 0 {
		engine = h.cfg.Engine.Command[0]
	}
	checks[engine] = checkTool(engine)
	checks["docker"] = checkTool("docker")

	jsonData, err := json.MarshalIndent(checks, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format checks: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func checkTool(name string) string {
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return "not found"
}
