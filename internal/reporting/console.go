package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Semantic styles for the final classification line. lipgloss downgrades
// these automatically on terminals without color support, and NO_COLOR is
// honored by its renderer.
var (
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// ConsoleReporter writes classified lines to a terminal.
type ConsoleReporter struct {
	out       io.Writer
	verbose   bool
	finalized bool
}

// NewConsoleReporter creates a reporter writing to stdout.
func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout, verbose: verbose}
}

// NewConsoleReporterWithWriter creates a reporter writing to the given
// writer. Used by tests to capture output.
func NewConsoleReporterWithWriter(out io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, verbose: verbose}
}

// Progress emits an INFO line. Suppressed unless verbose mode is on, so the
// default output stays scrapeable.
func (c *ConsoleReporter) Progress(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", styleInfo.Render("INFO"), fmt.Sprintf(format, args...))
}

// Final emits the single terminal classification line. Only the first call
// has any effect.
func (c *ConsoleReporter) Final(status Status, format string, args ...interface{}) {
	if c.finalized {
		return
	}
	c.finalized = true

	fmt.Fprintf(c.out, "%s %s\n", styleFor(status).Render(string(status)), fmt.Sprintf(format, args...))
}

// Finalized reports whether the terminal line has been emitted.
func (c *ConsoleReporter) Finalized() bool {
	return c.finalized
}

func styleFor(status Status) lipgloss.Style {
	switch status {
	case StatusSuccess:
		return styleSuccess
	case StatusWarning:
		return styleWarning
	case StatusError:
		return styleError
	default:
		return styleInfo
	}
}
