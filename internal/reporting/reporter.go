// Package reporting surfaces run outcomes to the operator and to CI.
//
// The console reporter may emit any number of INFO progress lines, but it
// emits exactly one final classified line per invocation so automated log
// scraping can key off a single deterministic line.
package reporting

// Status classifies a reported line.
type Status string

const (
	StatusInfo    Status = "INFO"
	StatusSuccess Status = "SUCCESS"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// Reporter receives progress and the final classification of a run.
type Reporter interface {
	// Progress emits an informational line. May be called any number of
	// times before Final.
	Progress(format string, args ...interface{})
	// Final emits the single terminal classification. Calls after the
	// first are ignored.
	Final(status Status, format string, args ...interface{})
}
