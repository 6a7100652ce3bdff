// Package telemetry provides the demo CLI's run-summary logging and the
// decision-log CSV export used for offline analysis of a simulation run.
package telemetry

import (
	"fmt"
	"io"
)

// logWriter is the destination for Logf output.
var logWriter io.Writer

// SetLogWriter sets the log output destination. A nil writer restores the
// default of stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted human-readable log line, for run summaries in the
// demo CLI. Structured diagnostics elsewhere in the core go through
// log/slog instead; Logf is strictly for the CLI's own console output.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
		return
	}
	fmt.Println(msg)
}
