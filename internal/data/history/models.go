package history

import "time"

// RunSnapshot summarizes one linter invocation.
type RunSnapshot struct {
	RunID           string
	SchemaVersion   int
	Timestamp       time.Time
	FileCount       int
	ParseFailures   int
	DiagnosticCount int
	Duration        time.Duration
}
