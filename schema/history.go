package schema

import "time"

// RunStats captures the outcome of one reconciliation run for history
// tracking.
type RunStats struct {
	TrackerFile   string
	TestFileCount int
	TotalIssues   int
	WithTests     int
	WithoutTests  int
	CoveragePct   float64
}

// RunStatus holds status information about the run-history store.
type RunStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}

// RunHistoryRecord is one persisted run, as read back from the store.
// Pointer fields are nullable columns; they stay nil for runs that never
// finished.
type RunHistoryRecord struct {
	RunID              int64
	StartTime          time.Time
	EndTime            *time.Time
	RunDurationMs      *int64
	TrackerFile        *string
	TestFileCount      int
	TotalIssues        int
	IssuesWithTests    int
	IssuesWithoutTests int
	CoveragePct        *float64
	ConfigParams       *string
}
