package contract

import (
	"time"

	"github.com/qafoundry/tracematrix/schema"
)

// RunStore abstracts run-history persistence across database backends.
type RunStore interface {
	// BeginRun creates a new run record and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// FinishRun updates the run record with completion data.
	FinishRun(runID int64, endTime time.Time, stats schema.RunStats) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves all persisted runs, oldest first.
	GetAllRuns() ([]schema.RunHistoryRecord, error)

	// Close closes the underlying connection.
	Close() error
}
