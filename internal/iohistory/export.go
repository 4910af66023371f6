package iohistory

import (
	"errors"
	"fmt"

	"github.com/qafoundry/tracematrix/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to a
// Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("no history backend configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	records := parquet.ConvertRunHistoryRecords(runs)
	if err := parquet.WriteRunRecords(records, outputFile); err != nil {
		return fmt.Errorf("failed to write run history: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(records), outputFile)

	return nil
}
