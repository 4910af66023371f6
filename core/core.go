// Package core has core logic for joining tracker and test-management
// exports into an aggregated traceability matrix.
package core

import (
	"context"
	"path/filepath"
	"time"

	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/internal/ingest"
	"github.com/qafoundry/tracematrix/internal/iohistory"
	"github.com/qafoundry/tracematrix/internal/outwriter"
	"github.com/qafoundry/tracematrix/schema"
)

// ExecuteTraceReport runs the full reconciliation pipeline: ingest the
// tracker and test exports, join them, write the matrix and summary files,
// and render the console summary. It serves as the main entry point for the
// 'report' command.
func ExecuteTraceReport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	outwriter.LogReportHeader(cfg)

	// --- 0. Begin Run Tracking (if configured) ---
	runID := beginRunTracking(cfg, start)

	result, err := runReportCore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := outwriter.WriteMatrixResults(result.Rows, cfg); err != nil {
		return err
	}

	duration := time.Since(start)
	if err := outwriter.WriteSummaryResults(result, cfg, duration); err != nil {
		return err
	}

	// --- End Run Tracking ---
	finishRunTracking(cfg, runID, result, time.Now())

	return nil
}

// runReportCore performs the common Ingestion, Grouping, and Join steps.
// Exports are read sequentially in the order given on the command line so
// record order, and therefore first-seen dedup order, is deterministic.
func runReportCore(ctx context.Context, cfg *contract.Config) (*schema.ReportResult, error) {
	// --- 1. Tracker Ingestion ---
	trackerRows, err := ingest.ReadTable(cfg.TrackerPath)
	if err != nil {
		return nil, err
	}
	index, skippedTracker := ingest.BuildTrackerIndex(trackerRows)

	// --- 2. Test Export Ingestion ---
	var records []schema.TestRecord
	skippedTests := 0
	for _, path := range cfg.TestPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := ingest.ReadTable(path)
		if err != nil {
			return nil, err
		}
		fileRecords, skipped := ingest.ExtractTestRecords(rows, filepath.Base(path))
		records = append(records, fileRecords...)
		skippedTests += skipped
	}

	// --- 3. Join and Summarize ---
	rows := BuildMatrix(index, records)

	return &schema.ReportResult{
		Rows:               rows,
		Summary:            Summarize(rows),
		SkippedTrackerRows: skippedTracker,
		SkippedTestRows:    skippedTests,
	}, nil
}

// beginRunTracking opens a run-history record when a backend is configured.
// Tracking failures are warnings, never run failures.
func beginRunTracking(cfg *contract.Config, start time.Time) int64 {
	store := iohistory.GetRunStore()
	if store == nil {
		return 0
	}

	configParams := map[string]any{
		"tracker":         cfg.TrackerPath,
		"test_file_count": len(cfg.TestPaths),
		"output":          string(cfg.Output),
		"matrix_file":     cfg.MatrixFile,
		"summary_file":    cfg.SummaryFile,
	}
	runID, err := store.BeginRun(start, configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0
	}
	return runID
}

// finishRunTracking closes out the run-history record started by
// beginRunTracking.
func finishRunTracking(cfg *contract.Config, runID int64, result *schema.ReportResult, end time.Time) {
	store := iohistory.GetRunStore()
	if store == nil || runID <= 0 {
		return
	}

	stats := schema.RunStats{
		TrackerFile:   cfg.TrackerPath,
		TestFileCount: len(cfg.TestPaths),
		TotalIssues:   result.Summary.Total,
		WithTests:     result.Summary.WithTests,
		WithoutTests:  result.Summary.WithoutTests,
		CoveragePct:   result.Summary.WithPct,
	}
	if err := store.FinishRun(runID, end, stats); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
