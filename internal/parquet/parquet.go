// Package parquet provides data structures and functions for exporting
// traceability data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/qafoundry/tracematrix/schema"
)

// MatrixRow is the Parquet projection of one aggregated matrix row.
// Column names follow the CSV matrix header, flattened to snake_case.
type MatrixRow struct {
	JiraKey        string `parquet:"jira_key,snappy"`
	JiraSummary    string `parquet:"jira_summary,snappy"`
	IssueType      string `parquet:"issue_type,snappy"`
	JiraStatus     string `parquet:"jira_status,snappy"`
	FixVersions    string `parquet:"fix_versions,snappy"`
	EpicParent     string `parquet:"epic_parent,snappy"`
	SourceFiles    string `parquet:"source_files,snappy"`
	TestCaseIDs    string `parquet:"test_case_ids,snappy"`
	TestTitles     string `parquet:"test_titles,snappy"`
	TestPriorities string `parquet:"test_priorities,snappy"`
	TestStatuses   string `parquet:"test_statuses,snappy"`
	TestCount      int32  `parquet:"test_count,snappy"`
}

// RunRecord represents a single reconciliation run with metadata.
// This struct maps to the tracematrix_runs database table.
type RunRecord struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TrackerFile is the tracker export the run ingested (nullable)
	TrackerFile *string `parquet:"tracker_file,optional,snappy"`

	// TestFileCount is the number of test-management exports ingested
	TestFileCount int32 `parquet:"test_file_count,snappy"`

	// TotalIssues is the number of tracked issues in the matrix
	TotalIssues int32 `parquet:"total_issues,snappy"`

	// IssuesWithTests is the number of issues with at least one matching test
	IssuesWithTests int32 `parquet:"issues_with_tests,snappy"`

	// IssuesWithoutTests is the number of issues with no matching tests
	IssuesWithoutTests int32 `parquet:"issues_without_tests,snappy"`

	// CoveragePct is the covered share as a percentage (nullable)
	CoveragePct *float64 `parquet:"coverage_pct,optional,snappy"`

	// ConfigParams contains the JSON-encoded run configuration (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// FromAggregatedRows converts matrix rows into their Parquet projection.
func FromAggregatedRows(rows []schema.AggregatedRow) []MatrixRow {
	out := make([]MatrixRow, len(rows))
	for i, row := range rows {
		out[i] = MatrixRow{
			JiraKey:        row.Key,
			JiraSummary:    row.Summary,
			IssueType:      row.IssueType,
			JiraStatus:     row.Status,
			FixVersions:    row.FixVersions,
			EpicParent:     row.ParentKey,
			SourceFiles:    row.SourceFiles,
			TestCaseIDs:    row.TestCaseIDs,
			TestTitles:     row.TestTitles,
			TestPriorities: row.TestPriorities,
			TestStatuses:   row.TestStatuses,
			TestCount:      int32(row.TestCount),
		}
	}
	return out
}

// ConvertRunHistoryRecords converts persisted run-history records into
// their Parquet projection.
func ConvertRunHistoryRecords(records []schema.RunHistoryRecord) []RunRecord {
	out := make([]RunRecord, len(records))
	for i, r := range records {
		var durationMs *int32
		if r.RunDurationMs != nil {
			ms := int32(*r.RunDurationMs)
			durationMs = &ms
		}
		out[i] = RunRecord{
			RunID:              r.RunID,
			StartTime:          r.StartTime,
			EndTime:            r.EndTime,
			RunDurationMs:      durationMs,
			TrackerFile:        r.TrackerFile,
			TestFileCount:      int32(r.TestFileCount),
			TotalIssues:        int32(r.TotalIssues),
			IssuesWithTests:    int32(r.IssuesWithTests),
			IssuesWithoutTests: int32(r.IssuesWithoutTests),
			CoveragePct:        r.CoveragePct,
			ConfigParams:       r.ConfigParams,
		}
	}
	return out
}

// WriteMatrix writes the aggregated matrix rows to w in Parquet format.
// The schema is automatically derived from the MatrixRow struct tags.
func WriteMatrix(w io.Writer, rows []schema.AggregatedRow) error {
	writer := parquet.NewGenericWriter[MatrixRow](w)

	if _, err := writer.Write(FromAggregatedRows(rows)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunRecords writes a slice of RunRecord structs to a Parquet file.
func WriteRunRecords(data []RunRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RunRecord](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
