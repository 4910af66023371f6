// Package schema has configs, models and global variables for all parts of tracematrix.
package schema

import "strconv"

// TrackedIssue represents one unit of work from the issue-tracker export.
// Attributes default to empty strings when the source column is absent.
type TrackedIssue struct {
	Key         string `json:"key"`          // Normalized issue key, unique after dedup
	Summary     string `json:"summary"`      // Issue summary line
	IssueType   string `json:"issue_type"`   // Story, Bug, Task, ...
	Status      string `json:"status"`       // Workflow status at export time
	FixVersions string `json:"fix_versions"` // Fix Version/s column, verbatim
	ParentKey   string `json:"parent_key"`   // Epic or parent issue key, verbatim
}

// TestRecord represents one association between a single test case and one
// referenced issue key. A source row with N reference tokens yields N records
// sharing all other attributes.
type TestRecord struct {
	SourceFile       string `json:"source_file"`       // Origin export file, for provenance
	CaseID           string `json:"case_id"`           // Test case identifier
	Title            string `json:"title"`             // Test case title
	Priority         string `json:"priority"`          // Test case priority
	AutomationStatus string `json:"automation_status"` // "Test Case Automated?" column
	ReferenceKey     string `json:"reference_key"`     // Normalized issue key this record targets
}

// AggregatedRow is the join output: one row per tracked issue, with all
// matching test attributes rolled up. Aggregated fields are deduplicated
// in first-seen order and serialized as delimiter-joined strings; TestCount
// is the raw (pre-dedup) number of matching records.
type AggregatedRow struct {
	TrackedIssue

	SourceFiles    string `json:"source_files"`
	TestCaseIDs    string `json:"test_case_ids"`
	TestTitles     string `json:"test_titles"`
	TestPriorities string `json:"test_priorities"`
	TestStatuses   string `json:"test_statuses"`
	TestCount      int    `json:"test_count"`
}

// ColumnValues renders the row as the 12 matrix columns, in declared
// column order.
func (r AggregatedRow) ColumnValues() []string {
	return []string{
		r.Key,
		r.Summary,
		r.IssueType,
		r.Status,
		r.FixVersions,
		r.ParentKey,
		r.SourceFiles,
		r.TestCaseIDs,
		r.TestTitles,
		r.TestPriorities,
		r.TestStatuses,
		strconv.Itoa(r.TestCount),
	}
}

// SummaryMetric is one row of the coverage summary. HasPercentage is false
// for the total-count metric, whose percentage cell is rendered blank rather
// than zero.
type SummaryMetric struct {
	Metric        string  `json:"metric"`
	Absolute      int     `json:"absolute"`
	Percentage    float64 `json:"percentage"`
	HasPercentage bool    `json:"has_percentage"`
}

// Summary holds the coverage statistics over the aggregated rows.
// WithTests + WithoutTests == Total always holds.
type Summary struct {
	Total        int     `json:"total"`
	WithTests    int     `json:"with_tests"`
	WithoutTests int     `json:"without_tests"`
	WithPct      float64 `json:"with_pct"`
	WithoutPct   float64 `json:"without_pct"`
}

// Metrics returns the three fixed summary rows in report order.
func (s Summary) Metrics() []SummaryMetric {
	return []SummaryMetric{
		{Metric: MetricTotal, Absolute: s.Total},
		{Metric: MetricWithTests, Absolute: s.WithTests, Percentage: s.WithPct, HasPercentage: true},
		{Metric: MetricWithoutTests, Absolute: s.WithoutTests, Percentage: s.WithoutPct, HasPercentage: true},
	}
}

// ReportResult bundles everything a single reconciliation run produces.
type ReportResult struct {
	Rows    []AggregatedRow
	Summary Summary

	// SkippedTrackerRows counts tracker rows without a usable key;
	// SkippedTestRows counts test rows without a usable reference.
	// Both are expected input noise, surfaced for observability only.
	SkippedTrackerRows int
	SkippedTestRows    int
}
