package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryMetrics(t *testing.T) {
	s := Summary{Total: 4, WithTests: 3, WithoutTests: 1, WithPct: 75, WithoutPct: 25}
	metrics := s.Metrics()
	require.Len(t, metrics, 3)

	assert.Equal(t, MetricTotal, metrics[0].Metric)
	assert.Equal(t, 4, metrics[0].Absolute)
	assert.False(t, metrics[0].HasPercentage)

	assert.Equal(t, MetricWithTests, metrics[1].Metric)
	assert.Equal(t, 3, metrics[1].Absolute)
	assert.InDelta(t, 75, metrics[1].Percentage, 1e-9)
	assert.True(t, metrics[1].HasPercentage)

	assert.Equal(t, MetricWithoutTests, metrics[2].Metric)
	assert.Equal(t, 1, metrics[2].Absolute)
	assert.InDelta(t, 25, metrics[2].Percentage, 1e-9)
	assert.True(t, metrics[2].HasPercentage)
}

func TestAggregatedRowColumnValues(t *testing.T) {
	row := AggregatedRow{
		TrackedIssue: TrackedIssue{
			Key:         "ABC-1",
			Summary:     "Login fails",
			IssueType:   "Bug",
			Status:      "Open",
			FixVersions: "1.0",
			ParentKey:   "EPIC-1",
		},
		SourceFiles:    "a.csv",
		TestCaseIDs:    "TC-1",
		TestTitles:     "Login works",
		TestPriorities: "High",
		TestStatuses:   "Yes",
		TestCount:      1,
	}

	fields := row.ColumnValues()
	require.Len(t, fields, len(MatrixColumns))
	assert.Equal(t, "ABC-1", fields[0])
	assert.Equal(t, "EPIC-1", fields[5])
	assert.Equal(t, "1", fields[11])
}

func TestMatrixColumnsShape(t *testing.T) {
	require.Len(t, MatrixColumns, 12)
	assert.Equal(t, "Jira Key", MatrixColumns[0])
	assert.Equal(t, "Test Count", MatrixColumns[11])
	require.Len(t, SummaryColumns, 3)
}
