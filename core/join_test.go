package core

import (
	"testing"

	"github.com/qafoundry/tracematrix/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(source, caseID, title, key string) schema.TestRecord {
	return schema.TestRecord{
		SourceFile:       source,
		CaseID:           caseID,
		Title:            title,
		Priority:         "High",
		AutomationStatus: "Yes",
		ReferenceKey:     key,
	}
}

func TestGroupByReference(t *testing.T) {
	records := []schema.TestRecord{
		record("a.csv", "TC-1", "one", "ABC-1"),
		record("a.csv", "TC-2", "two", "ABC-2"),
		record("b.csv", "TC-3", "three", "ABC-1"),
	}

	groups := GroupByReference(records)
	require.Len(t, groups, 2)
	assert.Len(t, groups["ABC-1"], 2)
	assert.Len(t, groups["ABC-2"], 1)
}

func TestBuildMatrixRowPerIndexKey(t *testing.T) {
	index := schema.NewTrackerIndex()
	index.Put(schema.TrackedIssue{Key: "ABC-1", Summary: "Covered"})
	index.Put(schema.TrackedIssue{Key: "ABC-2", Summary: "Uncovered"})

	rows := BuildMatrix(index, []schema.TestRecord{
		record("a.csv", "TC-1", "one", "ABC-1"),
		// Unknown keys never add rows.
		record("a.csv", "TC-9", "stray", "ZZZ-9"),
	})

	require.Len(t, rows, index.Len())
	assert.Equal(t, "ABC-1", rows[0].Key)
	assert.Equal(t, 1, rows[0].TestCount)

	assert.Equal(t, "ABC-2", rows[1].Key)
	assert.Equal(t, 0, rows[1].TestCount)
	assert.Equal(t, "", rows[1].SourceFiles)
	assert.Equal(t, "", rows[1].TestCaseIDs)
	assert.Equal(t, "", rows[1].TestTitles)
}

func TestBuildMatrixAggregation(t *testing.T) {
	index := schema.NewTrackerIndex()
	index.Put(schema.TrackedIssue{Key: "ABC-1"})

	rows := BuildMatrix(index, []schema.TestRecord{
		record("a.csv", "TC-1", "Login works", "ABC-1"),
		record("b.csv", "TC-2", "Logout works", "ABC-1"),
		record("a.csv", "TC-1", "Login works", "ABC-1"), // duplicate record
	})

	require.Len(t, rows, 1)
	row := rows[0]

	// Dedup applies to aggregated fields, not to the raw count.
	assert.Equal(t, 3, row.TestCount)
	assert.Equal(t, "a.csv, b.csv", row.SourceFiles)
	assert.Equal(t, "TC-1, TC-2", row.TestCaseIDs)
	assert.Equal(t, "Login works | Logout works", row.TestTitles)
	assert.Equal(t, "High", row.TestPriorities)
	assert.Equal(t, "Yes", row.TestStatuses)
}

func TestBuildMatrixDropsEmptyFieldValues(t *testing.T) {
	index := schema.NewTrackerIndex()
	index.Put(schema.TrackedIssue{Key: "ABC-1"})

	rows := BuildMatrix(index, []schema.TestRecord{
		{SourceFile: "a.csv", CaseID: "", Title: "Untitled case", ReferenceKey: "ABC-1"},
		{SourceFile: "a.csv", CaseID: "TC-2", Title: "", ReferenceKey: "ABC-1"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "TC-2", rows[0].TestCaseIDs)
	assert.Equal(t, "Untitled case", rows[0].TestTitles)
	assert.Equal(t, 2, rows[0].TestCount)
}
