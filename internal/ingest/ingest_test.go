package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTable(t *testing.T) {
	path := writeTempFile(t, "Issue key,Summary,Status\nABC-1,Login fails,Open\nABC-2,\"Slow, very slow\",Closed\n")

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ABC-1", rows[0].Get("Issue key"))
	assert.Equal(t, "Login fails", rows[0].Get("Summary"))
	assert.Equal(t, "Slow, very slow", rows[1].Get("Summary"))
	assert.Equal(t, "", rows[0].Get("No Such Column"))
	assert.False(t, rows[0].Has("No Such Column"))
}

func TestReadTableRaggedRows(t *testing.T) {
	path := writeTempFile(t, "Issue key,Summary,Status\nABC-1,Only two\nABC-2,Has,Open,extra\n")

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Short row leaves the trailing column absent.
	assert.False(t, rows[0].Has("Status"))
	assert.Equal(t, "", rows[0].Get("Status"))

	// Long row drops fields past the header width.
	assert.Equal(t, "Open", rows[1].Get("Status"))
}

func TestReadTableTrimsHeaderWhitespace(t *testing.T) {
	path := writeTempFile(t, " Issue key , Summary\nABC-1,Something\n")

	rows, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ABC-1", rows[0].Get("Issue key"))
}

func TestReadTableEmptyFile(t *testing.T) {
	path := writeTempFile(t, "")

	_, err := ReadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestBuildTrackerIndex(t *testing.T) {
	rows := []Row{
		{"Issue key": " abc-1 ", "Summary": "First", "Issue Type": "Bug", "Status": "Open", "Fix Version/s": "1.0", "Parent key": "EPIC-1"},
		{"Issue key": "", "Summary": "No key"},
		{"Issue key": "ABC-2", "Summary": "Second"},
		{"Issue key": "ABC-1", "Summary": "First revised"},
	}

	index, skipped := BuildTrackerIndex(rows)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, index.Len())
	assert.Equal(t, []string{"ABC-1", "ABC-2"}, index.Keys())

	issue, ok := index.Get("ABC-1")
	require.True(t, ok)
	assert.Equal(t, "First revised", issue.Summary)
	assert.Equal(t, "EPIC-1", rows[0]["Parent key"])
}

func TestBuildTrackerIndexFixVersionFallback(t *testing.T) {
	index, _ := BuildTrackerIndex([]Row{
		{"Issue key": "ABC-1", "Fix Version": "0.9"},
		{"Issue key": "ABC-2", "Fix Version/s": "", "Fix Version": "0.8"},
	})

	legacy, _ := index.Get("ABC-1")
	assert.Equal(t, "0.9", legacy.FixVersions)

	// The current header wins even when blank.
	current, _ := index.Get("ABC-2")
	assert.Equal(t, "", current.FixVersions)
}

func TestExtractTestRecords(t *testing.T) {
	rows := []Row{
		{"ID": "TC-1", "Title": "Login works", "Priority": "High", "Test Case Automated?": "Yes", "References": "ABC-1, abc-2;ABC-1"},
		{"ID": "TC-2", "Title": "No refs", "References": ""},
		{"ID": "TC-3", "Title": "Separators only", "References": " ,; "},
		{"ID": "TC-4", "Title": "Single", "References": "abc-3"},
	}

	records, skipped := ExtractTestRecords(rows, "cases.csv")
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 4)

	assert.Equal(t, "ABC-1", records[0].ReferenceKey)
	assert.Equal(t, "ABC-2", records[1].ReferenceKey)
	assert.Equal(t, "ABC-1", records[2].ReferenceKey)
	assert.Equal(t, "ABC-3", records[3].ReferenceKey)

	for _, r := range records[:3] {
		assert.Equal(t, "cases.csv", r.SourceFile)
		assert.Equal(t, "TC-1", r.CaseID)
		assert.Equal(t, "Login works", r.Title)
		assert.Equal(t, "High", r.Priority)
		assert.Equal(t, "Yes", r.AutomationStatus)
	}
}
