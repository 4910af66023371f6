package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []schema.AggregatedRow {
	return []schema.AggregatedRow{
		{
			TrackedIssue: schema.TrackedIssue{
				Key:         "ABC-1",
				Summary:     "Login fails, sometimes",
				IssueType:   "Bug",
				Status:      "Open",
				FixVersions: "1.0",
				ParentKey:   "EPIC-1",
			},
			SourceFiles:    "cases.csv",
			TestCaseIDs:    "TC-1, TC-2",
			TestTitles:     "Login works | Logout works",
			TestPriorities: "High",
			TestStatuses:   "Yes",
			TestCount:      2,
		},
		{
			TrackedIssue: schema.TrackedIssue{Key: "ABC-2", Summary: "Uncovered", Status: "Done"},
		},
	}
}

func TestWriteMatrixCSVResults(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		MatrixFile: filepath.Join(dir, "matrix.csv"),
		Output:     schema.CSVOut,
	}

	require.NoError(t, WriteMatrixResults(sampleRows(), cfg))

	content, err := os.ReadFile(cfg.MatrixFile)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, schema.MatrixColumns, records[0])
	assert.Equal(t, "ABC-1", records[1][0])
	// Embedded commas survive the CSV round trip.
	assert.Equal(t, "Login fails, sometimes", records[1][1])
	assert.Equal(t, "TC-1, TC-2", records[1][7])
	assert.Equal(t, "2", records[1][11])
	assert.Equal(t, "0", records[2][11])
}

func TestWriteMatrixJSONResults(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		MatrixFile: filepath.Join(dir, "matrix.json"),
		Output:     schema.JSONOut,
	}

	require.NoError(t, WriteMatrixResults(sampleRows(), cfg))

	content, err := os.ReadFile(cfg.MatrixFile)
	require.NoError(t, err)

	var decoded []schema.AggregatedRow
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ABC-1", decoded[0].Key)
	assert.Equal(t, 2, decoded[0].TestCount)
}

func TestWriteMatrixParquetResults(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		MatrixFile: filepath.Join(dir, "matrix.parquet"),
		Output:     schema.ParquetOut,
	}

	require.NoError(t, WriteMatrixResults(sampleRows(), cfg))

	info, err := os.Stat(cfg.MatrixFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteMatrixResultsCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &contract.Config{
		MatrixFile: filepath.Join(dir, "nested", "out", "matrix.csv"),
		Output:     schema.CSVOut,
	}

	require.NoError(t, WriteMatrixResults(nil, cfg))
	_, err := os.Stat(cfg.MatrixFile)
	assert.NoError(t, err)
}

func TestWriteMatrixPreview(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{PreviewRows: 1, Width: 120}

	require.NoError(t, writeMatrixPreview(&buf, sampleRows(), cfg))
	out := buf.String()

	assert.Contains(t, out, "ABC-1")
	assert.NotContains(t, out, "ABC-2", "rows past the preview limit stay hidden")
	assert.Contains(t, out, "Showing top 1 of 2 rows")
}

func TestWriteMatrixPreviewTruncatesWideCells(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{PreviewRows: 25, Width: 60}

	rows := []schema.AggregatedRow{{
		TrackedIssue: schema.TrackedIssue{
			Key:     "ABC-1",
			Summary: strings.Repeat("very long summary ", 10),
		},
	}}

	require.NoError(t, writeMatrixPreview(&buf, rows, cfg))
	assert.Contains(t, buf.String(), "...")
}
