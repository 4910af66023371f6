package iohistory

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/qafoundry/tracematrix/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore creates a store backed by a throwaway database file.
func newSQLiteStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func TestRunStoreBeginAndFinish(t *testing.T) {
	store := newSQLiteStore(t)

	start := time.Now().UTC()
	runID, err := store.BeginRun(start, map[string]any{"output": "csv"})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	stats := schema.RunStats{
		TrackerFile:   "jira.csv",
		TestFileCount: 2,
		TotalIssues:   4,
		WithTests:     3,
		WithoutTests:  1,
		CoveragePct:   75,
	}
	require.NoError(t, store.FinishRun(runID, start.Add(2*time.Second), stats))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.WithinDuration(t, start, run.StartTime, time.Millisecond)
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int64(2000), *run.RunDurationMs)
	require.NotNil(t, run.TrackerFile)
	assert.Equal(t, "jira.csv", *run.TrackerFile)
	assert.Equal(t, 2, run.TestFileCount)
	assert.Equal(t, 4, run.TotalIssues)
	assert.Equal(t, 3, run.IssuesWithTests)
	assert.Equal(t, 1, run.IssuesWithoutTests)
	require.NotNil(t, run.CoveragePct)
	assert.InDelta(t, 75, *run.CoveragePct, 1e-9)
	require.NotNil(t, run.ConfigParams)
	assert.Contains(t, *run.ConfigParams, `"output":"csv"`)
}

func TestRunStoreUnfinishedRun(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].EndTime)
	assert.Nil(t, runs[0].RunDurationMs)
	assert.Nil(t, runs[0].TrackerFile)
}

func TestRunStoreGetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalRuns)

	first := time.Now().Add(-time.Hour)
	_, err = store.BeginRun(first, nil)
	require.NoError(t, err)
	lastID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalRuns)
	assert.Equal(t, lastID, status.LastRunID)
	assert.WithinDuration(t, first, status.OldestRunTime, time.Millisecond)
	assert.Equal(t, int64(2), status.TableSizes[runsTable])
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.FinishRun(1, time.Now(), schema.RunStats{}))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	require.NoError(t, store.Close())
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`tracematrix_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"tracematrix_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"tracematrix_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}

func TestFormatTime(t *testing.T) {
	now := time.Now()

	formatted := formatTime(now, schema.SQLiteBackend)
	str, ok := formatted.(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, str)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))

	assert.Equal(t, now, formatTime(now, schema.MySQLBackend))
}
