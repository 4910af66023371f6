package ingest

import (
	"github.com/qafoundry/tracematrix/schema"
)

// Tracker export column names. "Fix Version/s" is the current header; older
// exports used "Fix Version" and are still accepted.
const (
	trackerKeyColumn        = "Issue key"
	trackerSummaryColumn    = "Summary"
	trackerIssueTypeColumn  = "Issue Type"
	trackerStatusColumn     = "Status"
	trackerFixVersionColumn = "Fix Version/s"
	trackerFixVersionLegacy = "Fix Version"
	trackerParentColumn     = "Parent key"
)

// BuildTrackerIndex indexes tracker rows by normalized issue key, preserving
// the order keys first appear in the export. Rows whose key normalizes to
// empty cannot participate in any join and are skipped; the second return
// value is how many were. Duplicate keys overwrite attributes in place.
func BuildTrackerIndex(rows []Row) (*schema.TrackerIndex, int) {
	index := schema.NewTrackerIndex()
	skipped := 0

	for _, row := range rows {
		key := schema.NormalizeKey(row.Get(trackerKeyColumn))
		if key == "" {
			skipped++
			continue
		}
		index.Put(schema.TrackedIssue{
			Key:         key,
			Summary:     row.Get(trackerSummaryColumn),
			IssueType:   row.Get(trackerIssueTypeColumn),
			Status:      row.Get(trackerStatusColumn),
			FixVersions: fixVersions(row),
			ParentKey:   row.Get(trackerParentColumn),
		})
	}
	return index, skipped
}

// fixVersions falls back to the legacy header only when the current one is
// absent, so an intentionally blank "Fix Version/s" stays blank.
func fixVersions(row Row) string {
	if row.Has(trackerFixVersionColumn) {
		return row.Get(trackerFixVersionColumn)
	}
	return row.Get(trackerFixVersionLegacy)
}
