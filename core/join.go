package core

import (
	"strings"

	"github.com/qafoundry/tracematrix/schema"
)

// GroupByReference buckets test records by their normalized reference key.
// This is a group-by executed once up front so the join does a single O(1)
// lookup per tracker key instead of scanning all records.
func GroupByReference(records []schema.TestRecord) map[string][]schema.TestRecord {
	groups := make(map[string][]schema.TestRecord)
	for _, r := range records {
		groups[r.ReferenceKey] = append(groups[r.ReferenceKey], r)
	}
	return groups
}

// BuildMatrix joins the tracker index against the test records and produces
// one aggregated row per tracked issue, in index order. Issues with no
// matching records still get a row with empty aggregated fields and a zero
// count, so the output row count always equals the index size.
func BuildMatrix(index *schema.TrackerIndex, records []schema.TestRecord) []schema.AggregatedRow {
	groups := GroupByReference(records)

	rows := make([]schema.AggregatedRow, 0, index.Len())
	for _, key := range index.Keys() {
		issue, _ := index.Get(key)
		matched := groups[key]
		rows = append(rows, aggregateRow(issue, matched))
	}
	return rows
}

// aggregateRow collapses an issue's matched records into one matrix row.
// Each aggregated field is deduplicated preserving first-seen order, but
// TestCount stays the raw match count.
func aggregateRow(issue schema.TrackedIssue, matched []schema.TestRecord) schema.AggregatedRow {
	sources := make([]string, 0, len(matched))
	caseIDs := make([]string, 0, len(matched))
	titles := make([]string, 0, len(matched))
	priorities := make([]string, 0, len(matched))
	statuses := make([]string, 0, len(matched))

	for _, r := range matched {
		sources = append(sources, r.SourceFile)
		caseIDs = append(caseIDs, r.CaseID)
		titles = append(titles, r.Title)
		priorities = append(priorities, r.Priority)
		statuses = append(statuses, r.AutomationStatus)
	}

	return schema.AggregatedRow{
		TrackedIssue:   issue,
		SourceFiles:    joinField(sources, schema.FieldSeparator),
		TestCaseIDs:    joinField(caseIDs, schema.FieldSeparator),
		TestTitles:     joinField(titles, schema.TitleSeparator),
		TestPriorities: joinField(priorities, schema.FieldSeparator),
		TestStatuses:   joinField(statuses, schema.FieldSeparator),
		TestCount:      len(matched),
	}
}

// joinField deduplicates values in first-seen order and joins them with the
// field's separator. Empty values never make it into the output.
func joinField(values []string, sep string) string {
	return strings.Join(schema.DedupInOrder(values), sep)
}
