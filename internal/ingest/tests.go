package ingest

import (
	"github.com/qafoundry/tracematrix/schema"
)

// Test-management export column names.
const (
	testIDColumn         = "ID"
	testTitleColumn      = "Title"
	testPriorityColumn   = "Priority"
	testAutomationColumn = "Test Case Automated?"
	testReferencesColumn = "References"
)

// ExtractTestRecords fans test-management rows out into one record per
// referenced issue key. A row whose References field yields no usable token
// is skipped; the second return value is how many were. Duplicate references
// within a row each produce their own record.
func ExtractTestRecords(rows []Row, sourceFile string) ([]schema.TestRecord, int) {
	records := make([]schema.TestRecord, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		keys := schema.SplitReferences(row.Get(testReferencesColumn))
		if len(keys) == 0 {
			skipped++
			continue
		}
		for _, key := range keys {
			records = append(records, schema.TestRecord{
				SourceFile:       sourceFile,
				CaseID:           row.Get(testIDColumn),
				Title:            row.Get(testTitleColumn),
				Priority:         row.Get(testPriorityColumn),
				AutomationStatus: row.Get(testAutomationColumn),
				ReferenceKey:     key,
			})
		}
	}
	return records, skipped
}
