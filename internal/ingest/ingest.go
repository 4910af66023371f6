// Package ingest reads the delimited exports that feed a reconciliation
// run: one issue-tracker export and any number of test-management exports.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row is one data row of an export, keyed by header column name.
// Looking up a column the file does not have yields an empty string.
type Row map[string]string

// Get returns the value of the named column, or "" when absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Has reports whether the named column exists in the source file.
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// ReadTable parses a comma-separated export into rows keyed by the header
// row's column names. Rows shorter than the header leave trailing columns
// absent; rows longer than the header have their extra fields dropped.
func ReadTable(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exports in the wild have ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row in %s", path)
	}

	header := records[0]
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
