package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/internal/parquet"
	"github.com/qafoundry/tracematrix/schema"
)

// WriteMatrixResults writes the aggregated matrix file, dispatching based on
// the output format configured, and renders the optional console preview.
func WriteMatrixResults(rows []schema.AggregatedRow, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMatrixJSONResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeMatrixParquetResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeMatrixCSVResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}

	if cfg.Preview {
		return writeMatrixPreview(os.Stdout, rows, cfg)
	}
	return nil
}

// writeMatrixCSVResults handles opening the file and calling the CSV writer.
func writeMatrixCSVResults(rows []schema.AggregatedRow, cfg *contract.Config) error {
	return writeWithFile(cfg.MatrixFile, cfg, func(w io.Writer) error {
		return writeCSVWithHeader(w, schema.MatrixColumns, func(csvWriter *csv.Writer) error {
			for _, row := range rows {
				if err := csvWriter.Write(row.ColumnValues()); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote matrix CSV")
}

// writeMatrixJSONResults handles opening the file and calling the JSON writer.
func writeMatrixJSONResults(rows []schema.AggregatedRow, cfg *contract.Config) error {
	return writeWithFile(cfg.MatrixFile, cfg, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote matrix JSON")
}

// writeMatrixParquetResults handles opening the file and calling the Parquet writer.
func writeMatrixParquetResults(rows []schema.AggregatedRow, cfg *contract.Config) error {
	return writeWithFile(cfg.MatrixFile, cfg, func(w io.Writer) error {
		return parquet.WriteMatrix(w, rows)
	}, "Wrote matrix Parquet")
}

// writeMatrixPreview renders the top matrix rows as a console table.
// Free-text cells are truncated to fit the terminal width.
func writeMatrixPreview(writer io.Writer, rows []schema.AggregatedRow, cfg *contract.Config) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Jira Key", "Jira Summary", "Jira Status", "Test Case IDs", "Test Count"})

	maxWidth := getMaxTableCellWidth(cfg)
	limit := min(cfg.PreviewRows, len(rows))

	var data [][]string
	for _, row := range rows[:limit] {
		data = append(data, []string{
			row.Key,
			contract.TruncateCell(row.Summary, maxWidth),
			row.Status,
			contract.TruncateCell(row.TestCaseIDs, maxWidth),
			strconv.Itoa(row.TestCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d of %d rows\n", limit, len(rows)); err != nil {
		return err
	}
	return nil
}
