package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/schema"
)

// WriteSummaryResults writes the coverage summary file and renders the
// console summary table with the coverage label and run statistics.
func WriteSummaryResults(result *schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	err := writeWithFile(cfg.SummaryFile, cfg, func(w io.Writer) error {
		return writeSummaryCSV(w, result.Summary)
	}, "Wrote summary CSV")
	if err != nil {
		return fmt.Errorf("error writing CSV output: %w", err)
	}

	return writeSummaryConsole(os.Stdout, result, cfg, duration)
}

// writeSummaryCSV writes the three fixed summary rows. The total row's
// percentage cell stays blank.
func writeSummaryCSV(w io.Writer, summary schema.Summary) error {
	return writeCSVWithHeader(w, schema.SummaryColumns, func(csvWriter *csv.Writer) error {
		for _, m := range summary.Metrics() {
			pct := ""
			if m.HasPercentage {
				pct = formatPct(m.Percentage)
			}
			rec := []string{m.Metric, strconv.Itoa(m.Absolute), pct}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSummaryConsole renders the aligned summary table plus the coverage
// label, skipped-row counts, and the run duration.
func writeSummaryConsole(writer io.Writer, result *schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header(schema.SummaryColumns)

	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range result.Summary.Metrics() {
		pct := "—"
		if m.HasPercentage {
			pct = formatPct(m.Percentage) + "%"
		}
		data = append(data, []string{m.Metric, strconv.Itoa(m.Absolute), pct})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	label := contract.GetPlainLabel(result.Summary.WithPct)
	if cfg.UseColors {
		label = contract.GetColorLabel(result.Summary.WithPct)
	}
	if _, err := fmt.Fprintf(writer, "Coverage: %s (%s%%)\n", label, formatPct(result.Summary.WithPct)); err != nil {
		return err
	}

	if result.SkippedTrackerRows > 0 {
		if _, err := fmt.Fprintf(writer, "Skipped %d tracker row(s) without an issue key\n", result.SkippedTrackerRows); err != nil {
			return err
		}
	}
	if result.SkippedTestRows > 0 {
		if _, err := fmt.Fprintf(writer, "Skipped %d test row(s) without references\n", result.SkippedTestRows); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Report completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatPct renders a percentage value with two decimals and no suffix.
func formatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64)
}
