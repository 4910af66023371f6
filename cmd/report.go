package cmd

import (
	"github.com/qafoundry/tracematrix/core"
	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd reconciles tracker and test exports into a traceability matrix.
var reportCmd = &cobra.Command{
	Use:   "report [tracker-export]",
	Short: "Build the aggregated traceability matrix and coverage summary.",
	Long: `Join one issue-tracker CSV export with one or more test-management CSV
exports and report which tickets are covered by tests.

Produces three artifacts:
- An aggregated traceability matrix with one row per tracker ticket
- A coverage summary with absolute and percentage counts
- A console summary table with a qualitative coverage label

Rows are matched on normalized issue keys, so "abc-1" and " ABC-1 " both
count toward ticket ABC-1. Test rows without any ticket reference and
tracker rows without an issue key are skipped and reported.

Examples:
  # Reconcile one tracker export against one test export
  tracematrix report jira.csv --tests testmo.csv

  # Combine several test-management exports
  tracematrix report jira.csv --tests smoke.csv,regression.csv

  # Emit the matrix as JSON and preview the top rows
  tracematrix report jira.csv --tests testmo.csv --output json --preview

  # Track run history in SQLite for later export
  tracematrix report jira.csv --tests testmo.csv --history-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTraceReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run traceability report", err)
		}
	},
}
