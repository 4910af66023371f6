package core

import (
	"math"

	"github.com/qafoundry/tracematrix/schema"
)

// Summarize computes the coverage statistics for a set of aggregated rows.
// An issue counts as covered when at least one test record matched it.
func Summarize(rows []schema.AggregatedRow) schema.Summary {
	total := len(rows)
	withTests := 0
	for _, row := range rows {
		if row.TestCount > 0 {
			withTests++
		}
	}
	withoutTests := total - withTests

	return schema.Summary{
		Total:        total,
		WithTests:    withTests,
		WithoutTests: withoutTests,
		WithPct:      roundPct(withTests, total),
		WithoutPct:   roundPct(withoutTests, total),
	}
}

// roundPct computes part/total as a percentage rounded to two decimals.
// A zero total yields 0 rather than NaN.
func roundPct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(part) / float64(total) * 100
	return math.Round(pct*100) / 100
}
