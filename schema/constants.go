package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the matrix output file.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All output modes supported for the aggregated matrix.
const (
	CSVOut     OutputMode = "csv" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MatrixColumns is the exact header of the aggregated matrix, in order.
var MatrixColumns = []string{
	"Jira Key",
	"Jira Summary",
	"Issue Type",
	"Jira Status",
	"Fix Version/s",
	"Epic/Parent",
	"Source Files",
	"Test Case IDs",
	"Test Titles",
	"Test Priorities",
	"Test Statuses",
	"Test Count",
}

// SummaryColumns is the header of the summary report.
var SummaryColumns = []string{"Metric", "Absolute", "Percentage (%)"}

// Fixed metric names of the summary report.
const (
	MetricTotal        = "Total Jira tickets"
	MetricWithTests    = "Tickets with tests"
	MetricWithoutTests = "Tickets without tests"
)

// Separators used when serializing aggregated fields. Titles get the pipe
// separator because they routinely contain commas.
const (
	FieldSeparator = ", "
	TitleSeparator = " | "
)
