package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/qafoundry/tracematrix/schema"
)

// Default values for configuration.
const (
	DefaultOutputDir   = "output"
	DefaultMatrixFile  = "traceability_matrix_aggregated.csv"
	DefaultSummaryFile = "traceability_summary.csv"
	DefaultPreviewRows = 25
	MaxPreviewRows     = 1000
)

// Config holds the runtime configuration for a reconciliation run.
// This struct remains the "final, validated" config.
type Config struct {
	TrackerPath string   // Path to the issue-tracker CSV export
	TestPaths   []string // Paths to the test-management CSV exports, at least one

	MatrixFile  string // Resolved path of the aggregated matrix output
	SummaryFile string // Resolved path of the summary output
	OutputDir   string // Directory that bare output filenames are placed in

	Output      schema.OutputMode // Matrix file format: csv, json or parquet
	Preview     bool              // Render top matrix rows as a console table
	PreviewRows int               // Preview row cap
	Width       int               // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
	OutputFile       string // Destination for history export

	UseEmojis bool // Enable emojis on console status lines
	UseColors bool // Enable colored coverage label in console output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TrackerPathStr string

	Tests            string `mapstructure:"tests"`
	MatrixFile       string `mapstructure:"matrix-file"`
	SummaryFile      string `mapstructure:"summary-file"`
	OutputDir        string `mapstructure:"output-dir"`
	Output           string `mapstructure:"output"`
	Preview          bool   `mapstructure:"preview"`
	Limit            int    `mapstructure:"limit"`
	Width            int    `mapstructure:"width"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInputPaths(cfg, input); err != nil {
		return err
	}
	if err := processOutputPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Preview = input.Preview
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Preview Limit Validation ---
	if input.Limit <= 0 || input.Limit > MaxPreviewRows {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxPreviewRows, input.Limit)
	}
	cfg.PreviewRows = input.Limit

	// --- 2. Output Format Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be csv, json, parquet", input.Output)
	}

	// --- 3. History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	return nil
}

// processInputPaths validates the tracker export and the test-management
// exports. Every path is stat-checked eagerly so a run never starts with a
// missing input.
func processInputPaths(cfg *Config, input *ConfigRawInput) error {
	cfg.TrackerPath = strings.TrimSpace(input.TrackerPathStr)
	if cfg.TrackerPath == "" {
		return fmt.Errorf("tracker export path is required")
	}

	cfg.TestPaths = cfg.TestPaths[:0]
	for p := range strings.SplitSeq(input.Tests, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cfg.TestPaths = append(cfg.TestPaths, trimmed)
		}
	}
	if len(cfg.TestPaths) == 0 {
		return fmt.Errorf("at least one test-management export is required (--tests)")
	}

	for _, p := range append([]string{cfg.TrackerPath}, cfg.TestPaths...) {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("input file not found: %s", p)
		}
		if info.IsDir() {
			return fmt.Errorf("input path is a directory, not a file: %s", p)
		}
	}

	return nil
}

// processOutputPaths resolves the matrix and summary output paths.
// A bare filename goes into the output directory; anything containing a
// path separator is used as given.
func processOutputPaths(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	matrixFile := input.MatrixFile
	if matrixFile == "" {
		matrixFile = DefaultMatrixFile
	}
	// Keep the default name's extension honest for non-CSV formats.
	if matrixFile == DefaultMatrixFile && cfg.Output != schema.CSVOut {
		matrixFile = strings.TrimSuffix(matrixFile, ".csv") + "." + string(cfg.Output)
	}

	summaryFile := input.SummaryFile
	if summaryFile == "" {
		summaryFile = DefaultSummaryFile
	}

	cfg.MatrixFile = ResolveOutputPath(matrixFile, cfg.OutputDir)
	cfg.SummaryFile = ResolveOutputPath(summaryFile, cfg.OutputDir)

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
