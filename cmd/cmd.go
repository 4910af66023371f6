// Package cmd defines the command-line interface for tracematrix.
package cmd

import (
	"github.com/qafoundry/tracematrix/internal/contract"
	"github.com/qafoundry/tracematrix/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("tests", "t", "", "Comma-separated list of test-management CSV exports")
	rootCmd.PersistentFlags().String("matrix-file", "", "Filename or path for the aggregated matrix output")
	rootCmd.PersistentFlags().String("summary-file", "", "Filename or path for the coverage summary output")
	rootCmd.PersistentFlags().String("output-dir", contract.DefaultOutputDir, "Directory for bare output filenames")
	rootCmd.PersistentFlags().String("output", string(schema.CSVOut), "Matrix output format: csv or json or parquet")
	rootCmd.PersistentFlags().Bool("preview", false, "Render the top matrix rows as a console table")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultPreviewRows, "Number of preview rows to display")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis on console status lines (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored coverage labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.NoneBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyExportCmd to Viper
	historyExportCmd.Flags().String("output-file", "", "Path to write the Parquet export to")
	if err := viper.BindPFlags(historyExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history export flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
