// Package cmd defines the command-line interface for prism.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(assessmentsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the report subcommands to the parent report command
	reportCmd.AddCommand(reportGenerateCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportListCmd)

	// Add the weights subcommands to the parent weights command
	weightsCmd.AddCommand(weightsGetCmd)
	weightsCmd.AddCommand(weightsSetCmd)

	// Add the assessments subcommands to the parent assessments command
	assessmentsCmd.AddCommand(assessmentsImportCmd)
	assessmentsCmd.AddCommand(assessmentsListCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string (file path for sqlite, DSN for mysql/postgresql)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of ranked items to display")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("fetch-attempts", schema.DefaultFetchAttempts, "Retry budget for the assessment fetch")
	rootCmd.PersistentFlags().Int("fetch-retry-ms", schema.DefaultFetchRetryDelayMS, "Delay between fetch attempts in milliseconds")
	rootCmd.PersistentFlags().Float64("ref-time-saved-hours", schema.DefaultTimeSavedReferenceHours, "Hours saved per user per week that maps to a 100 component score")
	rootCmd.PersistentFlags().Float64("ref-cost-efficiency", schema.DefaultCostEfficiencyReference, "Annual cost-efficiency gain that maps to a 100 component score")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportGenerateCmd to Viper
	reportGenerateCmd.Flags().Bool("no-cache", false, "Force a fresh computation even when a snapshot exists")
	if err := viper.BindPFlags(reportGenerateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report generate flags", err)
	}

	// Bind all flags of weightsGetCmd to Viper
	weightsGetCmd.Flags().String("industry", "", "Industry used for default synthesis when no vector is stored")
	weightsGetCmd.Flags().String("company-stage", "", "Company stage used for default synthesis when no vector is stored")
	if err := viper.BindPFlags(weightsGetCmd.Flags()); err != nil {
		contract.LogFatal("Error binding weights get flags", err)
	}

	// Bind all flags of weightsSetCmd to Viper
	weightsSetCmd.Flags().Float64("adoption-rate", 0, "Weight for the adoption rate component")
	weightsSetCmd.Flags().Float64("time-saved", 0, "Weight for the time saved component")
	weightsSetCmd.Flags().Float64("cost-efficiency", 0, "Weight for the cost efficiency component")
	weightsSetCmd.Flags().Float64("performance-improvement", 0, "Weight for the performance improvement component")
	weightsSetCmd.Flags().Float64("tool-sprawl-reduction", 0, "Weight for the tool sprawl reduction component")
	if err := viper.BindPFlags(weightsSetCmd.Flags()); err != nil {
		contract.LogFatal("Error binding weights set flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
