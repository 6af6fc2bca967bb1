package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
)

// exportCmd exports all stored report snapshots to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored reports to Parquet for BI tools and analytics",
	Long: `Export all stored report snapshots to Parquet format.

Exports two datasets:
- Report records - one row per snapshot (adoption score, ROI figures)
- Scored items - one row per ranked role per snapshot

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  prism export --output-file prism-data

  # Use with DuckDB for analysis
  prism export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.reports.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteReportExport(rootCtx, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export report data", err)
		}
	},
}
