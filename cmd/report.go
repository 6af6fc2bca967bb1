package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakline/prism/core"
	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
)

// parseAssessmentID parses the positional assessment id argument.
func parseAssessmentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("assessment id must be a positive integer, got %q", arg)
	}
	return id, nil
}

// reportCmd groups report generation and retrieval.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate and inspect prioritization reports",
	Long: `Generate and inspect prioritization report snapshots.

A report snapshot holds everything derived from one assessment: scored
roles, the value/effort heatmap, the ranked opportunity list, the AI
adoption score and the ROI projection. Snapshots are append-only;
regeneration creates a new one and never rewrites history.

Subcommands:
  generate - Run the scoring pipeline and persist a new snapshot
  show     - Print the latest stored snapshot
  list     - List all snapshots for an assessment`,
}

// reportGenerateCmd runs the scoring pipeline for one assessment.
var reportGenerateCmd = &cobra.Command{
	Use:   "generate <assessment-id>",
	Short: "Score an assessment and persist the resulting report",
	Long: `Run the full scoring pipeline for one assessment.

The pipeline loads the assessment (retrying transient store failures),
scores each selected role on value and effort, places the roles on the
3x3 value/effort heatmap, computes the weighted AI adoption score using
the organization's weight vector, projects annual ROI, and persists the
result as a new snapshot.

Without --no-cache an existing snapshot is returned as-is and nothing
is recomputed.

Examples:
  # Generate (or return the cached) report for assessment 42
  prism report generate 42

  # Force a fresh computation
  prism report generate 42 --no-cache

  # Export the ranked items to CSV
  prism report generate 42 --output csv --output-file ranked.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := parseAssessmentID(args[0])
		if err != nil {
			contract.LogFatal("Invalid assessment id", err)
		}
		if err := core.ExecuteReportGenerate(rootCtx, cfg, iostore.Manager, id, viper.GetBool("no-cache")); err != nil {
			contract.LogFatal("Cannot generate report", err)
		}
	},
}

// reportShowCmd prints the latest snapshot without computing anything.
var reportShowCmd = &cobra.Command{
	Use:   "show <assessment-id>",
	Short: "Print the latest stored report snapshot",
	Long: `Print the most recent stored snapshot for an assessment.

This never runs the scoring pipeline; it fails when no snapshot exists.

Examples:
  # Show the latest report for assessment 42
  prism report show 42

  # Show it as JSON
  prism report show 42 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := parseAssessmentID(args[0])
		if err != nil {
			contract.LogFatal("Invalid assessment id", err)
		}
		if err := core.ExecuteReportShow(rootCtx, cfg, iostore.Manager, id); err != nil {
			contract.LogFatal("Cannot show report", err)
		}
	},
}

// reportListCmd lists the snapshot history for an assessment.
var reportListCmd = &cobra.Command{
	Use:   "list <assessment-id>",
	Short: "List all report snapshots for an assessment",
	Long: `List every stored snapshot for an assessment, newest first.

Each regeneration with --no-cache appends a snapshot, so the history
shows how the prioritization evolved as answers changed.

Examples:
  # List snapshot history for assessment 42
  prism report list 42`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := parseAssessmentID(args[0])
		if err != nil {
			contract.LogFatal("Invalid assessment id", err)
		}
		if err := core.ExecuteReportList(rootCtx, cfg, iostore.Manager, id); err != nil {
			contract.LogFatal("Cannot list reports", err)
		}
	},
}
