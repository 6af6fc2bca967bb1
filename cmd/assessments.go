package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
)

// assessmentsCmd groups assessment data management.
var assessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Import and list assessment questionnaires",
	Long: `Import and list the assessment questionnaires the engine scores.

An assessment holds the submitted step data (selected roles, pain-point
ratings, work volume, tech stack, adoption and ROI inputs) plus optional
per-question responses used to backfill step data when the wizard was
answered question-by-question.

Subcommands:
  import - Load an assessment document from a JSON file
  list   - List stored assessments`,
}

// assessmentsImportCmd loads an assessment document from a JSON file.
var assessmentsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an assessment from a JSON document",
	Long: `Import an assessment (and optionally its raw responses) from JSON.

The document has the shape:

  {
    "assessment": { "organization_id": 7, "title": "...", "step_data": {...} },
    "responses":  [ { "question_identifier": "tech_stack.data_quality", ... } ]
  }

An assessment id of zero lets the store allocate the next one.

Examples:
  # Import a submitted questionnaire
  prism assessments import assessment.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := iostore.ExecuteAssessmentImport(rootCtx, args[0]); err != nil {
			contract.LogFatal("Cannot import assessment", err)
		}
	},
}

// assessmentsListCmd lists stored assessments.
var assessmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assessments",
	Long: `List every stored assessment, newest first.

Shows id, organization, title, industry, company stage and status.
Step data is not loaded for the listing.

Examples:
  # List all assessments
  prism assessments list

  # As JSON for scripting
  prism assessments list --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteAssessmentsList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list assessments", err)
		}
	},
}
