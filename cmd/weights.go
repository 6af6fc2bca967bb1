package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oakline/prism/core"
	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/iostore"
	"github.com/oakline/prism/schema"
)

// parseOrganizationID parses the positional organization id argument.
func parseOrganizationID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("organization id must be a positive integer, got %q", arg)
	}
	return id, nil
}

// weightsCmd groups adoption-score weight management.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Manage per-organization adoption-score weights",
	Long: `Manage the weight vector used for the composite AI adoption score.

Each organization carries five weights (adoption rate, time saved, cost
efficiency, performance improvement, tool sprawl reduction) that must
sum to 1.0 within a 0.05 tolerance. An organization with no stored
vector gets a default synthesized from its industry and company stage
on first access.

Subcommands:
  get - Resolve (and persist on first access) an organization's vector
  set - Store an explicit vector`,
}

// weightsGetCmd resolves and prints a weight vector.
var weightsGetCmd = &cobra.Command{
	Use:   "get <organization-id>",
	Short: "Resolve the weight vector for an organization",
	Long: `Resolve the adoption-score weight vector for an organization.

When no vector is stored, a default is synthesized by blending the
industry profile (60%) with the company-stage profile (40%) and
renormalizing; with neither supplied, the equal 0.2 vector applies.
The synthesized vector is persisted so later reads are stable.

Examples:
  # Resolve weights for organization 7
  prism weights get 7

  # Synthesize defaults from a profile on first access
  prism weights get 7 --industry "Finance & Banking" --company-stage Scaling`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		orgID, err := parseOrganizationID(args[0])
		if err != nil {
			contract.LogFatal("Invalid organization id", err)
		}
		industry := viper.GetString("industry")
		stage := viper.GetString("company-stage")
		if err := core.ExecuteWeightsGet(rootCtx, cfg, iostore.Manager, orgID, industry, stage); err != nil {
			contract.LogFatal("Cannot resolve weights", err)
		}
	},
}

// weightsSetCmd stores an explicit weight vector.
var weightsSetCmd = &cobra.Command{
	Use:   "set <organization-id>",
	Short: "Store an explicit weight vector for an organization",
	Long: `Store an adoption-score weight vector, replacing any existing one.

The five weights must each lie in [0,1] and sum to 1.0 within a 0.05
tolerance; invalid vectors are rejected and the stored row is left
untouched.

Examples:
  # Emphasize cost efficiency for organization 7
  prism weights set 7 --adoption-rate 0.15 --time-saved 0.15 \
    --cost-efficiency 0.35 --performance-improvement 0.25 \
    --tool-sprawl-reduction 0.10`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		orgID, err := parseOrganizationID(args[0])
		if err != nil {
			contract.LogFatal("Invalid organization id", err)
		}
		w := schema.OrganizationScoreWeights{
			OrganizationID:         orgID,
			AdoptionRate:           viper.GetFloat64("adoption-rate"),
			TimeSaved:              viper.GetFloat64("time-saved"),
			CostEfficiency:         viper.GetFloat64("cost-efficiency"),
			PerformanceImprovement: viper.GetFloat64("performance-improvement"),
			ToolSprawlReduction:    viper.GetFloat64("tool-sprawl-reduction"),
		}
		if err := core.ExecuteWeightsSet(rootCtx, cfg, iostore.Manager, w); err != nil {
			contract.LogFatal("Cannot store weights", err)
		}
	},
}
