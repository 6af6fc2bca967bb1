package schema

// Scoring constants. The classification thresholds are deliberately
// asymmetric around the 1-5 midpoint; they are part of the report's output
// contract and must not be re-derived.
const (
	// MinScore and MaxScore bound both value and effort scores.
	MinScore = 1.0
	MaxScore = 5.0

	// DefaultRating substitutes for any unanswered 1-5 survey rating.
	DefaultRating = 3.0

	// ValueScoreMultiplier stretches the 1-5 rating mean onto the value scale.
	ValueScoreMultiplier = 1.6667

	// Value-level thresholds (inclusive lower bounds).
	ValueHighMin   = 4.0
	ValueMediumMin = 3.0

	// Effort-level thresholds (inclusive upper bounds).
	EffortLowMax    = 2.5
	EffortMediumMax = 3.8
)

// Weight constants.
const (
	// DefaultComponentWeight is the equal weight used when no profile or
	// stored vector exists for an organization.
	DefaultComponentWeight = 0.2

	// WeightSumTolerance is the write-time tolerance on the sum-to-1.0
	// invariant for organization weight vectors.
	WeightSumTolerance = 0.05
)

// Adoption-score normalization bounds. Percentages map directly onto 0-100;
// absolute inputs are scaled against a reference figure.
const (
	// DefaultTimeSavedReferenceHours is the hours-saved-per-user-per-week
	// figure that maps to a 100 component score.
	DefaultTimeSavedReferenceHours = 10.0

	// DefaultCostEfficiencyReference is the annual cost-efficiency gain
	// amount that maps to a 100 component score.
	DefaultCostEfficiencyReference = 100000.0

	// Tool sprawl is naturally bounded on a [-2, 2] scale.
	ToolSprawlMin = -2.0
	ToolSprawlMax = 2.0
)

// ComponentWeights is a standalone weight vector, detached from any
// organization row. Used for industry and company-stage profiles.
type ComponentWeights struct {
	AdoptionRate           float64
	TimeSaved              float64
	CostEfficiency         float64
	PerformanceImprovement float64
	ToolSprawlReduction    float64
}

// Sum returns the total of the five weights.
func (w ComponentWeights) Sum() float64 {
	return w.AdoptionRate + w.TimeSaved + w.CostEfficiency +
		w.PerformanceImprovement + w.ToolSprawlReduction
}

// DefaultWeights returns the equal-weight vector (0.2 each). The sum is
// exactly 1.0; engine-synthesized defaults must never need tolerance.
func DefaultWeights() ComponentWeights {
	return ComponentWeights{
		AdoptionRate:           DefaultComponentWeight,
		TimeSaved:              DefaultComponentWeight,
		CostEfficiency:         DefaultComponentWeight,
		PerformanceImprovement: DefaultComponentWeight,
		ToolSprawlReduction:    DefaultComponentWeight,
	}
}

// IndustryWeightProfiles are the per-industry emphasis vectors. They are
// blended with a company-stage profile and renormalized before use, so the
// raw vectors here need not sum to 1.0 on their own.
var IndustryWeightProfiles = map[string]ComponentWeights{
	"Software & Technology": {0.25, 0.20, 0.15, 0.25, 0.05},
	"Finance & Banking":     {0.15, 0.15, 0.30, 0.25, 0.15},
	"Healthcare":            {0.20, 0.15, 0.20, 0.30, 0.15},
	"Retail & E-commerce":   {0.15, 0.15, 0.25, 0.25, 0.20},
	"Manufacturing":         {0.15, 0.15, 0.30, 0.25, 0.15},
	"Education":             {0.20, 0.30, 0.15, 0.20, 0.15},
	"Professional Services": {0.15, 0.30, 0.20, 0.25, 0.10},
	"Media & Entertainment": {0.20, 0.20, 0.10, 0.30, 0.20},
	"Other":                 {0.20, 0.20, 0.20, 0.20, 0.20},
}

// CompanyStageWeightProfiles are the per-stage emphasis vectors.
var CompanyStageWeightProfiles = map[string]ComponentWeights{
	"Startup":      {0.20, 0.30, 0.10, 0.20, 0.10},
	"Early Growth": {0.20, 0.25, 0.10, 0.20, 0.10},
	"Scaling":      {0.15, 0.20, 0.20, 0.15, 0.10},
	"Mature":       {0.10, 0.15, 0.30, 0.10, 0.15},
}

// Blend ratio between industry and company-stage profiles.
const (
	IndustryBlendShare = 0.6
	StageBlendShare    = 0.4
)

// FallbackIndustry and FallbackStage are used when a caller supplies an
// industry or stage that has no profile.
const (
	FallbackIndustry = "Other"
	FallbackStage    = "Mature"
)

// Report orchestration defaults.
const (
	// DefaultFetchAttempts is the retry budget for the assessment fetch.
	// Transient store failures within the budget are retried; everything
	// else surfaces immediately.
	DefaultFetchAttempts = 3

	// DefaultFetchRetryDelayMS is the fixed delay between fetch attempts,
	// in milliseconds.
	DefaultFetchRetryDelayMS = 250
)
