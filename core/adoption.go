package core

import (
	"math"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// ComputeAdoptionScore combines the five normalized component metrics into
// the composite 0-100 adoption score using the given weight vector.
// Percentage inputs map directly onto 0-100; absolute inputs are scaled
// against the configured reference figures; tool sprawl keeps its native
// [-2,2] reading but contributes its linearly rescaled 0-100 equivalent to
// the weighted sum. Absent inputs are treated as zero (tool sprawl's zero
// is the neutral midpoint).
func ComputeAdoptionScore(inputs *schema.AdoptionInputs, w schema.OrganizationScoreWeights, cfg *contract.Config) schema.AdoptionScoreResult {
	if inputs == nil {
		inputs = &schema.AdoptionInputs{}
	}

	adoption := percentComponent(deref(inputs.AdoptionRateForecast), w.AdoptionRate)
	timeSaved := scaledComponent(deref(inputs.TimeSavedHoursPerUser), cfg.TimeSavedReferenceHours, w.TimeSaved)
	costEff := scaledComponent(deref(inputs.CostEfficiencyGainsAmount), cfg.CostEfficiencyReference, w.CostEfficiency)
	perf := percentComponent(deref(inputs.PerformanceImprovementPct), w.PerformanceImprovement)
	sprawl := toolSprawlComponent(deref(inputs.ToolSprawlScore), w.ToolSprawlReduction)

	composite := adoption.Weighted + timeSaved.Weighted + costEff.Weighted +
		perf.Weighted + sprawl.Weighted

	return schema.AdoptionScoreResult{
		Score:                  clamp(math.Round(composite), 0, 100),
		AdoptionRate:           adoption,
		TimeSaved:              timeSaved,
		CostEfficiency:         costEff,
		PerformanceImprovement: perf,
		ToolSprawl:             sprawl,
	}
}

// percentComponent normalizes a percentage metric.
func percentComponent(input, weight float64) schema.AdoptionComponent {
	normalized := clamp(input, 0, 100)
	return schema.AdoptionComponent{
		Input:      input,
		Normalized: normalized,
		Weighted:   normalized * weight,
	}
}

// scaledComponent normalizes an absolute metric against a reference figure
// that maps to a 100 component score.
func scaledComponent(input, reference, weight float64) schema.AdoptionComponent {
	normalized := clamp(input/reference*100, 0, 100)
	return schema.AdoptionComponent{
		Input:      input,
		Normalized: normalized,
		Weighted:   normalized * weight,
	}
}

// toolSprawlComponent keeps the native [-2,2] reading in Input and rescales
// it to 0-100 for the weighted sum.
func toolSprawlComponent(input, weight float64) schema.AdoptionComponent {
	native := clamp(input, schema.ToolSprawlMin, schema.ToolSprawlMax)
	normalized := (native - schema.ToolSprawlMin) / (schema.ToolSprawlMax - schema.ToolSprawlMin) * 100
	return schema.AdoptionComponent{
		Input:      native,
		Normalized: normalized,
		Weighted:   normalized * weight,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
