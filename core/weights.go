package core

import (
	"context"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// ResolveOrganizationWeights returns the stored weight vector for an
// organization, synthesizing and persisting defaults on first access. This
// is the only place the engine writes as a side effect of a read; the write
// goes through the store's insert-on-conflict-do-nothing primitive so
// concurrent first-reads leave exactly one row.
//
// Default synthesis: with an industry and/or company stage supplied, the
// industry profile is blended 60/40 with the stage profile and renormalized
// to sum exactly 1.0; otherwise the equal 0.2 vector applies.
func ResolveOrganizationWeights(ctx context.Context, store contract.WeightsStore, orgID int64, industry, companyStage string) (schema.OrganizationScoreWeights, error) {
	stored, err := store.GetWeights(ctx, orgID)
	if err != nil {
		return schema.OrganizationScoreWeights{}, err
	}
	if stored != nil {
		return *stored, nil
	}

	defaults := SynthesizeDefaultWeights(orgID, industry, companyStage)
	persisted, err := store.EnsureWeights(ctx, defaults)
	if err != nil {
		return schema.OrganizationScoreWeights{}, err
	}
	return *persisted, nil
}

// SynthesizeDefaultWeights builds the default vector for an organization
// that has none stored yet.
func SynthesizeDefaultWeights(orgID int64, industry, companyStage string) schema.OrganizationScoreWeights {
	var cw schema.ComponentWeights
	if industry == "" && companyStage == "" {
		cw = schema.DefaultWeights()
	} else {
		cw = blendProfiles(industry, companyStage)
	}
	return schema.OrganizationScoreWeights{
		OrganizationID:         orgID,
		AdoptionRate:           cw.AdoptionRate,
		TimeSaved:              cw.TimeSaved,
		CostEfficiency:         cw.CostEfficiency,
		PerformanceImprovement: cw.PerformanceImprovement,
		ToolSprawlReduction:    cw.ToolSprawlReduction,
	}
}

// blendProfiles mixes the industry and company-stage emphasis vectors and
// renormalizes, since the raw profiles do not all sum to 1.0.
func blendProfiles(industry, companyStage string) schema.ComponentWeights {
	ind, ok := schema.IndustryWeightProfiles[industry]
	if !ok {
		ind = schema.IndustryWeightProfiles[schema.FallbackIndustry]
	}
	stage, ok := schema.CompanyStageWeightProfiles[companyStage]
	if !ok {
		stage = schema.CompanyStageWeightProfiles[schema.FallbackStage]
	}

	blended := schema.ComponentWeights{
		AdoptionRate:           schema.IndustryBlendShare*ind.AdoptionRate + schema.StageBlendShare*stage.AdoptionRate,
		TimeSaved:              schema.IndustryBlendShare*ind.TimeSaved + schema.StageBlendShare*stage.TimeSaved,
		CostEfficiency:         schema.IndustryBlendShare*ind.CostEfficiency + schema.StageBlendShare*stage.CostEfficiency,
		PerformanceImprovement: schema.IndustryBlendShare*ind.PerformanceImprovement + schema.StageBlendShare*stage.PerformanceImprovement,
		ToolSprawlReduction:    schema.IndustryBlendShare*ind.ToolSprawlReduction + schema.StageBlendShare*stage.ToolSprawlReduction,
	}

	sum := blended.Sum()
	if sum == 0 {
		return schema.DefaultWeights()
	}
	return schema.ComponentWeights{
		AdoptionRate:           blended.AdoptionRate / sum,
		TimeSaved:              blended.TimeSaved / sum,
		CostEfficiency:         blended.CostEfficiency / sum,
		PerformanceImprovement: blended.PerformanceImprovement / sum,
		ToolSprawlReduction:    blended.ToolSprawlReduction / sum,
	}
}
