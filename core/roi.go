package core

import "github.com/oakline/prism/schema"

// ComputeROI derives the annual ROI projection. All currency inputs default
// to zero when absent; a zero investment yields a zero ratio rather than a
// propagated NaN or Inf.
func ComputeROI(inputs *schema.ROIInputs) schema.ROIResult {
	if inputs == nil {
		inputs = &schema.ROIInputs{}
	}

	annual := inputs.CostSavings + inputs.AdditionalRevenue

	var ratio float64
	if inputs.AIInvestment > 0 {
		ratio = annual / inputs.AIInvestment
	}

	var payback float64
	if annual > 0 {
		payback = inputs.AIInvestment / annual * 12
	}

	return schema.ROIResult{
		AnnualROI:         annual,
		CostSavings:       inputs.CostSavings,
		AdditionalRevenue: inputs.AdditionalRevenue,
		AIInvestment:      inputs.AIInvestment,
		ROIRatio:          ratio,
		PaybackMonths:     payback,
	}
}
