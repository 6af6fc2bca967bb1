package core

import "github.com/oakline/prism/schema"

// ClassifyValue buckets a value score into its ordinal level.
func ClassifyValue(score float64) schema.Level {
	switch {
	case score >= schema.ValueHighMin:
		return schema.HighLevel
	case score >= schema.ValueMediumMin:
		return schema.MediumLevel
	default:
		return schema.LowLevel
	}
}

// ClassifyEffort buckets an effort score into its ordinal level. The
// thresholds are intentionally not symmetric with the value thresholds.
func ClassifyEffort(score float64) schema.Level {
	switch {
	case score <= schema.EffortLowMax:
		return schema.LowLevel
	case score <= schema.EffortMediumMax:
		return schema.MediumLevel
	default:
		return schema.HighLevel
	}
}
