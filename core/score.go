package core

import (
	"math"

	"github.com/oakline/prism/schema"
)

// ComputeValueScore converts per-item pain-point ratings into a 1-5 value
// score. Value rises with severity, frequency and impact; the multiplier
// stretches the 1-5 rating mean so that all-fives saturate the scale.
// Unanswered ratings (zero) default to the scale midpoint.
func ComputeValueScore(r schema.PainPointRating) float64 {
	severity := defaultRating(r.Severity)
	frequency := defaultRating(r.Frequency)
	impact := defaultRating(r.Impact)

	mean := (severity + frequency + impact) / 3
	return clamp(round10(mean*schema.ValueScoreMultiplier), schema.MinScore, schema.MaxScore)
}

// ComputeEffortScore converts a data-quality rating into a 1-5 effort
// score. Effort is inversely tied to data readiness: higher data quality
// implies lower implementation effort.
func ComputeEffortScore(dataQuality float64) float64 {
	dq := defaultRating(dataQuality)
	return clamp(round10(6-dq), schema.MinScore, schema.MaxScore)
}

// DeriveDataQuality resolves the assessment's global data-quality rating.
// A direct rating wins; otherwise one is derived from the number of
// available data sources; with neither, the scale midpoint applies.
func DeriveDataQuality(tech *schema.TechStackStep) float64 {
	if tech == nil {
		return schema.DefaultRating
	}
	if tech.DataQuality > 0 {
		return clamp(tech.DataQuality, schema.MinScore, schema.MaxScore)
	}
	if n := len(tech.DataAvailability); n > 0 {
		return clamp(float64(n)+1, schema.MinScore, schema.MaxScore)
	}
	return schema.DefaultRating
}

// defaultRating substitutes the midpoint for unanswered ratings and clamps
// out-of-range answers instead of rejecting them. NaN reads as unanswered.
func defaultRating(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return schema.DefaultRating
	}
	return clamp(v, schema.MinScore, schema.MaxScore)
}
