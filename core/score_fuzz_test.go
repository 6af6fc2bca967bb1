package core

import (
	"testing"

	"github.com/oakline/prism/schema"
)

// FuzzComputeValueScore fuzzes the value formula with random ratings and
// checks the bounded-output invariant.
func FuzzComputeValueScore(f *testing.F) {
	seeds := []struct {
		severity, frequency, impact float64
	}{
		{5, 5, 5},
		{1, 1, 1},
		{0, 0, 0}, // unanswered
		{3, 2, 4},
		{-10, 100, 0.5},
	}
	for _, seed := range seeds {
		f.Add(seed.severity, seed.frequency, seed.impact)
	}

	f.Fuzz(func(t *testing.T, severity, frequency, impact float64) {
		score := ComputeValueScore(schema.PainPointRating{
			Severity:  severity,
			Frequency: frequency,
			Impact:    impact,
		})
		if score < schema.MinScore || score > schema.MaxScore {
			t.Fatalf("value score %v out of [1,5] for (%v, %v, %v)", score, severity, frequency, impact)
		}
		level := ClassifyValue(score)
		if level != schema.HighLevel && level != schema.MediumLevel && level != schema.LowLevel {
			t.Fatalf("unclassifiable value score %v", score)
		}
	})
}

// FuzzComputeEffortScore checks effort scores stay bounded and classifiable
// for arbitrary data-quality inputs.
func FuzzComputeEffortScore(f *testing.F) {
	for _, seed := range []float64{1, 3, 5, 0, -2, 99, 2.5001} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, dataQuality float64) {
		score := ComputeEffortScore(dataQuality)
		if score < schema.MinScore || score > schema.MaxScore {
			t.Fatalf("effort score %v out of [1,5] for quality %v", score, dataQuality)
		}
		if _, err := ResolvePriority(schema.HighLevel, ClassifyEffort(score)); err != nil {
			t.Fatalf("effort score %v produced an unresolvable level", score)
		}
	})
}
