package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakline/prism/schema"
)

// TestSynthesizeDefaultWeightsEqual checks the no-context default vector.
func TestSynthesizeDefaultWeightsEqual(t *testing.T) {
	w := SynthesizeDefaultWeights(7, "", "")

	assert.Equal(t, int64(7), w.OrganizationID)
	assert.InDelta(t, schema.DefaultComponentWeight, w.AdoptionRate, 0.001)
	assert.InDelta(t, schema.DefaultComponentWeight, w.TimeSaved, 0.001)
	assert.InDelta(t, schema.DefaultComponentWeight, w.CostEfficiency, 0.001)
	assert.InDelta(t, schema.DefaultComponentWeight, w.PerformanceImprovement, 0.001)
	assert.InDelta(t, schema.DefaultComponentWeight, w.ToolSprawlReduction, 0.001)
	assert.InDelta(t, 1.0, w.Sum(), 0.001)
}

// TestSynthesizeDefaultWeightsBlended checks every blend sums to 1.0 and
// that profile emphasis survives renormalization.
func TestSynthesizeDefaultWeightsBlended(t *testing.T) {
	for industry := range schema.IndustryWeightProfiles {
		for stage := range schema.CompanyStageWeightProfiles {
			w := SynthesizeDefaultWeights(1, industry, stage)
			assert.InDelta(t, 1.0, w.Sum(), 0.01, "industry=%s stage=%s", industry, stage)
		}
	}

	// Unknown industry and stage fall back rather than zeroing out.
	w := SynthesizeDefaultWeights(1, "Interstellar Mining", "Pre-seed")
	assert.InDelta(t, 1.0, w.Sum(), 0.01)

	// An industry-only context still blends against the fallback stage.
	industryOnly := SynthesizeDefaultWeights(1, "Healthcare", "")
	assert.InDelta(t, 1.0, industryOnly.Sum(), 0.01)
}

func TestResolveOrganizationWeightsStored(t *testing.T) {
	store := newFakeWeightsStore()
	stored := schema.OrganizationScoreWeights{
		OrganizationID: 3,
		AdoptionRate:   0.4, TimeSaved: 0.3, CostEfficiency: 0.1,
		PerformanceImprovement: 0.1, ToolSprawlReduction: 0.1,
	}
	store.rows[3] = stored

	w, err := ResolveOrganizationWeights(context.Background(), store, 3, "Healthcare", "Growth")
	assert.NoError(t, err)
	assert.Equal(t, stored, w)
	assert.Zero(t, store.ensures, "a stored vector must not trigger a write")
}

func TestResolveOrganizationWeightsFirstAccess(t *testing.T) {
	store := newFakeWeightsStore()

	w, err := ResolveOrganizationWeights(context.Background(), store, 9, "Technology", "Startup")
	assert.NoError(t, err)
	assert.Equal(t, int64(9), w.OrganizationID)
	assert.InDelta(t, 1.0, w.Sum(), 0.01)
	assert.Equal(t, 1, store.ensures)

	// The second resolve reads the persisted row back.
	again, err := ResolveOrganizationWeights(context.Background(), store, 9, "Technology", "Startup")
	assert.NoError(t, err)
	assert.Equal(t, w, again)
	assert.Equal(t, 1, store.ensures)
}

func TestResolveOrganizationWeightsConcurrentFirstAccess(t *testing.T) {
	store := newFakeWeightsStore()

	results := make(chan schema.OrganizationScoreWeights, 8)
	for range 8 {
		go func() {
			w, err := ResolveOrganizationWeights(context.Background(), store, 5, "Retail", "Mature")
			assert.NoError(t, err)
			results <- w
		}()
	}

	first := <-results
	for range 7 {
		assert.Equal(t, first, <-results, "all racers must observe the same row")
	}
	assert.Len(t, store.rows, 1)
}
