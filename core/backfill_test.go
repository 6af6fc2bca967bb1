package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/prism/schema"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBackfillStepDataNoResponses(t *testing.T) {
	existing := sampleStep()
	merged, err := BackfillStepData(existing, nil)
	assert.NoError(t, err)
	assert.Same(t, existing, merged)
}

func TestBackfillStepDataFromScratch(t *testing.T) {
	responses := []schema.AssessmentResponse{
		{QuestionIdentifier: "tech_stack.data_quality", Numeric: ptr(4)},
		{QuestionIdentifier: "roles.selected_roles", JSON: json.RawMessage(`[{"id":10,"title":"Support Agent","department":"CS"}]`)},
		{QuestionIdentifier: "pain_points.role_specific_pain_points.10", JSON: json.RawMessage(`{"severity":5,"frequency":4,"impact":3}`)},
	}

	merged, err := BackfillStepData(nil, responses)
	require.NoError(t, err)
	require.NotNil(t, merged)

	require.NotNil(t, merged.TechStack)
	assert.InDelta(t, 4, merged.TechStack.DataQuality, 0.001)

	require.NotNil(t, merged.Roles)
	require.Len(t, merged.Roles.SelectedRoles, 1)
	assert.Equal(t, "Support Agent", merged.Roles.SelectedRoles[0].Title)

	require.NotNil(t, merged.PainPoints)
	rating := merged.PainPoints.RoleSpecificPainPoints["10"]
	assert.InDelta(t, 5, rating.Severity, 0.001)
	assert.InDelta(t, 4, rating.Frequency, 0.001)
	assert.InDelta(t, 3, rating.Impact, 0.001)
}

func TestBackfillStepDataOverridesExisting(t *testing.T) {
	existing := sampleStep()
	responses := []schema.AssessmentResponse{
		{QuestionIdentifier: "tech_stack.data_quality", Numeric: ptr(5)},
	}

	merged, err := BackfillStepData(existing, responses)
	require.NoError(t, err)
	assert.InDelta(t, 5, merged.TechStack.DataQuality, 0.001)

	// Untouched sections survive the merge.
	require.NotNil(t, merged.Roles)
	assert.Len(t, merged.Roles.SelectedRoles, 3)
}

func TestBackfillStepDataLastResponseWins(t *testing.T) {
	responses := []schema.AssessmentResponse{
		{QuestionIdentifier: "tech_stack.data_quality", Numeric: ptr(2)},
		{QuestionIdentifier: "tech_stack.data_quality", Numeric: ptr(4)},
	}

	merged, err := BackfillStepData(nil, responses)
	require.NoError(t, err)
	assert.InDelta(t, 4, merged.TechStack.DataQuality, 0.001)
}

func TestBackfillStepDataSkipsUnusable(t *testing.T) {
	responses := []schema.AssessmentResponse{
		{QuestionIdentifier: "", Numeric: ptr(1)},
		{QuestionIdentifier: "tech_stack.notes", Text: strPtr("mostly spreadsheets")},
		{QuestionIdentifier: "work_volume.automatable", Boolean: boolPtr(true)},
		{QuestionIdentifier: "roles.selected_roles", JSON: json.RawMessage(`{broken`)},
		{QuestionIdentifier: "tech_stack.data_quality"},
	}

	merged, err := BackfillStepData(nil, responses)
	require.NoError(t, err)
	require.NotNil(t, merged)
	// The malformed and empty responses are dropped, not fatal.
	assert.Nil(t, merged.Roles)
}
