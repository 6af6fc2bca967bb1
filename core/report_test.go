package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

func newTestOrchestrator(stores *fakeStoreManager) *Orchestrator {
	cfg := testConfig()
	cfg.FetchAttempts = schema.DefaultFetchAttempts
	cfg.FetchRetryDelay = schema.DefaultFetchRetryDelayMS * time.Millisecond

	o := NewOrchestrator(cfg, stores)
	o.newID = func() string { return "snap-1" }
	o.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	o.sleep = func(context.Context, time.Duration) error { return nil }
	return o
}

func seedAssessment(stores *fakeStoreManager) *schema.Assessment {
	a := &schema.Assessment{
		ID:             42,
		OrganizationID: 7,
		Title:          "Pilot Intake",
		Industry:       "Technology",
		CompanyStage:   "Growth",
		Status:         schema.SubmittedStatus,
		StepData:       sampleStep(),
	}
	stores.assessments.assessments[42] = a
	return a
}

func TestComputePrioritizationFullRun(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	o := newTestOrchestrator(stores)

	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "snap-1", snap.ID)
	assert.Equal(t, int64(42), snap.AssessmentID)
	assert.Len(t, snap.RankedItems, 3)
	assert.Equal(t, 3, snap.Heatmap.ItemCount())
	assert.NotEmpty(t, snap.ExecutiveSummary)
	assert.NotEmpty(t, snap.AdoptionScore.Summary)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), snap.GeneratedAt)

	// The run persisted the snapshot and completed the assessment.
	assert.Len(t, stores.reports.snaps[42], 1)
	assert.Equal(t, schema.CompletedStatus, stores.assessments.statuses[42])

	// First access synthesized and stored the organization's weights.
	assert.Len(t, stores.weights.rows, 1)
}

func TestComputePrioritizationCached(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	o := newTestOrchestrator(stores)

	first, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)

	// Without NoCache the existing snapshot is returned untouched and no
	// store traffic beyond the cache read happens.
	fetches := stores.assessments.fetchCalls
	second, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, fetches, stores.assessments.fetchCalls)
	assert.Len(t, stores.reports.snaps[42], 1)
}

func TestComputePrioritizationNoCacheAppends(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	o := newTestOrchestrator(stores)

	_, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)

	o.newID = func() string { return "snap-regen" }
	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, "snap-regen", snap.ID)

	// Regeneration appends; the first snapshot survives.
	require.Len(t, stores.reports.snaps[42], 2)
	assert.Equal(t, "snap-1", stores.reports.snaps[42][0].ID)
}

func TestComputePrioritizationNotFound(t *testing.T) {
	stores := newFakeStoreManager()
	o := newTestOrchestrator(stores)

	_, err := o.ComputePrioritization(context.Background(), 99, ComputeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrAssessmentNotFound)

	// A terminal error is never retried.
	assert.Equal(t, 1, stores.assessments.fetchCalls)
}

func TestComputePrioritizationTransientRetry(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	flaky := contract.Transient(errors.New("connection reset"))
	stores.assessments.fetchErrs = []error{flaky, flaky, nil}
	o := newTestOrchestrator(stores)

	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, 3, stores.assessments.fetchCalls)
}

func TestComputePrioritizationRetryExhausted(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	flaky := contract.Transient(errors.New("connection reset"))
	stores.assessments.fetchErrs = []error{flaky, flaky, flaky, flaky}
	o := newTestOrchestrator(stores)

	slept := 0
	o.sleep = func(context.Context, time.Duration) error { slept++; return nil }

	_, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.Error(t, err)
	assert.True(t, contract.IsTransient(err))
	assert.Equal(t, schema.DefaultFetchAttempts, stores.assessments.fetchCalls)
	assert.Equal(t, schema.DefaultFetchAttempts-1, slept)
	assert.Empty(t, stores.reports.snaps[42])
}

func TestComputePrioritizationEmptyAssessment(t *testing.T) {
	stores := newFakeStoreManager()
	a := seedAssessment(stores)
	a.StepData = nil
	o := newTestOrchestrator(stores)

	_, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrAssessmentEmpty)
}

func TestComputePrioritizationBackfillsResponses(t *testing.T) {
	stores := newFakeStoreManager()
	a := seedAssessment(stores)
	a.StepData = nil
	stores.assessments.responses[42] = []schema.AssessmentResponse{
		{QuestionIdentifier: "roles.selected_roles", JSON: []byte(`[{"id":1,"title":"Dispatcher","department":"Logistics"}]`)},
		{QuestionIdentifier: "tech_stack.data_quality", Numeric: ptr(4)},
	}
	o := newTestOrchestrator(stores)

	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	require.Len(t, snap.RankedItems, 1)
	assert.Equal(t, "Dispatcher", snap.RankedItems[0].Name)
	assert.InDelta(t, 2.0, snap.RankedItems[0].EffortScore, 0.001)
}

func TestComputePrioritizationPersistFailure(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	stores.reports.createErr = errors.New("disk full")
	o := newTestOrchestrator(stores)

	_, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist")

	// No status transition on a failed persist.
	assert.Empty(t, stores.assessments.statuses)
}

func TestComputePrioritizationStatusFailureIsNonFatal(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	stores.assessments.updateStatusErr = errors.New("row locked")
	o := newTestOrchestrator(stores)

	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Len(t, stores.reports.snaps[42], 1)
}

func TestComputePrioritizationCacheReadFailureFallsThrough(t *testing.T) {
	stores := newFakeStoreManager()
	seedAssessment(stores)
	stores.reports.latestErr = errors.New("table missing")
	o := newTestOrchestrator(stores)

	snap, err := o.ComputePrioritization(context.Background(), 42, ComputeOptions{})
	require.NoError(t, err)
	assert.NotNil(t, snap)
}
