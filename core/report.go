package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// Pipeline stage names used in terminal error wrapping.
const (
	stageFetch   = "fetch"
	stageInput   = "input"
	stageWeights = "weights"
	stagePersist = "persist"
)

// ComputeOptions control one orchestration run.
type ComputeOptions struct {
	// NoCache forces a fresh computation even when a previous snapshot
	// exists. Input data is never altered either way.
	NoCache bool
}

// Orchestrator sequences the scoring pipeline over a whole assessment and
// persists the result. It is safe for concurrent use: two concurrent runs
// for the same assessment each complete and persist independently (reports
// are append-only; "latest" is last-writer-wins). The orchestrator holds no
// per-assessment lock.
type Orchestrator struct {
	cfg    *contract.Config
	stores contract.StoreManager

	// Injection points for deterministic tests.
	now   func() time.Time
	newID func() string
	sleep func(context.Context, time.Duration) error
}

// NewOrchestrator wires an orchestrator to the given stores.
func NewOrchestrator(cfg *contract.Config, stores contract.StoreManager) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		stores: stores,
		now:    time.Now,
		newID:  uuid.NewString,
		sleep:  sleepCtx,
	}
}

// ComputePrioritization is the orchestrator entry point: load the
// assessment, run the scoring pipeline, persist a new snapshot, and mark
// the assessment completed. Without NoCache, an existing snapshot is
// returned as-is and nothing is recomputed.
func (o *Orchestrator) ComputePrioritization(ctx context.Context, assessmentID int64, opts ComputeOptions) (*schema.ReportSnapshot, error) {
	if !opts.NoCache {
		if snap, err := o.stores.Reports().GetLatestReport(ctx, assessmentID); err == nil && snap != nil {
			return snap, nil
		}
		// A cache-read failure is not worth failing the run for; fall
		// through to a fresh computation.
	}

	assessment, err := o.fetchAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	responses, err := o.stores.Assessments().GetResponses(ctx, assessmentID)
	if err != nil {
		return nil, contract.StageError(stageFetch, assessmentID, err)
	}

	step := assessment.StepData
	if len(responses) > 0 {
		step, err = BackfillStepData(step, responses)
		if err != nil {
			return nil, contract.StageError(stageInput, assessmentID, err)
		}
	}
	if step == nil {
		return nil, contract.StageError(stageInput, assessmentID, contract.ErrAssessmentEmpty)
	}

	items := BuildScoredItems(step)
	matrix, ranked := AssembleMatrix(items)

	weights, err := ResolveOrganizationWeights(ctx, o.stores.Weights(),
		assessment.OrganizationID, assessment.Industry, assessment.CompanyStage)
	if err != nil {
		return nil, contract.StageError(stageWeights, assessmentID, err)
	}

	adoption := ComputeAdoptionScore(step.AdoptionInputs, weights, o.cfg)
	adoption.Summary = schema.AdoptionScoreSummary(adoption.Score, assessment.Industry, assessment.CompanyStage)

	roi := ComputeROI(step.ROIInputs)

	snap := &schema.ReportSnapshot{
		ID:               o.newID(),
		AssessmentID:     assessmentID,
		ExecutiveSummary: BuildExecutiveSummary(assessment, ranked, adoption, roi),
		Heatmap:          matrix,
		RankedItems:      ranked,
		AdoptionScore:    adoption,
		ROI:              roi,
		GeneratedAt:      o.now().UTC(),
	}

	if _, err := o.stores.Reports().CreateReport(ctx, snap); err != nil {
		return nil, contract.StageError(stagePersist, assessmentID, err)
	}

	// The snapshot is already durable at this point; a failed status
	// transition should not fail the run.
	if err := o.stores.Assessments().UpdateStatus(ctx, assessmentID, schema.CompletedStatus); err != nil {
		contract.LogWarn("Failed to mark assessment completed", err)
	}

	return snap, nil
}

// fetchAssessment loads the assessment with a bounded retry on transient
// store failures. The retry budget covers this fetch only, never the rest
// of the pipeline.
func (o *Orchestrator) fetchAssessment(ctx context.Context, assessmentID int64) (*schema.Assessment, error) {
	attempts := o.cfg.FetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		assessment, err := o.stores.Assessments().GetAssessment(ctx, assessmentID)
		if err == nil {
			return assessment, nil
		}
		lastErr = err

		if !contract.IsTransient(err) {
			break
		}
		if attempt < attempts {
			if err := o.sleep(ctx, o.cfg.FetchRetryDelay); err != nil {
				return nil, contract.StageError(stageFetch, assessmentID, err)
			}
		}
	}
	return nil, contract.StageError(stageFetch, assessmentID, lastErr)
}

// sleepCtx waits for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
