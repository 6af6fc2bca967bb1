package core

import (
	"context"
	"fmt"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/outwriter"
	"github.com/oakline/prism/schema"
)

// ExecuteReportGenerate runs the scoring pipeline for one assessment and
// prints the resulting report. It serves as the entry point for the
// 'report generate' command.
func ExecuteReportGenerate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, assessmentID int64, noCache bool) error {
	o := NewOrchestrator(cfg, mgr)
	snap, err := o.ComputePrioritization(ctx, assessmentID, ComputeOptions{NoCache: noCache})
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(snap, cfg)
}

// ExecuteReportShow prints the latest stored snapshot for an assessment
// without computing anything.
func ExecuteReportShow(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, assessmentID int64) error {
	snap, err := mgr.Reports().GetLatestReport(ctx, assessmentID)
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("no report snapshot exists for assessment %d; run 'prism report generate' first", assessmentID)
	}
	return outwriter.NewOutWriter().WriteReport(snap, cfg)
}

// ExecuteReportList prints the snapshot history for an assessment, newest
// first.
func ExecuteReportList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, assessmentID int64) error {
	snaps, err := mgr.Reports().ListReports(ctx, assessmentID)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReportList(snaps, cfg)
}

// ExecuteWeightsGet resolves the weight vector for an organization and
// prints it. When no vector is stored, the synthesized default is persisted
// as a side effect.
func ExecuteWeightsGet(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, orgID int64, industry, companyStage string) error {
	weights, err := ResolveOrganizationWeights(ctx, mgr.Weights(), orgID, industry, companyStage)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteWeights(&weights, cfg)
}

// ExecuteWeightsSet stores the given weight vector and prints the persisted
// row.
func ExecuteWeightsSet(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w schema.OrganizationScoreWeights) error {
	stored, err := mgr.Weights().UpsertWeights(ctx, w)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteWeights(stored, cfg)
}
