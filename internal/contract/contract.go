// Package contract provides interfaces and shared utilities for prism's
// internal architecture.
package contract

import (
	"context"

	"github.com/oakline/prism/schema"
)

// AssessmentStore defines the read side of assessment persistence plus the
// single status transition the engine performs. This allows the orchestrator
// to be tested without a real database.
type AssessmentStore interface {
	// GetAssessment returns the assessment or ErrAssessmentNotFound.
	GetAssessment(ctx context.Context, id int64) (*schema.Assessment, error)

	// GetResponses returns the raw per-question responses for an
	// assessment, used to backfill step data when step submission was
	// skipped. An assessment with no responses returns an empty slice.
	GetResponses(ctx context.Context, id int64) ([]schema.AssessmentResponse, error)

	// UpdateStatus moves the assessment to the given status.
	UpdateStatus(ctx context.Context, id int64, status schema.AssessmentStatus) error
}

// WeightsStore defines persistence for organization score weights.
type WeightsStore interface {
	// GetWeights returns the stored vector for an organization, or
	// (nil, nil) when none exists.
	GetWeights(ctx context.Context, orgID int64) (*schema.OrganizationScoreWeights, error)

	// UpsertWeights stores the vector, replacing any existing row. The
	// implementation must reject vectors violating the sum-to-1.0
	// invariant with ErrInvalidWeights, leaving the stored row untouched.
	UpsertWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error)

	// EnsureWeights inserts the vector only if the organization has none
	// yet (insert-on-conflict-do-nothing), then returns whichever row is
	// stored afterwards. Concurrent first calls for the same organization
	// must leave exactly one row.
	EnsureWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error)
}

// ReportStore defines persistence for report snapshots. Snapshots are
// append-only; there is no update or delete.
type ReportStore interface {
	// CreateReport persists a new snapshot and returns its id.
	CreateReport(ctx context.Context, snap *schema.ReportSnapshot) (string, error)

	// GetLatestReport returns the most recent snapshot for an assessment,
	// or (nil, nil) when none exists.
	GetLatestReport(ctx context.Context, assessmentID int64) (*schema.ReportSnapshot, error)

	// ListReports returns all snapshots for an assessment, newest first.
	ListReports(ctx context.Context, assessmentID int64) ([]schema.ReportSnapshot, error)
}

// StoreManager bundles the three stores behind one handle so commands and
// the orchestrator share a single connection pool.
type StoreManager interface {
	Assessments() AssessmentStore
	Weights() WeightsStore
	Reports() ReportStore
	Close() error
}
