// Package outwriter renders report snapshots, weight vectors and assessment
// listings in the configured output format.
package outwriter

import (
	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a report snapshot using the configured output format.
func (ow *OutWriter) WriteReport(snap *schema.ReportSnapshot, cfg *contract.Config) error {
	return PrintReport(snap, cfg)
}

// WriteReportList prints an assessment's snapshot history using the
// configured output format.
func (ow *OutWriter) WriteReportList(snaps []schema.ReportSnapshot, cfg *contract.Config) error {
	return PrintReportList(snaps, cfg)
}

// WriteWeights prints an organization weight vector using the configured
// output format.
func (ow *OutWriter) WriteWeights(w *schema.OrganizationScoreWeights, cfg *contract.Config) error {
	return PrintWeights(w, cfg)
}

// WriteAssessments prints an assessment listing using the configured output
// format.
func (ow *OutWriter) WriteAssessments(assessments []schema.Assessment, cfg *contract.Config) error {
	return PrintAssessments(assessments, cfg)
}
