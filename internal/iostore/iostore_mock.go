package iostore

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// MockAssessmentStore is a mock implementation of AssessmentStore for testing.
type MockAssessmentStore struct {
	mock.Mock
}

var _ contract.AssessmentStore = &MockAssessmentStore{} // Compile-time check

// GetAssessment implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetAssessment(ctx context.Context, id int64) (*schema.Assessment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*schema.Assessment)
	return a, args.Error(1)
}

// GetResponses implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetResponses(ctx context.Context, id int64) ([]schema.AssessmentResponse, error) {
	args := m.Called(ctx, id)
	responses, _ := args.Get(0).([]schema.AssessmentResponse)
	return responses, args.Error(1)
}

// UpdateStatus implements the AssessmentStore interface.
func (m *MockAssessmentStore) UpdateStatus(ctx context.Context, id int64, status schema.AssessmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockWeightsStore is a mock implementation of WeightsStore for testing.
type MockWeightsStore struct {
	mock.Mock
}

var _ contract.WeightsStore = &MockWeightsStore{} // Compile-time check

// GetWeights implements the WeightsStore interface.
func (m *MockWeightsStore) GetWeights(ctx context.Context, orgID int64) (*schema.OrganizationScoreWeights, error) {
	args := m.Called(ctx, orgID)
	w, _ := args.Get(0).(*schema.OrganizationScoreWeights)
	return w, args.Error(1)
}

// UpsertWeights implements the WeightsStore interface.
func (m *MockWeightsStore) UpsertWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	args := m.Called(ctx, w)
	stored, _ := args.Get(0).(*schema.OrganizationScoreWeights)
	return stored, args.Error(1)
}

// EnsureWeights implements the WeightsStore interface.
func (m *MockWeightsStore) EnsureWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	args := m.Called(ctx, w)
	stored, _ := args.Get(0).(*schema.OrganizationScoreWeights)
	return stored, args.Error(1)
}

// MockReportStore is a mock implementation of ReportStore for testing.
type MockReportStore struct {
	mock.Mock
}

var _ contract.ReportStore = &MockReportStore{} // Compile-time check

// CreateReport implements the ReportStore interface.
func (m *MockReportStore) CreateReport(ctx context.Context, snap *schema.ReportSnapshot) (string, error) {
	args := m.Called(ctx, snap)
	return args.String(0), args.Error(1)
}

// GetLatestReport implements the ReportStore interface.
func (m *MockReportStore) GetLatestReport(ctx context.Context, assessmentID int64) (*schema.ReportSnapshot, error) {
	args := m.Called(ctx, assessmentID)
	snap, _ := args.Get(0).(*schema.ReportSnapshot)
	return snap, args.Error(1)
}

// ListReports implements the ReportStore interface.
func (m *MockReportStore) ListReports(ctx context.Context, assessmentID int64) ([]schema.ReportSnapshot, error) {
	args := m.Called(ctx, assessmentID)
	snaps, _ := args.Get(0).([]schema.ReportSnapshot)
	return snaps, args.Error(1)
}

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock

	AssessmentStore *MockAssessmentStore
	WeightsStore    *MockWeightsStore
	ReportStore     *MockReportStore
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// NewMockStoreManager builds a manager with fresh mocks for all stores.
func NewMockStoreManager() *MockStoreManager {
	return &MockStoreManager{
		AssessmentStore: &MockAssessmentStore{},
		WeightsStore:    &MockWeightsStore{},
		ReportStore:     &MockReportStore{},
	}
}

// Assessments implements the StoreManager interface.
func (m *MockStoreManager) Assessments() contract.AssessmentStore { return m.AssessmentStore }

// Weights implements the StoreManager interface.
func (m *MockStoreManager) Weights() contract.WeightsStore { return m.WeightsStore }

// Reports implements the StoreManager interface.
func (m *MockStoreManager) Reports() contract.ReportStore { return m.ReportStore }

// Close implements the StoreManager interface.
func (m *MockStoreManager) Close() error { return nil }
