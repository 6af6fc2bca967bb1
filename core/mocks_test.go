package core

import (
	"context"
	"sync"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// fakeAssessmentStore is an in-memory AssessmentStore with a programmable
// failure sequence for retry tests.
type fakeAssessmentStore struct {
	mu          sync.Mutex
	assessments map[int64]*schema.Assessment
	responses   map[int64][]schema.AssessmentResponse
	statuses    map[int64]schema.AssessmentStatus

	// fetchErrs is consumed one error per GetAssessment call; a nil entry
	// means that call succeeds.
	fetchErrs  []error
	fetchCalls int

	updateStatusErr error
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{
		assessments: make(map[int64]*schema.Assessment),
		responses:   make(map[int64][]schema.AssessmentResponse),
		statuses:    make(map[int64]schema.AssessmentStatus),
	}
}

func (s *fakeAssessmentStore) GetAssessment(_ context.Context, id int64) (*schema.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := s.fetchCalls
	s.fetchCalls++
	if call < len(s.fetchErrs) && s.fetchErrs[call] != nil {
		return nil, s.fetchErrs[call]
	}

	a, ok := s.assessments[id]
	if !ok {
		return nil, contract.ErrAssessmentNotFound
	}
	return a, nil
}

func (s *fakeAssessmentStore) GetResponses(_ context.Context, id int64) ([]schema.AssessmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responses[id], nil
}

func (s *fakeAssessmentStore) UpdateStatus(_ context.Context, id int64, status schema.AssessmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateStatusErr != nil {
		return s.updateStatusErr
	}
	s.statuses[id] = status
	return nil
}

// fakeWeightsStore is an in-memory WeightsStore.
type fakeWeightsStore struct {
	mu      sync.Mutex
	rows    map[int64]schema.OrganizationScoreWeights
	getErr  error
	ensures int
}

func newFakeWeightsStore() *fakeWeightsStore {
	return &fakeWeightsStore{rows: make(map[int64]schema.OrganizationScoreWeights)}
}

func (s *fakeWeightsStore) GetWeights(_ context.Context, orgID int64) (*schema.OrganizationScoreWeights, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if w, ok := s.rows[orgID]; ok {
		return &w, nil
	}
	return nil, nil
}

func (s *fakeWeightsStore) UpsertWeights(_ context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	if err := contract.ValidateWeights(w); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[w.OrganizationID] = w
	return &w, nil
}

func (s *fakeWeightsStore) EnsureWeights(_ context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensures++
	if stored, ok := s.rows[w.OrganizationID]; ok {
		return &stored, nil
	}
	s.rows[w.OrganizationID] = w
	return &w, nil
}

// fakeReportStore is an in-memory append-only ReportStore.
type fakeReportStore struct {
	mu        sync.Mutex
	snaps     map[int64][]schema.ReportSnapshot
	createErr error
	latestErr error
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{snaps: make(map[int64][]schema.ReportSnapshot)}
}

func (s *fakeReportStore) CreateReport(_ context.Context, snap *schema.ReportSnapshot) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return "", s.createErr
	}
	s.snaps[snap.AssessmentID] = append(s.snaps[snap.AssessmentID], *snap)
	return snap.ID, nil
}

func (s *fakeReportStore) GetLatestReport(_ context.Context, assessmentID int64) (*schema.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	list := s.snaps[assessmentID]
	if len(list) == 0 {
		return nil, nil
	}
	latest := list[len(list)-1]
	return &latest, nil
}

func (s *fakeReportStore) ListReports(_ context.Context, assessmentID int64) ([]schema.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.snaps[assessmentID]
	out := make([]schema.ReportSnapshot, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// fakeStoreManager bundles the fakes behind the StoreManager contract.
type fakeStoreManager struct {
	assessments *fakeAssessmentStore
	weights     *fakeWeightsStore
	reports     *fakeReportStore
}

func newFakeStoreManager() *fakeStoreManager {
	return &fakeStoreManager{
		assessments: newFakeAssessmentStore(),
		weights:     newFakeWeightsStore(),
		reports:     newFakeReportStore(),
	}
}

func (m *fakeStoreManager) Assessments() contract.AssessmentStore { return m.assessments }
func (m *fakeStoreManager) Weights() contract.WeightsStore        { return m.weights }
func (m *fakeStoreManager) Reports() contract.ReportStore         { return m.reports }
func (m *fakeStoreManager) Close() error                          { return nil }
