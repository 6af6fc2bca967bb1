package iostore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// SQLStoreManager bundles the three stores over one shared connection pool.
type SQLStoreManager struct {
	sync.Mutex

	db      *sql.DB
	backend schema.StoreBackend

	assessments *AssessmentStoreImpl
	weights     *WeightsStoreImpl
	reports     *ReportStoreImpl
}

var _ contract.StoreManager = &SQLStoreManager{} // Compile-time check

// Global manager instance for main logic.
var (
	Manager   = &SQLStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager. The function body runs
// exactly once even with concurrent calls; later calls return the first
// call's error.
func InitStores(backend schema.StoreBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		m, err := NewStoreManager(backend, connStr)
		if err != nil {
			initErr = err
			return
		}
		Manager.db = m.db
		Manager.backend = m.backend
		Manager.assessments = m.assessments
		Manager.weights = m.weights
		Manager.reports = m.reports
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.db != nil {
			_ = Manager.db.Close()
		}
	})
}

// NewStoreManager opens a connection for the backend, runs migrations to the
// latest version, and returns a ready manager. NoneBackend yields a manager
// whose stores hold no data and reject nothing.
func NewStoreManager(backend schema.StoreBackend, connStr string) (*SQLStoreManager, error) {
	if backend == schema.NoneBackend {
		return &SQLStoreManager{backend: backend}, nil
	}

	db, _, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := migrateWithDB(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &SQLStoreManager{
		db:          db,
		backend:     backend,
		assessments: &AssessmentStoreImpl{db: db, backend: backend},
		weights:     &WeightsStoreImpl{db: db, backend: backend},
		reports:     &ReportStoreImpl{db: db, backend: backend},
	}, nil
}

// Assessments implements the StoreManager interface.
func (m *SQLStoreManager) Assessments() contract.AssessmentStore {
	if m.assessments == nil {
		return noopAssessments{}
	}
	return m.assessments
}

// Weights implements the StoreManager interface.
func (m *SQLStoreManager) Weights() contract.WeightsStore {
	if m.weights == nil {
		return noopWeights{}
	}
	return m.weights
}

// Reports implements the StoreManager interface.
func (m *SQLStoreManager) Reports() contract.ReportStore {
	if m.reports == nil {
		return noopReports{}
	}
	return m.reports
}

// Close implements the StoreManager interface.
func (m *SQLStoreManager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// AssessmentsImpl exposes the concrete assessment store for operations
// beyond the engine contract, such as import. Nil for NoneBackend.
func (m *SQLStoreManager) AssessmentsImpl() *AssessmentStoreImpl { return m.assessments }

// ReportsImpl exposes the concrete report store for status and export.
// Nil for NoneBackend.
func (m *SQLStoreManager) ReportsImpl() *ReportStoreImpl { return m.reports }

// Backend returns the configured backend.
func (m *SQLStoreManager) Backend() schema.StoreBackend { return m.backend }

// ClearStore drops the stored data for the given backend. For SQLite the
// database file is deleted; for MySQL and PostgreSQL the tables are dropped.
func ClearStore(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			return fmt.Errorf("connection string cannot be empty for SQLite backend")
		}
		if err := os.Remove(connStr); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", connStr, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		db, _, err := openDB(backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		tables := []string{responsesTable, reportsTable, weightsTable, assessmentsTable, "schema_migrations"}
		for _, table := range tables {
			if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// No-op stores back the NoneBackend: nothing is stored, reads find nothing.

type noopAssessments struct{}

func (noopAssessments) GetAssessment(context.Context, int64) (*schema.Assessment, error) {
	return nil, contract.ErrAssessmentNotFound
}

func (noopAssessments) GetResponses(context.Context, int64) ([]schema.AssessmentResponse, error) {
	return nil, nil
}

func (noopAssessments) UpdateStatus(context.Context, int64, schema.AssessmentStatus) error {
	return nil
}

type noopWeights struct{}

func (noopWeights) GetWeights(context.Context, int64) (*schema.OrganizationScoreWeights, error) {
	return nil, nil
}

func (noopWeights) UpsertWeights(_ context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	if err := contract.ValidateWeights(w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (noopWeights) EnsureWeights(_ context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	if err := contract.ValidateWeights(w); err != nil {
		return nil, err
	}
	return &w, nil
}

type noopReports struct{}

func (noopReports) CreateReport(_ context.Context, snap *schema.ReportSnapshot) (string, error) {
	return snap.ID, nil
}

func (noopReports) GetLatestReport(context.Context, int64) (*schema.ReportSnapshot, error) {
	return nil, nil
}

func (noopReports) ListReports(context.Context, int64) ([]schema.ReportSnapshot, error) {
	return nil, nil
}
