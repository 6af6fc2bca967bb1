package iostore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// ReportStoreImpl implements contract.ReportStore over database/sql. The
// full snapshot is stored as a JSON document; assessment id and generation
// time are broken out as columns for querying.
type ReportStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.ReportStore = &ReportStoreImpl{} // Compile-time check

// CreateReport implements the ReportStore interface. Snapshots are
// append-only; there is no update path.
func (s *ReportStoreImpl) CreateReport(ctx context.Context, snap *schema.ReportSnapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode report snapshot: %w", err)
	}

	query := rebind(s.backend, fmt.Sprintf(`
		INSERT INTO %s (id, assessment_id, payload, generated_at)
		VALUES (?, ?, ?, ?)
	`, reportsTable))

	if _, err := s.db.ExecContext(ctx, query, snap.ID, snap.AssessmentID, string(payload), formatTime(snap.GeneratedAt, s.backend)); err != nil {
		return "", transientIf(fmt.Errorf("failed to insert report snapshot: %w", err))
	}

	return snap.ID, nil
}

// GetLatestReport implements the ReportStore interface.
func (s *ReportStoreImpl) GetLatestReport(ctx context.Context, assessmentID int64) (*schema.ReportSnapshot, error) {
	query := rebind(s.backend, fmt.Sprintf(`
		SELECT payload FROM %s WHERE assessment_id = ?
		ORDER BY generated_at DESC, id DESC LIMIT 1
	`, reportsTable))

	var payload string
	row := s.db.QueryRowContext(ctx, query, assessmentID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, transientIf(fmt.Errorf("failed to query latest report for assessment %d: %w", assessmentID, err))
	}

	return decodeSnapshot(payload)
}

// ListReports implements the ReportStore interface.
func (s *ReportStoreImpl) ListReports(ctx context.Context, assessmentID int64) ([]schema.ReportSnapshot, error) {
	query := rebind(s.backend, fmt.Sprintf(`
		SELECT payload FROM %s WHERE assessment_id = ?
		ORDER BY generated_at DESC, id DESC
	`, reportsTable))

	rows, err := s.db.QueryContext(ctx, query, assessmentID)
	if err != nil {
		return nil, transientIf(fmt.Errorf("failed to query reports for assessment %d: %w", assessmentID, err))
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ReportSnapshot
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		snap, err := decodeSnapshot(payload)
		if err != nil {
			return nil, err
		}
		results = append(results, *snap)
	}
	return results, rows.Err()
}

// GetStatus returns diagnostic information about the stored data.
func (s *ReportStoreImpl) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(s.backend),
		Connected:  s.db != nil,
		TableSizes: make(map[string]int64),
	}
	if s.db == nil {
		return status, nil
	}

	for _, table := range []string{assessmentsTable, responsesTable, weightsTable, reportsTable} {
		var count int64
		row := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalReports = status.TableSizes[reportsTable]

	if status.TotalReports > 0 {
		query := fmt.Sprintf("SELECT id, generated_at FROM %s ORDER BY generated_at DESC, id DESC LIMIT 1", reportsTable)
		var generatedAt any
		row := s.db.QueryRowContext(ctx, query)
		if err := row.Scan(&status.LastReportID, &generatedAt); err != nil {
			return status, fmt.Errorf("failed to read last report: %w", err)
		}
		t, err := scanTime(generatedAt, s.backend)
		if err != nil {
			return status, fmt.Errorf("failed to decode last report time: %w", err)
		}
		status.LastReportTime = t
	}

	return status, nil
}

// GetAllReports returns every stored snapshot, oldest first, for export.
func (s *ReportStoreImpl) GetAllReports(ctx context.Context) ([]schema.ReportSnapshot, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s ORDER BY generated_at, id`, reportsTable)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, transientIf(fmt.Errorf("failed to query all reports: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ReportSnapshot
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		snap, err := decodeSnapshot(payload)
		if err != nil {
			return nil, err
		}
		results = append(results, *snap)
	}
	return results, rows.Err()
}

func decodeSnapshot(payload string) (*schema.ReportSnapshot, error) {
	snap := &schema.ReportSnapshot{}
	if err := json.Unmarshal([]byte(payload), snap); err != nil {
		return nil, fmt.Errorf("failed to decode report snapshot: %w", err)
	}
	return snap, nil
}
