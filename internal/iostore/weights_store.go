package iostore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// WeightsStoreImpl implements contract.WeightsStore over database/sql.
type WeightsStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.WeightsStore = &WeightsStoreImpl{} // Compile-time check

// GetWeights implements the WeightsStore interface.
func (s *WeightsStoreImpl) GetWeights(ctx context.Context, orgID int64) (*schema.OrganizationScoreWeights, error) {
	query := rebind(s.backend, fmt.Sprintf(`
		SELECT organization_id, adoption_rate, time_saved, cost_efficiency,
		       performance_improvement, tool_sprawl_reduction, updated_at
		FROM %s WHERE organization_id = ?
	`, weightsTable))

	var (
		w         schema.OrganizationScoreWeights
		updatedAt any
	)
	row := s.db.QueryRowContext(ctx, query, orgID)
	if err := row.Scan(&w.OrganizationID, &w.AdoptionRate, &w.TimeSaved, &w.CostEfficiency,
		&w.PerformanceImprovement, &w.ToolSprawlReduction, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, transientIf(fmt.Errorf("failed to query weights for organization %d: %w", orgID, err))
	}

	t, err := scanTime(updatedAt, s.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to decode updated_at for organization %d: %w", orgID, err)
	}
	w.UpdatedAt = t

	return &w, nil
}

// UpsertWeights implements the WeightsStore interface. Invalid vectors are
// rejected before any SQL runs, so the stored row is never touched.
func (s *WeightsStoreImpl) UpsertWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	if err := contract.ValidateWeights(w); err != nil {
		return nil, err
	}

	w.UpdatedAt = time.Now().UTC()

	var query string
	switch s.backend {
	case schema.MySQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (organization_id, adoption_rate, time_saved, cost_efficiency,
			                performance_improvement, tool_sprawl_reduction, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				adoption_rate = VALUES(adoption_rate),
				time_saved = VALUES(time_saved),
				cost_efficiency = VALUES(cost_efficiency),
				performance_improvement = VALUES(performance_improvement),
				tool_sprawl_reduction = VALUES(tool_sprawl_reduction),
				updated_at = VALUES(updated_at)
		`, weightsTable)
	default: // SQLite and PostgreSQL
		query = rebind(s.backend, fmt.Sprintf(`
			INSERT INTO %s (organization_id, adoption_rate, time_saved, cost_efficiency,
			                performance_improvement, tool_sprawl_reduction, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (organization_id) DO UPDATE SET
				adoption_rate = excluded.adoption_rate,
				time_saved = excluded.time_saved,
				cost_efficiency = excluded.cost_efficiency,
				performance_improvement = excluded.performance_improvement,
				tool_sprawl_reduction = excluded.tool_sprawl_reduction,
				updated_at = excluded.updated_at
		`, weightsTable))
	}

	if _, err := s.db.ExecContext(ctx, query, w.OrganizationID, w.AdoptionRate, w.TimeSaved,
		w.CostEfficiency, w.PerformanceImprovement, w.ToolSprawlReduction, formatTime(w.UpdatedAt, s.backend)); err != nil {
		return nil, transientIf(fmt.Errorf("failed to upsert weights for organization %d: %w", w.OrganizationID, err))
	}

	return s.GetWeights(ctx, w.OrganizationID)
}

// EnsureWeights implements the WeightsStore interface. The insert is a
// conflict-tolerant no-op when a row already exists, so concurrent first
// accesses for the same organization leave exactly one row and every caller
// reads the same vector back.
func (s *WeightsStoreImpl) EnsureWeights(ctx context.Context, w schema.OrganizationScoreWeights) (*schema.OrganizationScoreWeights, error) {
	if err := contract.ValidateWeights(w); err != nil {
		return nil, err
	}

	w.UpdatedAt = time.Now().UTC()

	var query string
	switch s.backend {
	case schema.MySQLBackend:
		query = fmt.Sprintf(`
			INSERT IGNORE INTO %s (organization_id, adoption_rate, time_saved, cost_efficiency,
			                       performance_improvement, tool_sprawl_reduction, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, weightsTable)
	default: // SQLite and PostgreSQL
		query = rebind(s.backend, fmt.Sprintf(`
			INSERT INTO %s (organization_id, adoption_rate, time_saved, cost_efficiency,
			                performance_improvement, tool_sprawl_reduction, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (organization_id) DO NOTHING
		`, weightsTable))
	}

	if _, err := s.db.ExecContext(ctx, query, w.OrganizationID, w.AdoptionRate, w.TimeSaved,
		w.CostEfficiency, w.PerformanceImprovement, w.ToolSprawlReduction, formatTime(w.UpdatedAt, s.backend)); err != nil {
		return nil, transientIf(fmt.Errorf("failed to ensure weights for organization %d: %w", w.OrganizationID, err))
	}

	stored, err := s.GetWeights(ctx, w.OrganizationID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("weights for organization %d missing after ensure", w.OrganizationID)
	}
	return stored, nil
}
