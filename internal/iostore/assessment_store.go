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

// AssessmentStoreImpl implements contract.AssessmentStore over database/sql.
type AssessmentStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.AssessmentStore = &AssessmentStoreImpl{} // Compile-time check

// GetAssessment implements the AssessmentStore interface.
func (s *AssessmentStoreImpl) GetAssessment(ctx context.Context, id int64) (*schema.Assessment, error) {
	query := rebind(s.backend, fmt.Sprintf(`
		SELECT id, organization_id, title, industry, company_stage, status, step_data, created_at
		FROM %s WHERE id = ?
	`, assessmentsTable))

	var (
		a         schema.Assessment
		status    string
		stepData  sql.NullString
		createdAt any
	)
	row := s.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&a.ID, &a.OrganizationID, &a.Title, &a.Industry, &a.CompanyStage, &status, &stepData, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contract.ErrAssessmentNotFound
		}
		return nil, transientIf(fmt.Errorf("failed to query assessment %d: %w", id, err))
	}

	a.Status = schema.AssessmentStatus(status)
	if stepData.Valid && stepData.String != "" {
		step := &schema.StepData{}
		if err := json.Unmarshal([]byte(stepData.String), step); err != nil {
			return nil, fmt.Errorf("failed to decode step data for assessment %d: %w", id, err)
		}
		a.StepData = step
	}

	t, err := scanTime(createdAt, s.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created_at for assessment %d: %w", id, err)
	}
	a.CreatedAt = t

	return &a, nil
}

// GetResponses implements the AssessmentStore interface. Responses come back
// in insertion order so later answers override earlier ones during backfill.
func (s *AssessmentStoreImpl) GetResponses(ctx context.Context, id int64) ([]schema.AssessmentResponse, error) {
	query := rebind(s.backend, fmt.Sprintf(`
		SELECT question_identifier, numeric_value, text_value, boolean_value, json_value
		FROM %s WHERE assessment_id = ? ORDER BY id
	`, responsesTable))

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, transientIf(fmt.Errorf("failed to query responses for assessment %d: %w", id, err))
	}
	defer func() { _ = rows.Close() }()

	var results []schema.AssessmentResponse
	for rows.Next() {
		var (
			resp    schema.AssessmentResponse
			numeric sql.NullFloat64
			text    sql.NullString
			boolean sql.NullBool
			raw     sql.NullString
		)
		if err := rows.Scan(&resp.QuestionIdentifier, &numeric, &text, &boolean, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		resp.AssessmentID = id
		if numeric.Valid {
			v := numeric.Float64
			resp.Numeric = &v
		}
		if text.Valid {
			v := text.String
			resp.Text = &v
		}
		if boolean.Valid {
			v := boolean.Bool
			resp.Boolean = &v
		}
		if raw.Valid && raw.String != "" {
			resp.JSON = json.RawMessage(raw.String)
		}
		results = append(results, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, transientIf(fmt.Errorf("failed to iterate responses: %w", err))
	}

	return results, nil
}

// UpdateStatus implements the AssessmentStore interface.
func (s *AssessmentStoreImpl) UpdateStatus(ctx context.Context, id int64, status schema.AssessmentStatus) error {
	query := rebind(s.backend, fmt.Sprintf(`UPDATE %s SET status = ? WHERE id = ?`, assessmentsTable))

	result, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return transientIf(fmt.Errorf("failed to update status for assessment %d: %w", id, err))
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return contract.ErrAssessmentNotFound
	}
	return nil
}

// ImportAssessment inserts an assessment, used by the import command and
// tests. A zero id lets the database assign one; the stored id is returned.
func (s *AssessmentStoreImpl) ImportAssessment(ctx context.Context, a *schema.Assessment) (int64, error) {
	var stepData sql.NullString
	if a.StepData != nil {
		raw, err := json.Marshal(a.StepData)
		if err != nil {
			return 0, fmt.Errorf("failed to encode step data: %w", err)
		}
		stepData = sql.NullString{String: string(raw), Valid: true}
	}

	status := a.Status
	if status == "" {
		status = schema.SubmittedStatus
	}
	createdAt := formatTime(a.CreatedAt, s.backend)

	id := a.ID
	if id == 0 {
		next, err := s.nextID(ctx, assessmentsTable)
		if err != nil {
			return 0, err
		}
		id = next
	}

	query := rebind(s.backend, fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, title, industry, company_stage, status, step_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, assessmentsTable))
	if _, err := s.db.ExecContext(ctx, query, id, a.OrganizationID, a.Title, a.Industry, a.CompanyStage, string(status), stepData, createdAt); err != nil {
		return 0, fmt.Errorf("failed to insert assessment %d: %w", id, err)
	}
	return id, nil
}

// nextID allocates the next id for a table. Ids are assigned in the
// application so the table DDL stays portable across backends; imports are
// single-writer so the max+1 race is not a concern.
func (s *AssessmentStoreImpl) nextID(ctx context.Context, table string) (int64, error) {
	var maxID int64
	row := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COALESCE(MAX(id), 0) FROM %s", table))
	if err := row.Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", table, err)
	}
	return maxID + 1, nil
}

// ImportResponses inserts raw per-question responses for an assessment.
// Row ids preserve slice order, which is the override order during backfill.
func (s *AssessmentStoreImpl) ImportResponses(ctx context.Context, id int64, responses []schema.AssessmentResponse) error {
	nextID, err := s.nextID(ctx, responsesTable)
	if err != nil {
		return err
	}

	query := rebind(s.backend, fmt.Sprintf(`
		INSERT INTO %s (id, assessment_id, question_identifier, numeric_value, text_value, boolean_value, json_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, responsesTable))

	for i, resp := range responses {
		var (
			numeric sql.NullFloat64
			text    sql.NullString
			boolean sql.NullBool
			raw     sql.NullString
		)
		if resp.Numeric != nil {
			numeric = sql.NullFloat64{Float64: *resp.Numeric, Valid: true}
		}
		if resp.Text != nil {
			text = sql.NullString{String: *resp.Text, Valid: true}
		}
		if resp.Boolean != nil {
			boolean = sql.NullBool{Bool: *resp.Boolean, Valid: true}
		}
		if len(resp.JSON) > 0 {
			raw = sql.NullString{String: string(resp.JSON), Valid: true}
		}
		if _, err := s.db.ExecContext(ctx, query, nextID+int64(i), id, resp.QuestionIdentifier, numeric, text, boolean, raw); err != nil {
			return fmt.Errorf("failed to insert response %q: %w", resp.QuestionIdentifier, err)
		}
	}
	return nil
}

// ListAssessments returns all assessments, newest first, without step data.
func (s *AssessmentStoreImpl) ListAssessments(ctx context.Context) ([]schema.Assessment, error) {
	query := fmt.Sprintf(`
		SELECT id, organization_id, title, industry, company_stage, status, created_at
		FROM %s ORDER BY id DESC
	`, assessmentsTable)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, transientIf(fmt.Errorf("failed to query assessments: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Assessment
	for rows.Next() {
		var (
			a         schema.Assessment
			status    string
			createdAt any
		)
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Title, &a.Industry, &a.CompanyStage, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		a.Status = schema.AssessmentStatus(status)
		if a.CreatedAt, err = scanTime(createdAt, s.backend); err != nil {
			return nil, fmt.Errorf("failed to decode created_at: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}
