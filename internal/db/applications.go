package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/types"
)

// ErrStatusConflict indicates an optimistic-concurrency failure: the row's
// status no longer matched the expected value when the write was attempted.
// The caller should re-read the application and retry or reject.
type ErrStatusConflict struct {
	ID       uuid.UUID
	Expected types.Status
}

func (e *ErrStatusConflict) Error() string {
	return fmt.Sprintf("application %s is no longer in status %s", e.ID, e.Expected)
}

// CreateApplication inserts a freshly submitted application.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) error {
	answers, timeline, notes, comms, viewedBy, err := marshalDocuments(app)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO applications
		 (id, job_id, employer_id, applicant_id, resume_ref, answers, status,
		  score, skills_match, rejection_reason, timeline, notes, communications,
		  viewed_at, last_viewed_at, viewed_by, submitted_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		app.ID, app.JobID, app.EmployerID, app.ApplicantID, app.ResumeRef, answers, app.Status,
		app.Score, app.SkillsMatch, app.RejectionReason, timeline, notes, comms,
		app.ViewedAt, app.LastViewedAt, viewedBy, app.SubmittedAt, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	db.log.Debug("application created", zap.String("id", app.ID.String()))
	return nil
}

// GetApplication retrieves an application by ID, or nil when absent.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, job_id, employer_id, applicant_id, resume_ref, answers, status,
		        score, skills_match, rejection_reason, timeline, notes, communications,
		        viewed_at, last_viewed_at, viewed_by, submitted_at, updated_at
		 FROM applications WHERE id = $1`, id)

	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// SaveApplication writes back a mutated application, but only while the row
// still holds the expected status. Zero rows affected means another writer
// won the race and ErrStatusConflict is returned.
func (db *DB) SaveApplication(ctx context.Context, app *types.Application, expected types.Status) error {
	answers, timeline, notes, comms, viewedBy, err := marshalDocuments(app)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET
		   status = $3, score = $4, skills_match = $5, rejection_reason = $6,
		   timeline = $7, notes = $8, communications = $9, answers = $10,
		   viewed_at = $11, last_viewed_at = $12, viewed_by = $13, updated_at = $14
		 WHERE id = $1 AND status = $2`,
		app.ID, expected, app.Status, app.Score, app.SkillsMatch, app.RejectionReason,
		timeline, notes, comms, answers,
		app.ViewedAt, app.LastViewedAt, viewedBy, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	if result.RowsAffected() == 0 {
		db.log.Warn("application status conflict",
			zap.String("id", app.ID.String()),
			zap.String("expected", string(expected)))
		return &ErrStatusConflict{ID: app.ID, Expected: expected}
	}
	return nil
}

// UpdateMatch persists a freshly computed match result onto an application.
func (db *DB) UpdateMatch(ctx context.Context, id uuid.UUID, result types.MatchResult) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE applications SET score = $2, skills_match = $3, updated_at = NOW() WHERE id = $1`,
		id, result.Score, result.SkillsMatch,
	)
	if err != nil {
		return fmt.Errorf("failed to update match result: %w", err)
	}
	return nil
}

// ApplicationFilters holds optional filters for listing applications
type ApplicationFilters struct {
	EmployerID uuid.UUID
	JobID      uuid.UUID
	Status     types.Status
	Limit      int
}

// ListApplications retrieves applications with optional filters, newest first.
func (db *DB) ListApplications(ctx context.Context, filters ApplicationFilters) ([]types.Application, error) {
	if filters.Limit == 0 {
		filters.Limit = 500
	}

	query := `SELECT id, job_id, employer_id, applicant_id, resume_ref, answers, status,
	                 score, skills_match, rejection_reason, timeline, notes, communications,
	                 viewed_at, last_viewed_at, viewed_by, submitted_at, updated_at
	          FROM applications WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.EmployerID != uuid.Nil {
		query += fmt.Sprintf(" AND employer_id = $%d", argNum)
		args = append(args, filters.EmployerID)
		argNum++
	}
	if filters.JobID != uuid.Nil {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*types.Application, error) {
	var app types.Application
	var answers, timeline, notes, comms, viewedBy []byte

	err := row.Scan(
		&app.ID, &app.JobID, &app.EmployerID, &app.ApplicantID, &app.ResumeRef, &answers, &app.Status,
		&app.Score, &app.SkillsMatch, &app.RejectionReason, &timeline, &notes, &comms,
		&app.ViewedAt, &app.LastViewedAt, &viewedBy, &app.SubmittedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, doc := range []struct {
		data []byte
		dest any
	}{
		{answers, &app.Answers},
		{timeline, &app.Timeline},
		{notes, &app.Notes},
		{comms, &app.Communications},
		{viewedBy, &app.ViewedBy},
	} {
		if len(doc.data) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.data, doc.dest); err != nil {
			return nil, fmt.Errorf("failed to decode application document: %w", err)
		}
	}
	return &app, nil
}

func marshalDocuments(app *types.Application) (answers, timeline, notes, comms, viewedBy []byte, err error) {
	if answers, err = marshalOr(app.Answers, "{}"); err != nil {
		return
	}
	if timeline, err = marshalOr(app.Timeline, "[]"); err != nil {
		return
	}
	if notes, err = marshalOr(app.Notes, "[]"); err != nil {
		return
	}
	if comms, err = marshalOr(app.Communications, "[]"); err != nil {
		return
	}
	viewedBy, err = marshalOr(app.ViewedBy, "[]")
	return
}

// marshalOr marshals v, substituting empty for a nil slice or map so JSONB
// columns never receive SQL NULL.
func marshalOr(v any, empty string) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application document: %w", err)
	}
	if string(data) == "null" {
		return []byte(empty), nil
	}
	return data, nil
}
