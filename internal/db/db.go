// Package db provides PostgreSQL persistence for application records.
//
// The lifecycle package mutates applications in memory; this package applies
// the result atomically. Status-bearing writes are guarded by an optimistic
// check on the expected current status so concurrent reviewers cannot lose
// updates to the same application.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string, log *zap.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("connected to database")
	return &DB{pool: pool, log: log}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const applicationsDDL = `
CREATE TABLE IF NOT EXISTS applications (
	id               UUID PRIMARY KEY,
	job_id           UUID NOT NULL,
	employer_id      UUID NOT NULL,
	applicant_id     UUID NOT NULL,
	resume_ref       TEXT NOT NULL DEFAULT '',
	answers          JSONB NOT NULL DEFAULT '{}',
	status           TEXT NOT NULL,
	score            INT NOT NULL DEFAULT 0,
	skills_match     INT NOT NULL DEFAULT 0,
	rejection_reason TEXT NOT NULL DEFAULT '',
	timeline         JSONB NOT NULL DEFAULT '[]',
	notes            JSONB NOT NULL DEFAULT '[]',
	communications   JSONB NOT NULL DEFAULT '[]',
	viewed_at        TIMESTAMPTZ,
	last_viewed_at   TIMESTAMPTZ,
	viewed_by        JSONB NOT NULL DEFAULT '[]',
	submitted_at     TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS applications_employer_idx ON applications (employer_id);
CREATE INDEX IF NOT EXISTS applications_job_idx ON applications (job_id);
`

// EnsureSchema creates the applications table and its indexes when missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, applicationsDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
