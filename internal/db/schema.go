package db

import (
	"context"
	"fmt"
)

// schemaDDL creates the storage tables. The unique keys back the ON CONFLICT
// upserts in SaveProfile and SaveMatchResult; match rows cascade when either
// profile is deleted.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS profiles (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	kind         TEXT NOT NULL,
	source_file  TEXT NOT NULL DEFAULT '',
	url          TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL,
	profile      JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (kind, content_hash)
);

CREATE TABLE IF NOT EXISTS match_results (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	candidate_id  UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	job_id        UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	overall_score DOUBLE PRECISION NOT NULL,
	fit_level     TEXT NOT NULL,
	result        JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (candidate_id, job_id)
);

CREATE INDEX IF NOT EXISTS match_results_job_id_idx ON match_results (job_id);
`

// EnsureSchema creates the storage tables if they do not already exist.
// Requires PostgreSQL 13+ for the built-in gen_random_uuid().
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	return nil
}
