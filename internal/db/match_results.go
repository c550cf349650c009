package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveMatchResult stores the outcome of scoring one candidate against one
// job. Re-matching the same pair replaces the previous result.
func (db *DB) SaveMatchResult(ctx context.Context, candidateID, jobID uuid.UUID, result *types.FitResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results (candidate_id, job_id, overall_score, fit_level, result)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE
		   SET overall_score = $3, fit_level = $4, result = $5, created_at = NOW()
		 RETURNING id`,
		candidateID, jobID, result.OverallScore, result.FitLevel, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatchResult retrieves one stored match by ID. Returns nil when no row
// matches.
func (db *DB) GetMatchResult(ctx context.Context, id uuid.UUID) (*StoredMatch, error) {
	var sm StoredMatch
	var resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, overall_score, fit_level, result, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&sm.ID, &sm.CandidateID, &sm.JobID, &sm.OverallScore, &sm.FitLevel,
		&resultJSON, &sm.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &sm.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result %s: %w", id, err)
	}
	return &sm, nil
}

// ListMatchesForJob returns stored matches for a job, best score first.
func (db *DB) ListMatchesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]*StoredMatch, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, overall_score, fit_level, result, created_at
		 FROM match_results WHERE job_id = $1
		 ORDER BY overall_score DESC, created_at ASC
		 LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var matches []*StoredMatch
	for rows.Next() {
		var sm StoredMatch
		var resultJSON []byte
		if err := rows.Scan(&sm.ID, &sm.CandidateID, &sm.JobID, &sm.OverallScore,
			&sm.FitLevel, &resultJSON, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &sm.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match result %s: %w", sm.ID, err)
		}
		matches = append(matches, &sm)
	}
	return matches, rows.Err()
}
