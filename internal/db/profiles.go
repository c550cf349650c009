package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveProfile stores a profile and returns its row ID. A profile with the
// same kind and content hash is updated in place, so re-ingesting an
// unchanged document does not create duplicate rows.
func (db *DB) SaveProfile(ctx context.Context, kind, sourceFile, url, contentHash string, profile *types.Profile) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (kind, source_file, url, content_hash, profile)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (kind, content_hash) DO UPDATE
		   SET source_file = $2, url = $3, profile = $5, updated_at = NOW()
		 RETURNING id`,
		kind, sourceFile, url, contentHash, profileJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a stored profile by ID. Returns nil when no row
// matches.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*StoredProfile, error) {
	var sp StoredProfile
	var profileJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, kind, source_file, url, content_hash, profile, created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&sp.ID, &sp.Kind, &sp.SourceFile, &sp.URL, &sp.ContentHash,
		&profileJSON, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &sp.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	return &sp, nil
}

// ListProfiles returns stored profiles of one kind, newest first.
func (db *DB) ListProfiles(ctx context.Context, kind string, limit int) ([]*StoredProfile, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, kind, source_file, url, content_hash, profile, created_at, updated_at
		 FROM profiles WHERE kind = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		kind, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*StoredProfile
	for rows.Next() {
		var sp StoredProfile
		var profileJSON []byte
		if err := rows.Scan(&sp.ID, &sp.Kind, &sp.SourceFile, &sp.URL, &sp.ContentHash,
			&profileJSON, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		if err := json.Unmarshal(profileJSON, &sp.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", sp.ID, err)
		}
		profiles = append(profiles, &sp)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a stored profile and its match results.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM profiles WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
