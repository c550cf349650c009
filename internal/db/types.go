package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Profile kinds stored in the profiles table.
const (
	KindCandidate = "candidate"
	KindJob       = "job"
)

// StoredProfile is a persisted candidate or job profile row. The structured
// profile lives in a JSONB column; the remaining columns exist for lookup.
type StoredProfile struct {
	ID          uuid.UUID     `json:"id"`
	Kind        string        `json:"kind"`
	SourceFile  string        `json:"source_file,omitempty"`
	URL         string        `json:"url,omitempty"`
	ContentHash string        `json:"content_hash"`
	Profile     types.Profile `json:"profile"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// StoredMatch is a persisted match result row linking a candidate profile to
// a job profile.
type StoredMatch struct {
	ID           uuid.UUID       `json:"id"`
	CandidateID  uuid.UUID       `json:"candidate_id"`
	JobID        uuid.UUID       `json:"job_id"`
	OverallScore float64         `json:"overall_score"`
	FitLevel     string          `json:"fit_level"`
	Result       types.FitResult `json:"result"`
	CreatedAt    time.Time       `json:"created_at"`
}
