package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest is the request body for profile extraction.
type ExtractRequest struct {
	// Text is the raw document text to extract from.
	Text string `json:"text" validate:"required"`
	// Kind selects the extraction mode; candidates additionally get
	// contact facts, a name guess, and section skills.
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=candidate job"`
	// SourceFile is an optional label carried through to the profile.
	SourceFile string `json:"source_file,omitempty"`
}

// MatchRequest is the request body for matching one resume to one job.
type MatchRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required"`
	JobText        string   `json:"job_text,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// ResumeDocument is one resume in a batch match request.
type ResumeDocument struct {
	SourceFile string `json:"source_file,omitempty"`
	Text       string `json:"text" validate:"required"`
}

// BatchMatchRequest is the request body for matching many resumes to one job.
type BatchMatchRequest struct {
	JobTitle       string           `json:"job_title,omitempty"`
	JobText        string           `json:"job_text,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string           `json:"job_url,omitempty" validate:"omitempty,url"`
	RequiredSkills []string         `json:"required_skills,omitempty"`
	Resumes        []ResumeDocument `json:"resumes" validate:"required,min=1,dive"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
