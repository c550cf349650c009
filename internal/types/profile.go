// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactFacts holds contact information extracted from a document.
// Each field is the first pattern match found in the source text; empty means absent.
type ContactFacts struct {
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	LinkedInURL string   `json:"linkedin_url,omitempty"`
	GitHubURL   string   `json:"github_url,omitempty"`
	OtherURLs   []string `json:"other_urls,omitempty"`
}

// SkillProfile represents the skills detected in a document.
type SkillProfile struct {
	// Skills is the deduplicated, synonym-normalized list of canonical skill names.
	Skills []string `json:"skills"`
	// MentionCount maps each canonical skill to its number of surface occurrences.
	MentionCount map[string]int `json:"mention_count"`
	// Categories partitions detected skills by taxonomy category.
	// A skill appears in exactly one category, falling back to "unknown".
	Categories map[string][]string `json:"categories"`
}

// TotalSkills returns the number of distinct skills detected.
func (sp *SkillProfile) TotalSkills() int {
	return len(sp.Skills)
}

// DegreeMention records a single education-level keyword hit.
type DegreeMention struct {
	Level          string `json:"level"`
	MatchedKeyword string `json:"matched_keyword"`
}

// EducationProfile represents the education signals found in a document.
type EducationProfile struct {
	FoundDegrees []DegreeMention `json:"found_degrees"`
	// HighestLevel is the highest-ranked education level present, or empty if none found.
	HighestLevel string `json:"highest_level,omitempty"`
	HasDegree    bool   `json:"has_degree"`
}

// Profile is the structured representation of a candidate document or a job
// requisition. Both sides of a match use the same shape.
type Profile struct {
	ID              string              `json:"id,omitempty"`
	SourceFile      string              `json:"source_file,omitempty"`
	Name            string              `json:"name,omitempty"`
	SkillProfile    SkillProfile        `json:"skill_profile"`
	Education       EducationProfile    `json:"education"`
	SeniorityLevel  string              `json:"seniority_level"`
	Certifications  []string            `json:"certifications"`
	YearsExperience int                 `json:"years_experience"`
	Contact         ContactFacts        `json:"contact,omitempty"`
	SectionSkills   map[string][]string `json:"section_skills,omitempty"`
	RawText         string              `json:"-"`
}
