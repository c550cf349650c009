package types

// Fit level labels derived from the overall score.
const (
	FitPoor      = "Poor"
	FitFair      = "Fair"
	FitGood      = "Good"
	FitExcellent = "Excellent"
)

// Weight factor names used in FitResult.WeightsUsed.
const (
	FactorSkills             = "skills"
	FactorExperience         = "experience"
	FactorEducation          = "education"
	FactorTextSimilarity     = "text_similarity"
	FactorSemanticSimilarity = "semantic_similarity"
)

// SkillMatchResult describes the overlap between a candidate's skills and a
// job's required skills.
type SkillMatchResult struct {
	MatchPercentage float64 `json:"match_percentage"`
	// MatchedSkills and MissingSkills preserve the job's required-skill order
	// and casing; ExtraSkills preserves the resume order.
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
}

// ExperienceMatchResult describes how a candidate's years of experience
// compare to the requirement.
type ExperienceMatchResult struct {
	Score            float64 `json:"score"`
	MeetsRequirement bool    `json:"meets_requirement"`
	// Difference is candidate years minus required years (signed).
	Difference int `json:"difference"`
}

// EducationMatchResult describes how a candidate's education level compares
// to the requirement.
type EducationMatchResult struct {
	Score            float64 `json:"score"`
	MeetsRequirement bool    `json:"meets_requirement"`
}

// FitResult is the complete outcome of scoring one candidate against one
// requisition. It is constructed fresh per pair and immutable once returned.
type FitResult struct {
	OverallScore       float64               `json:"overall_score"`
	FitLevel           string                `json:"fit_level"`
	SkillMatch         SkillMatchResult      `json:"skill_match"`
	ExperienceMatch    ExperienceMatchResult `json:"experience_match"`
	EducationMatch     EducationMatchResult  `json:"education_match"`
	TextSimilarity     float64               `json:"text_similarity"`
	SemanticSimilarity float64               `json:"semantic_similarity"`
	WeightsUsed        map[string]float64    `json:"weights_used"`
}

// RankedCandidate pairs a candidate profile with its fit result for batch
// matching output, sorted by overall score descending.
type RankedCandidate struct {
	Rank            int        `json:"rank"`
	CandidateID     string     `json:"candidate_id,omitempty"`
	Name            string     `json:"name,omitempty"`
	SourceFile      string     `json:"source_file,omitempty"`
	Result          *FitResult `json:"result"`
	Recommendations []string   `json:"recommendations,omitempty"`
}
