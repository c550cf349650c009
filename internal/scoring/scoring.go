// Package scoring computes candidate-to-job fit. Individual factor scores
// (skills, experience, education, lexical and semantic text similarity) are
// combined into a weighted 0-100 overall score with a coarse fit label.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// underQualifiedCap limits the education score of a candidate below the
// required level to 70% of full credit.
const underQualifiedCap = 70

// DefaultWeights returns the standard factor weighting. Callers may supply
// their own map to OverallFit; weights are applied as given, without
// renormalization.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		types.FactorSkills:             0.40,
		types.FactorExperience:         0.20,
		types.FactorEducation:          0.15,
		types.FactorTextSimilarity:     0.15,
		types.FactorSemanticSimilarity: 0.10,
	}
}

// SkillMatch compares a candidate's skills against a job's required skills,
// case-insensitively. Matched and missing lists keep the job's order and
// casing; extras keep the resume's. An empty requirement list scores 0.
func SkillMatch(resumeSkills, jobSkills []string) types.SkillMatchResult {
	result := types.SkillMatchResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
		ExtraSkills:   []string{},
	}
	if len(jobSkills) == 0 {
		return result
	}

	resumeSet := lowerSet(resumeSkills)
	jobSet := lowerSet(jobSkills)

	matched := make(map[string]bool, len(jobSet))
	for skill := range jobSet {
		if resumeSet[skill] {
			matched[skill] = true
		}
	}

	for _, skill := range jobSkills {
		if matched[strings.ToLower(skill)] {
			result.MatchedSkills = append(result.MatchedSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}
	for _, skill := range resumeSkills {
		if !jobSet[strings.ToLower(skill)] {
			result.ExtraSkills = append(result.ExtraSkills, skill)
		}
	}

	result.MatchPercentage = round2(float64(len(matched)) / float64(len(jobSet)) * 100)
	result.TotalRequired = len(jobSkills)
	result.TotalMatched = len(matched)
	return result
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

// ExperienceMatch scores a candidate's years of experience against the
// requirement. No requirement is an automatic pass; a shortfall earns
// proportional partial credit. Difference is signed, candidate minus
// required.
func ExperienceMatch(resumeYears, requiredYears int) types.ExperienceMatchResult {
	if requiredYears == 0 {
		return types.ExperienceMatchResult{Score: 100, MeetsRequirement: true}
	}
	if resumeYears >= requiredYears {
		return types.ExperienceMatchResult{
			Score:            100,
			MeetsRequirement: true,
			Difference:       resumeYears - requiredYears,
		}
	}
	return types.ExperienceMatchResult{
		Score:      round2(float64(resumeYears) / float64(requiredYears) * 100),
		Difference: resumeYears - requiredYears,
	}
}

// EducationMatch scores a candidate's education level against the required
// level using the taxonomy rank order. No requirement (or an unrecognized
// required level) is an automatic pass. An under-qualified candidate earns
// proportional credit capped at underQualifiedCap.
func EducationMatch(resumeLevel, jobLevel string) types.EducationMatchResult {
	resumeRank := taxonomy.EducationRank(resumeLevel)
	jobRank := taxonomy.EducationRank(jobLevel)

	if jobRank == 0 {
		return types.EducationMatchResult{Score: 100, MeetsRequirement: true}
	}
	if resumeRank >= jobRank {
		return types.EducationMatchResult{Score: 100, MeetsRequirement: true}
	}
	return types.EducationMatchResult{
		Score: round2(float64(resumeRank) / float64(jobRank) * underQualifiedCap),
	}
}

// A Scorer combines factor scores into overall fit results. A nil Embedder
// disables semantic similarity, which then contributes 0.
type Scorer struct {
	Weights  map[string]float64
	Embedder similarity.Embedder
}

// NewScorer builds a Scorer. Nil weights select DefaultWeights.
func NewScorer(weights map[string]float64, embedder similarity.Embedder) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Scorer{Weights: weights, Embedder: embedder}
}

// OverallFit scores one candidate profile against one job profile. Factor
// scores are weighted by s.Weights; a factor absent from the map contributes
// 0. Semantic similarity degrades to 0 on embedding failure rather than
// failing the match.
func (s *Scorer) OverallFit(ctx context.Context, resume, job *types.Profile) *types.FitResult {
	skillMatch := SkillMatch(resume.SkillProfile.Skills, job.SkillProfile.Skills)
	expMatch := ExperienceMatch(resume.YearsExperience, job.YearsExperience)
	eduMatch := EducationMatch(resume.Education.HighestLevel, job.Education.HighestLevel)

	textSim := similarity.TextSimilarity(resume.RawText, job.RawText)

	var semanticSim float64
	if s.Embedder != nil {
		if score, err := similarity.Semantic(ctx, s.Embedder, resume.RawText, job.RawText); err == nil {
			semanticSim = score
		}
	}

	overall := skillMatch.MatchPercentage*s.Weights[types.FactorSkills] +
		expMatch.Score*s.Weights[types.FactorExperience] +
		eduMatch.Score*s.Weights[types.FactorEducation] +
		textSim*s.Weights[types.FactorTextSimilarity] +
		semanticSim*s.Weights[types.FactorSemanticSimilarity]

	return &types.FitResult{
		OverallScore:       round2(overall),
		FitLevel:           fitLevel(overall),
		SkillMatch:         skillMatch,
		ExperienceMatch:    expMatch,
		EducationMatch:     eduMatch,
		TextSimilarity:     textSim,
		SemanticSimilarity: semanticSim,
		WeightsUsed:        copyWeights(s.Weights),
	}
}

// fitLevel maps an overall score to its label. Boundaries are inclusive on
// the lower side: 80 is Excellent, 60 is Good, 40 is Fair.
func fitLevel(score float64) string {
	switch {
	case score >= 80:
		return types.FitExcellent
	case score >= 60:
		return types.FitGood
	case score >= 40:
		return types.FitFair
	default:
		return types.FitPoor
	}
}

func copyWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
