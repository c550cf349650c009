package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Recommendations derives human-readable follow-up advice from a fit result:
// skill gaps, unmet experience or education requirements, and an overall
// verdict keyed to the score band.
func Recommendations(result *types.FitResult) []string {
	var recs []string

	if missing := result.SkillMatch.MissingSkills; len(missing) > 0 {
		if len(missing) <= 3 {
			recs = append(recs, fmt.Sprintf("Consider acquiring: %s", strings.Join(missing, ", ")))
		} else {
			recs = append(recs, fmt.Sprintf("Focus on developing %d missing skills", len(missing)))
		}
	}

	if !result.ExperienceMatch.MeetsRequirement {
		recs = append(recs, "Gain more relevant work experience")
	}
	if !result.EducationMatch.MeetsRequirement {
		recs = append(recs, "Consider pursuing additional education/certifications")
	}

	switch {
	case result.OverallScore >= 80:
		recs = append(recs, "Excellent fit - Highly recommended for interview")
	case result.OverallScore >= 60:
		recs = append(recs, "Good fit - Recommend for initial screening")
	case result.OverallScore >= 40:
		recs = append(recs, "Moderate fit - May be suitable for entry-level roles")
	default:
		recs = append(recs, "Consider other opportunities better aligned with skills")
	}

	return recs
}
