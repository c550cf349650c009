package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Name:            "Jane Doe",
		SourceFile:      "jane.txt",
		SeniorityLevel:  "senior",
		YearsExperience: 6,
		SkillProfile: types.SkillProfile{
			Skills:       []string{"Go", "PostgreSQL", "Python"},
			MentionCount: map[string]int{"Go": 3, "PostgreSQL": 1, "Python": 2},
		},
		Education: types.EducationProfile{HighestLevel: "bachelors", HasDegree: true},
	}

	p.PrintProfile("CANDIDATE PROFILE", profile)

	output := buf.String()
	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "6 years")
	assert.Contains(t, output, "bachelors")
	assert.Contains(t, output, "Go (×3)")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile("CANDIDATE PROFILE", nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		SeniorityLevel: "unknown",
		SkillProfile: types.SkillProfile{
			Skills: []string{"A", "B", "C", "D", "E", "F", "G"},
		},
	}

	p.PrintProfile("JOB PROFILE", profile)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintFitResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.FitResult{
		OverallScore: 72.5,
		FitLevel:     types.FitGood,
		SkillMatch: types.SkillMatchResult{
			MatchPercentage: 66.67,
			MatchedSkills:   []string{"Python", "PostgreSQL"},
			MissingSkills:   []string{"Kubernetes"},
			TotalRequired:   3,
			TotalMatched:    2,
		},
		ExperienceMatch: types.ExperienceMatchResult{Score: 100},
		EducationMatch:  types.EducationMatchResult{Score: 100},
		TextSimilarity:  41.2,
	}

	p.PrintFitResult(result)

	output := buf.String()
	assert.Contains(t, output, "FIT RESULT")
	assert.Contains(t, output, "72.50 (Good)")
	assert.Contains(t, output, "2/3 matched")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := []types.RankedCandidate{
		{
			Rank: 1,
			Name: "Jane Doe",
			Result: &types.FitResult{
				OverallScore: 85.1,
				FitLevel:     types.FitExcellent,
				SkillMatch:   types.SkillMatchResult{MatchedSkills: []string{"Go"}},
			},
		},
		{
			Rank:       2,
			SourceFile: "anon.txt",
			Result: &types.FitResult{
				OverallScore: 40.0,
				FitLevel:     types.FitFair,
			},
		},
	}

	p.PrintRankedCandidates(ranked)

	output := buf.String()
	assert.Contains(t, output, "Total candidates ranked: 2")
	assert.Contains(t, output, "#1  Jane Doe")
	assert.Contains(t, output, "#2  anon.txt")
	assert.Contains(t, output, "85.10 (Excellent)")
}

func TestPrintRankedCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedCandidates(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Name:           strings.Repeat("x", 100),
		SeniorityLevel: "unknown",
	}

	p.PrintProfile("CANDIDATE PROFILE", profile)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
