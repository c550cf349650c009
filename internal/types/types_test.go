package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionMapGet(t *testing.T) {
	sm := SectionMap{Sections: []Section{
		{Name: SectionSummary, Offset: 0, Text: "Engineer."},
		{Name: SectionSkills, Offset: 40, Text: "Go, SQL"},
	}}

	text, ok := sm.Get(SectionSkills)
	assert.True(t, ok)
	assert.Equal(t, "Go, SQL", text)

	_, ok = sm.Get(SectionAwards)
	assert.False(t, ok)
}

func TestSectionMapAsMap(t *testing.T) {
	sm := SectionMap{Sections: []Section{
		{Name: SectionSummary, Text: "Engineer."},
		{Name: SectionSkills, Text: "Go, SQL"},
	}}

	assert.Equal(t, map[string]string{
		"summary": "Engineer.",
		"skills":  "Go, SQL",
	}, sm.AsMap())
}

func TestSectionMapEmpty(t *testing.T) {
	var sm SectionMap

	_, ok := sm.Get(SectionSummary)
	assert.False(t, ok)
	assert.Empty(t, sm.AsMap())
}

func TestSkillProfileTotalSkills(t *testing.T) {
	sp := SkillProfile{Skills: []string{"Go", "Python"}}
	assert.Equal(t, 2, sp.TotalSkills())

	var empty SkillProfile
	assert.Equal(t, 0, empty.TotalSkills())
}

func TestMatchRequestValidate(t *testing.T) {
	valid := MatchRequest{ResumeText: "resume", JobText: "job"}
	assert.NoError(t, valid.Validate())

	missingResume := MatchRequest{JobText: "job"}
	assert.Error(t, missingResume.Validate())

	bothJobSources := MatchRequest{ResumeText: "resume", JobText: "job", JobURL: "https://example.com/j"}
	assert.Error(t, bothJobSources.Validate())

	urlOnly := MatchRequest{ResumeText: "resume", JobURL: "https://example.com/j"}
	assert.NoError(t, urlOnly.Validate())
}

func TestBatchMatchRequestValidate(t *testing.T) {
	valid := BatchMatchRequest{JobText: "job", Resumes: []ResumeDocument{{Text: "r"}}}
	assert.NoError(t, valid.Validate())

	noResumes := BatchMatchRequest{JobText: "job"}
	assert.Error(t, noResumes.Validate())

	emptyResumeText := BatchMatchRequest{JobText: "job", Resumes: []ResumeDocument{{SourceFile: "a.txt"}}}
	assert.Error(t, emptyResumeText.Validate())
}

func TestExtractRequestValidate(t *testing.T) {
	assert.NoError(t, (&ExtractRequest{Text: "hello", Kind: "candidate"}).Validate())
	assert.NoError(t, (&ExtractRequest{Text: "hello"}).Validate())
	assert.Error(t, (&ExtractRequest{Kind: "candidate"}).Validate())
	assert.Error(t, (&ExtractRequest{Text: "hello", Kind: "employer"}).Validate())
}
