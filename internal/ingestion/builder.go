package ingestion

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/extractor"
	"github.com/jonathan/resume-screener/internal/textnorm"
	"github.com/jonathan/resume-screener/internal/types"
)

// Builder assembles structured profiles from cleaned document text.
type Builder struct {
	Extractor *extractor.Extractor
}

// NewBuilder returns a Builder over the given extractor.
func NewBuilder(e *extractor.Extractor) *Builder {
	return &Builder{Extractor: e}
}

// CandidateProfile builds the full candidate profile from a resume
// document: sectioning, skill extraction, contact facts, name guess, and
// years of experience.
func (b *Builder) CandidateProfile(doc *Document) *types.Profile {
	sections := textnorm.ExtractSections(doc.Text)

	profile := b.Extractor.ExtractProfile(doc.Text, sections)
	profile.ID = uuid.NewString()
	profile.SourceFile = doc.SourceFile
	profile.Name = textnorm.ExtractName(doc.Text)
	profile.Contact = textnorm.ExtractContactFacts(doc.Text)
	profile.YearsExperience = textnorm.ExtractYearsOfExperience(doc.Text)
	return &profile
}

// JobProfile builds the requisition-side profile from a job description.
// When requiredSkills is non-empty it replaces the skills detected in the
// text, after synonym normalization against the taxonomy. Required years
// come from the description's own experience phrases.
func (b *Builder) JobProfile(doc *Document, requiredSkills []string) *types.Profile {
	profile := b.Extractor.ExtractProfile(doc.Text, types.SectionMap{})
	profile.ID = uuid.NewString()
	profile.SourceFile = doc.SourceFile
	profile.YearsExperience = textnorm.ExtractYearsOfExperience(doc.Text)

	if len(requiredSkills) > 0 {
		normalized := make([]string, len(requiredSkills))
		for i, skill := range requiredSkills {
			normalized[i] = b.Extractor.Taxonomy().Normalize(skill)
		}
		profile.SkillProfile.Skills = normalized
	}
	return &profile
}
