// Package extractor detects skills, education signals, seniority, and
// certifications in free text against a skill taxonomy. Detection combines
// exact word-boundary matching with an optional fuzzy pass over tokenizer
// candidates.
package extractor

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultFuzzyThreshold is the minimum 0-100 similarity score at which a
// tokenizer candidate is accepted as a taxonomy skill.
const DefaultFuzzyThreshold = 85

// Extractor matches text against a skill taxonomy.
type Extractor struct {
	tax *taxonomy.Taxonomy
	tok Tokenizer

	// FuzzyThreshold overrides DefaultFuzzyThreshold when set above zero.
	FuzzyThreshold int

	skillPatterns map[string]*regexp.Regexp
	metric        *metrics.Levenshtein
}

// New builds an Extractor over the given taxonomy, precompiling a
// word-boundary pattern per skill. A nil tokenizer disables the fuzzy pass.
func New(tax *taxonomy.Taxonomy, tok Tokenizer) *Extractor {
	patterns := make(map[string]*regexp.Regexp, len(tax.AllSkills()))
	for _, skill := range tax.AllSkills() {
		patterns[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}
	return &Extractor{
		tax:            tax,
		tok:            tok,
		FuzzyThreshold: DefaultFuzzyThreshold,
		skillPatterns:  patterns,
		metric:         metrics.NewLevenshtein(),
	}
}

// Taxonomy returns the taxonomy the extractor matches against.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// ExtractSkills finds taxonomy skills mentioned in text. The exact pass
// counts every word-boundary occurrence of each skill, case-insensitively.
// When useFuzzy is set, tokenizer candidates are additionally scored against
// the taxonomy and accepted at or above the fuzzy threshold, each contributing
// one mention. Skills are returned sorted, categorized, and deduplicated.
func (e *Extractor) ExtractSkills(text string, useFuzzy bool) types.SkillProfile {
	profile := types.SkillProfile{
		Skills:       []string{},
		MentionCount: map[string]int{},
		Categories:   map[string][]string{},
	}
	if text == "" {
		return profile
	}

	textLower := strings.ToLower(text)
	found := make(map[string]bool)

	for _, skill := range e.tax.AllSkills() {
		hits := e.skillPatterns[skill].FindAllStringIndex(textLower, -1)
		if len(hits) == 0 {
			continue
		}
		found[skill] = true
		profile.MentionCount[skill] += len(hits)
	}

	if useFuzzy && e.tok != nil {
		for _, candidate := range e.tok.Candidates(text) {
			skill, score := e.bestMatch(candidate)
			if score >= e.threshold() && !found[skill] {
				found[skill] = true
				profile.MentionCount[skill]++
			}
		}
	}

	for skill := range found {
		profile.Skills = append(profile.Skills, skill)
	}
	sort.Strings(profile.Skills)

	for _, skill := range profile.Skills {
		category := e.tax.CategoryOf(skill)
		profile.Categories[category] = append(profile.Categories[category], skill)
	}

	return profile
}

// bestMatch scores candidate against every taxonomy skill and returns the
// best-scoring skill with its 0-100 similarity score.
func (e *Extractor) bestMatch(candidate string) (string, int) {
	candidateLower := strings.ToLower(candidate)

	best := ""
	bestScore := 0
	for _, skill := range e.tax.AllSkills() {
		similarity := strutil.Similarity(candidateLower, strings.ToLower(skill), e.metric)
		score := int(math.Round(similarity * 100))
		if score > bestScore {
			bestScore = score
			best = skill
		}
	}
	return best, bestScore
}

func (e *Extractor) threshold() int {
	if e.FuzzyThreshold > 0 {
		return e.FuzzyThreshold
	}
	return DefaultFuzzyThreshold
}

// ExtractEducation scans text for education-level keywords. At most one
// mention is recorded per level (the first keyword that appears), and
// HighestLevel is the highest-ranked level found.
func (e *Extractor) ExtractEducation(text string) types.EducationProfile {
	var edu types.EducationProfile
	textUpper := strings.ToUpper(text)

	for _, level := range taxonomy.EducationLevels() {
		for _, keyword := range e.tax.EducationKeywords[level] {
			if strings.Contains(textUpper, strings.ToUpper(keyword)) {
				edu.FoundDegrees = append(edu.FoundDegrees, types.DegreeMention{
					Level:          level,
					MatchedKeyword: keyword,
				})
				break
			}
		}
	}

	levels := taxonomy.EducationLevels()
	for i := len(levels) - 1; i >= 0 && edu.HighestLevel == ""; i-- {
		for _, d := range edu.FoundDegrees {
			if d.Level == levels[i] {
				edu.HighestLevel = levels[i]
				break
			}
		}
	}

	edu.HasDegree = len(edu.FoundDegrees) > 0
	return edu
}

// ExtractSeniority returns the seniority level whose keywords appear in
// text, checking levels in priority order so a document mentioning both
// "senior" and "junior" reads as senior. Returns SeniorityUnknown when
// nothing matches.
func (e *Extractor) ExtractSeniority(text string) string {
	textLower := strings.ToLower(text)

	for _, level := range taxonomy.SeniorityPriority() {
		for _, keyword := range e.tax.SeniorityKeywords[level] {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				return level
			}
		}
	}
	return taxonomy.SeniorityUnknown
}

// ExtractCertifications returns every known certification mentioned in text,
// matched as a case-insensitive substring, in taxonomy order.
func (e *Extractor) ExtractCertifications(text string) []string {
	textLower := strings.ToLower(text)

	var certs []string
	for _, cert := range e.tax.Certifications {
		if strings.Contains(textLower, strings.ToLower(cert)) {
			certs = append(certs, cert)
		}
	}
	return certs
}

// ExtractProfile runs every extraction over text and assembles the result.
// The full-text skill pass uses fuzzy matching; per-section passes use exact
// matching only, and empty sections are skipped.
func (e *Extractor) ExtractProfile(text string, sections types.SectionMap) types.Profile {
	profile := types.Profile{
		SkillProfile:   e.ExtractSkills(text, true),
		Education:      e.ExtractEducation(text),
		SeniorityLevel: e.ExtractSeniority(text),
		Certifications: e.ExtractCertifications(text),
		RawText:        text,
	}

	if len(sections.Sections) > 0 {
		profile.SectionSkills = make(map[string][]string, len(sections.Sections))
		for _, section := range sections.Sections {
			if section.Text == "" {
				continue
			}
			profile.SectionSkills[section.Name] = e.ExtractSkills(section.Text, false).Skills
		}
	}

	return profile
}
