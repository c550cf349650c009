// Package taxonomy provides the static skill taxonomy used by profile
// extraction: skill categories, synonym groups, education-level keywords,
// seniority keywords, and certification names.
//
// A Taxonomy is immutable after construction and safe for concurrent use.
// Production code uses Default(); tests construct smaller taxonomies with New.
package taxonomy

import "strings"

// CategoryUnknown is assigned to detected skills that belong to no category.
const CategoryUnknown = "unknown"

// Education levels in increasing rank order.
const (
	LevelHighSchool = "high_school"
	LevelDiploma    = "diploma"
	LevelAssociate  = "associate"
	LevelBachelors  = "bachelors"
	LevelMasters    = "masters"
	LevelPhD        = "phd"
)

// Seniority levels inferred from title/keyword cues.
const (
	SeniorityIntern  = "intern"
	SeniorityJunior  = "junior"
	SeniorityMid     = "mid"
	SenioritySenior  = "senior"
	SeniorityUnknown = "unknown"
)

// educationOrder lists education levels by increasing rank.
var educationOrder = []string{
	LevelHighSchool,
	LevelDiploma,
	LevelAssociate,
	LevelBachelors,
	LevelMasters,
	LevelPhD,
}

// seniorityPriority is the fixed match-priority order for seniority detection:
// the first level whose any keyword appears in the text wins.
var seniorityPriority = []string{
	SenioritySenior,
	SeniorityMid,
	SeniorityJunior,
	SeniorityIntern,
}

// Taxonomy is the process-wide skill knowledge base.
type Taxonomy struct {
	// CategoryNames preserves category iteration order; category assignment
	// is first-wins for skills listed under more than one category.
	CategoryNames     []string
	Categories        map[string][]string
	Synonyms          map[string][]string
	EducationKeywords map[string][]string
	SeniorityKeywords map[string][]string
	Certifications    []string

	allSkills  []string
	byLower    map[string]string
	categoryOf map[string]string
	synonymOf  map[string]string
}

// New builds a Taxonomy from explicit tables and precomputes the lookup
// indexes. Category order follows categoryNames.
func New(
	categoryNames []string,
	categories map[string][]string,
	synonyms map[string][]string,
	educationKeywords map[string][]string,
	seniorityKeywords map[string][]string,
	certifications []string,
) *Taxonomy {
	t := &Taxonomy{
		CategoryNames:     categoryNames,
		Categories:        categories,
		Synonyms:          synonyms,
		EducationKeywords: educationKeywords,
		SeniorityKeywords: seniorityKeywords,
		Certifications:    certifications,
		byLower:           make(map[string]string),
		categoryOf:        make(map[string]string),
		synonymOf:         make(map[string]string),
	}

	for _, category := range categoryNames {
		for _, skill := range categories[category] {
			lower := strings.ToLower(skill)
			if _, seen := t.byLower[lower]; seen {
				continue
			}
			t.byLower[lower] = skill
			t.categoryOf[lower] = category
			t.allSkills = append(t.allSkills, skill)
		}
	}

	for canonical, aliases := range synonyms {
		for _, alias := range aliases {
			t.synonymOf[strings.ToLower(alias)] = canonical
		}
	}

	return t
}

// AllSkills returns every distinct skill name in the taxonomy, in category
// order. The returned slice must not be modified.
func (t *Taxonomy) AllSkills() []string {
	return t.allSkills
}

// Canonical returns the canonical spelling for a skill name, matching
// case-insensitively. The second result reports whether the skill is known.
func (t *Taxonomy) Canonical(skill string) (string, bool) {
	canonical, ok := t.byLower[strings.ToLower(skill)]
	return canonical, ok
}

// CategoryOf returns the category a skill belongs to, or CategoryUnknown.
// Every skill belongs to exactly one category.
func (t *Taxonomy) CategoryOf(skill string) string {
	if category, ok := t.categoryOf[strings.ToLower(skill)]; ok {
		return category
	}
	return CategoryUnknown
}

// Normalize maps a synonym or alias to its canonical skill name. Unrecognized
// names are returned trimmed but otherwise unchanged.
func (t *Taxonomy) Normalize(skill string) string {
	skill = strings.TrimSpace(skill)
	if canonical, ok := t.synonymOf[strings.ToLower(skill)]; ok {
		return canonical
	}
	return skill
}

// EducationLevels returns the known education levels by increasing rank.
func EducationLevels() []string {
	return educationOrder
}

// EducationRank maps an education level to its ordinal rank (1..6).
// Unknown or empty levels rank 0.
func EducationRank(level string) int {
	for i, l := range educationOrder {
		if l == level {
			return i + 1
		}
	}
	return 0
}

// SeniorityPriority returns the fixed priority order used for seniority
// detection tie-breaks.
func SeniorityPriority() []string {
	return seniorityPriority
}
