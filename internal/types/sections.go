package types

// Section names recognized by the section extractor.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionAwards         = "awards"
	SectionPublications   = "publications"
)

// Section is a named slice of a document, located by its header offset.
type Section struct {
	Name string `json:"name"`
	// Offset is the byte offset of the detected header in the source text.
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

// SectionMap holds the sections detected in a document, in document order.
type SectionMap struct {
	Sections []Section `json:"sections"`
}

// Get returns the text of the named section and whether it was found.
func (sm *SectionMap) Get(name string) (string, bool) {
	for _, s := range sm.Sections {
		if s.Name == name {
			return s.Text, true
		}
	}
	return "", false
}

// AsMap returns the sections as a name-to-text map.
func (sm *SectionMap) AsMap() map[string]string {
	m := make(map[string]string, len(sm.Sections))
	for _, s := range sm.Sections {
		m[s.Name] = s.Text
	}
	return m
}
