package textnorm

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// sectionKeywords maps each section name to its header keyword variants,
// tried in order. Keywords are matched against the uppercased document.
var sectionKeywords = []struct {
	name     string
	keywords []string
}{
	{types.SectionSummary, []string{"SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT", "PROFESSIONAL SUMMARY"}},
	{types.SectionExperience, []string{"EXPERIENCE", "WORK HISTORY", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE"}},
	{types.SectionEducation, []string{"EDUCATION", "ACADEMIC", "QUALIFICATIONS", "ACADEMIC BACKGROUND"}},
	{types.SectionSkills, []string{"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "EXPERTISE", "TECHNICAL EXPERTISE"}},
	{types.SectionCertifications, []string{"CERTIFICATIONS", "CERTIFICATES", "LICENSES", "PROFESSIONAL CERTIFICATIONS"}},
	{types.SectionProjects, []string{"PROJECTS", "KEY PROJECTS", "NOTABLE PROJECTS"}},
	{types.SectionAwards, []string{"AWARDS", "HONORS", "ACHIEVEMENTS", "RECOGNITION"}},
	{types.SectionPublications, []string{"PUBLICATIONS", "PAPERS", "RESEARCH"}},
}

// headerLineSlack is how far from the start of a line a header keyword may
// appear and still count as a header (tolerates bullets or short prefixes).
const headerLineSlack = 5

// ExtractSections locates known resume section headers and slices the
// document into named spans. A header counts only when its first occurrence
// sits at (or within headerLineSlack characters of) the start of a line, so
// header words embedded in prose are ignored. Each section's text runs from
// its header to the next detected header or end of document, with the header
// keyword stripped from the front.
//
// Best-effort: a document without recognizable headers yields an empty map.
func ExtractSections(text string) types.SectionMap {
	upper := strings.ToUpper(text)

	type headerHit struct {
		offset  int
		name    string
		keyword string
	}
	var hits []headerHit

	for _, group := range sectionKeywords {
		for _, keyword := range group.keywords {
			pos := strings.Index(upper, keyword)
			if pos == -1 {
				continue
			}
			// lineStart is -1 at the top of the document, which makes
			// pos-(lineStart+1) the offset into the first line.
			lineStart := strings.LastIndex(upper[:pos], "\n")
			if pos-(lineStart+1) < headerLineSlack {
				hits = append(hits, headerHit{offset: pos, name: group.name, keyword: keyword})
				break // first matching keyword per section wins
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	var sm types.SectionMap
	for i, hit := range hits {
		end := len(text)
		if i < len(hits)-1 {
			end = hits[i+1].offset
		}

		body := strings.TrimSpace(text[hit.offset:end])
		body = stripHeaderKeyword(body, hit.keyword)

		sm.Sections = append(sm.Sections, types.Section{
			Name:   hit.name,
			Offset: hit.offset,
			Text:   strings.TrimSpace(body),
		})
	}

	return sm
}

func stripHeaderKeyword(body, keyword string) string {
	re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(keyword) + `[:\s]*`)
	return re.ReplaceAllString(body, "")
}
