// Package textnorm extracts contact facts, a candidate-name guess, resume
// section spans, and a years-of-experience estimate from raw document text
// using fixed pattern rules. Everything here is best-effort: absence of a
// match is a defined empty result, never an error.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)
	urlPattern      = regexp.MustCompile(`http[s]?://(?:[a-zA-Z0-9$\-_@.&+!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ExtractContactFacts pulls contact information out of raw text. Each field is
// the first match of its pattern anywhere in the text; OtherURLs collects all
// generic URL matches in document order.
func ExtractContactFacts(text string) types.ContactFacts {
	return types.ContactFacts{
		Email:       emailPattern.FindString(text),
		Phone:       strings.TrimSpace(phonePattern.FindString(text)),
		LinkedInURL: linkedinPattern.FindString(text),
		GitHubURL:   githubPattern.FindString(text),
		OtherURLs:   urlPattern.FindAllString(text, -1),
	}
}

// maxNameLines bounds how far into the document the name heuristic looks.
const maxNameLines = 5

// ExtractName guesses the candidate name from the top of the document.
// It scans the first few non-empty lines, skips any line carrying an email,
// phone, or URL, and returns the first line of 2-4 words that all start with
// an uppercase letter. Returns "" when no line qualifies.
//
// This is a best-effort heuristic: a short capitalized job-title line at the
// top of a document can be misidentified as a name.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxNameLines {
			break
		}
	}

	for _, line := range lines {
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		if urlPattern.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allWordsCapitalized(words) {
			return line
		}
	}

	return ""
}

func allWordsCapitalized(words []string) bool {
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
