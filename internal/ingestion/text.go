// Package ingestion loads candidate and job documents from files or URLs,
// normalizes their text, and assembles structured profiles.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	intraLineSpace = regexp.MustCompile(`\s+`)
	blankLineRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes document text while preserving line structure:
// line endings become LF, trailing whitespace is stripped, runs of spaces
// collapse to one, indentation and bullet markers are kept, and blank-line
// runs are capped at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLineRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := intraLineSpace.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
