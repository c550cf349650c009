package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Explicit phrases like "5 years experience", "7+ years of experience",
	// "experience: 3 years", "5-7 years experience".
	yearsPhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\s*-\s*\d+\s*years?\s*(?:of\s*)?experience`),
	}

	// Employment date ranges like "2019 - 2023" and "2020 - present".
	yearRangePattern   = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	yearPresentPattern = regexp.MustCompile(`(\d{4})\s*-\s*(?:present|current)`)
)

// maxPlausibleDuration bounds a single role's duration; longer spans are
// treated as noise (e.g. a page range or a year typo).
const maxPlausibleDuration = 50

// ExtractYearsOfExperience estimates total years of experience from raw text.
// It takes the maximum of (a) the largest explicit "<n> years experience"
// phrase and (b) the summed durations of employment date ranges, resolving
// "present" against the current year.
//
// Summing date ranges double-counts overlapping roles. That is a documented
// approximation carried over from the scoring model this feeds, not a defect
// to correct here.
func ExtractYearsOfExperience(text string) int {
	return yearsOfExperienceAt(text, time.Now().Year())
}

func yearsOfExperienceAt(text string, currentYear int) int {
	lower := strings.ToLower(text)

	maxPhrase := 0
	for _, pattern := range yearsPhrasePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if years, err := strconv.Atoi(m[1]); err == nil && years > maxPhrase {
				maxPhrase = years
			}
		}
	}

	totalRanges := 0
	for _, m := range yearRangePattern.FindAllStringSubmatch(lower, -1) {
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		totalRanges += boundedDuration(end - start)
	}
	for _, m := range yearPresentPattern.FindAllStringSubmatch(lower, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		totalRanges += boundedDuration(currentYear - start)
	}

	if totalRanges > maxPhrase {
		return totalRanges
	}
	return maxPhrase
}

func boundedDuration(d int) int {
	if d > 0 && d < maxPlausibleDuration {
		return d
	}
	return 0
}
