// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(title string, profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	}
	if profile.SourceFile != "" {
		sb.WriteString(fmt.Sprintf("Source:     %s\n", profile.SourceFile))
	}
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", profile.SeniorityLevel))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.YearsExperience))
	if profile.Education.HighestLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.Education.HighestLevel))
	}

	if len(profile.SkillProfile.Skills) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.SkillProfile.Skills)))
		count := min(len(profile.SkillProfile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.SkillProfile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill))
			if n := profile.SkillProfile.MentionCount[skill]; n > 1 {
				sb.WriteString(fmt.Sprintf(" (×%d)", n))
			}
			sb.WriteString("\n")
		}
		if len(profile.SkillProfile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.SkillProfile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.Certifications) > 0 {
		sb.WriteString("\n")
		sb.WriteString("Certifications:\n")
		count := min(len(profile.Certifications), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Certifications[i]))
		}
		if len(profile.Certifications) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Certifications)-3))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFitResult outputs the score breakdown for one candidate/job pair.
func (p *Printer) PrintFitResult(result *types.FitResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f (%s)\n", result.OverallScore, result.FitLevel))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:     %.2f (%d/%d matched)\n",
		result.SkillMatch.MatchPercentage, result.SkillMatch.TotalMatched, result.SkillMatch.TotalRequired))
	sb.WriteString(fmt.Sprintf("Experience: %.2f\n", result.ExperienceMatch.Score))
	sb.WriteString(fmt.Sprintf("Education:  %.2f\n", result.EducationMatch.Score))
	sb.WriteString(fmt.Sprintf("Text:       %.2f\n", result.TextSimilarity))
	sb.WriteString(fmt.Sprintf("Semantic:   %.2f\n", result.SemanticSimilarity))

	if len(result.SkillMatch.MissingSkills) > 0 {
		sb.WriteString("\n")
		sb.WriteString("Missing Skills:\n")
		count := min(len(result.SkillMatch.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.SkillMatch.MissingSkills[i]))
		}
		if len(result.SkillMatch.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillMatch.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("FIT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top N ranked candidates with scores.
func (p *Printer) PrintRankedCandidates(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked[i]
		label := rc.Name
		if label == "" {
			label = rc.SourceFile
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rc.Rank, label))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", rc.Result.OverallScore, rc.Result.FitLevel))
		if len(rc.Result.SkillMatch.MatchedSkills) > 0 {
			skills := strings.Join(rc.Result.SkillMatch.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}
