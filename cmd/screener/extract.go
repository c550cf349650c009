package main

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a resume or job description",
	Long:  "Extract a structured profile (skills, education, seniority, years of experience, contact facts) from a resume or job description file and emit it as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile      string
	extractOutputFile     string
	extractKind           string
	extractFuzzyThreshold int
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume or job description file (.txt, .md, .html)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractKind, "kind", db.KindCandidate, "Document kind: candidate or job")
	extractCmd.Flags().IntVar(&extractFuzzyThreshold, "fuzzy-threshold", 0, "Fuzzy skill match acceptance score (1-100)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractKind != db.KindCandidate && extractKind != db.KindJob {
		return fmt.Errorf("--kind must be %q or %q", db.KindCandidate, db.KindJob)
	}

	doc, err := ingestion.LoadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	builder := ingestion.NewBuilder(newExtractor(extractFuzzyThreshold))

	var profile *types.Profile
	if extractKind == db.KindJob {
		profile = builder.JobProfile(doc, nil)
	} else {
		profile = builder.CandidateProfile(doc)
	}

	if err := validateAgainstSchema("profile.schema.json", profile); err != nil {
		return err
	}
	return writeJSON(extractOutputFile, profile)
}
