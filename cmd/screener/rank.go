package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of resumes against a job description",
	Long:  "Score every resume in a directory against one job description (from a file or a URL) and emit the candidates ordered by overall fit, best first.",
	RunE:  runRank,
}

var (
	rankConfigFile     string
	rankResumeDir      string
	rankJobFile        string
	rankJobURL         string
	rankJobTitle       string
	rankSkills         []string
	rankAPIKey         string
	rankOutputFile     string
	rankFuzzyThreshold int
	rankVerbose        bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to JSON config file")
	rankCmd.Flags().StringVarP(&rankResumeDir, "resume-dir", "d", "", "Directory of resume files")
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job description file")
	rankCmd.Flags().StringVar(&rankJobURL, "job-url", "", "URL to fetch the job posting from")
	rankCmd.Flags().StringVar(&rankJobTitle, "job-title", "", "Label for the requisition in the output")
	rankCmd.Flags().StringSliceVar(&rankSkills, "skills", nil, "Required skills, overriding detection (comma-separated)")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key for semantic similarity (overrides GEMINI_API_KEY env var)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().IntVar(&rankFuzzyThreshold, "fuzzy-threshold", 0, "Fuzzy skill match acceptance score (1-100)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a ranking summary to stderr")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(rankConfigFile, config.Config{
		ResumeDir:      rankResumeDir,
		Job:            rankJobFile,
		JobURL:         rankJobURL,
		RequiredSkills: rankSkills,
		APIKey:         rankAPIKey,
		FuzzyThreshold: rankFuzzyThreshold,
		Verbose:        rankVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.ResumeDir == "" {
		return fmt.Errorf("a resume directory is required (use --resume-dir or set 'resume_dir' in the config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("a job description is required (use --job or --job-url)")
	}

	ctx := context.Background()

	docs, err := ingestion.LoadDir(cfg.ResumeDir)
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no resume files found in %s", cfg.ResumeDir)
	}

	jobDoc, err := loadJobDocument(ctx, cfg)
	if err != nil {
		return err
	}

	builder := ingestion.NewBuilder(newExtractor(cfg.FuzzyThreshold))
	job := builder.JobProfile(jobDoc, cfg.RequiredSkills)

	candidates := make([]*types.Profile, len(docs))
	for i, doc := range docs {
		candidates[i] = builder.CandidateProfile(doc)
	}

	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		return err
	}
	if embedder != nil {
		defer func() { _ = embedder.Close() }()
	}

	scorer := scoring.NewScorer(cfg.Weights, embedder)
	ranked, err := scoring.RankCandidates(ctx, scorer, job, candidates)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile("JOB PROFILE", job)
		printer.PrintRankedCandidates(ranked)
	}

	if err := validateAgainstSchema("ranked_matches.schema.json", ranked); err != nil {
		return err
	}
	return writeJSON(rankOutputFile, map[string]any{
		"job_title":        rankJobTitle,
		"job":              job,
		"total_candidates": len(ranked),
		"matches":          ranked,
	})
}
