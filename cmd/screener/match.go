package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against a job description",
	Long:  "Score a single resume against a job description (from a file or a URL) and emit the fit result with skill, experience, education and similarity breakdowns plus recommendations.",
	RunE:  runMatch,
}

var (
	matchConfigFile     string
	matchResumeFile     string
	matchJobFile        string
	matchJobURL         string
	matchSkills         []string
	matchAPIKey         string
	matchOutputFile     string
	matchFuzzyThreshold int
	matchVerbose        bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringSliceVar(&matchSkills, "skills", nil, "Required skills, overriding detection (comma-separated)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key for semantic similarity (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().IntVar(&matchFuzzyThreshold, "fuzzy-threshold", 0, "Fuzzy skill match acceptance score (1-100)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print scoring details to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(matchConfigFile, config.Config{
		Resume:         matchResumeFile,
		Job:            matchJobFile,
		JobURL:         matchJobURL,
		RequiredSkills: matchSkills,
		APIKey:         matchAPIKey,
		FuzzyThreshold: matchFuzzyThreshold,
		Verbose:        matchVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a resume is required (use --resume or set 'resume' in the config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("a job description is required (use --job or --job-url)")
	}

	ctx := context.Background()

	resumeDoc, err := ingestion.LoadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	jobDoc, err := loadJobDocument(ctx, cfg)
	if err != nil {
		return err
	}

	builder := ingestion.NewBuilder(newExtractor(cfg.FuzzyThreshold))
	candidate := builder.CandidateProfile(resumeDoc)
	job := builder.JobProfile(jobDoc, cfg.RequiredSkills)

	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		return err
	}
	if embedder != nil {
		defer func() { _ = embedder.Close() }()
	}

	scorer := scoring.NewScorer(cfg.Weights, embedder)
	result := scorer.OverallFit(ctx, candidate, job)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile("CANDIDATE PROFILE", candidate)
		printer.PrintProfile("JOB PROFILE", job)
		printer.PrintFitResult(result)
	}

	if err := validateAgainstSchema("match_result.schema.json", result); err != nil {
		return err
	}
	return writeJSON(matchOutputFile, map[string]any{
		"candidate":       candidate,
		"job":             job,
		"result":          result,
		"recommendations": scoring.Recommendations(result),
	})
}

// loadJobDocument resolves the job description from a file or a URL.
func loadJobDocument(ctx context.Context, cfg config.Config) (*ingestion.Document, error) {
	if cfg.JobURL != "" {
		doc, err := ingestion.FetchJobPosting(ctx, cfg.JobURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return doc, nil
	}
	doc, err := ingestion.LoadFile(cfg.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}
	return doc, nil
}

// newEmbedder builds a Gemini embedder when an API key is configured.
// Without a key semantic similarity scores as zero.
func newEmbedder(ctx context.Context, cfg config.Config) (similarity.Embedder, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	embedder, err := similarity.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return embedder, nil
}
