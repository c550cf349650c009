package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort           int
	serveFuzzyThreshold int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for profile extraction, matching and batch ranking. DATABASE_URL enables persistence endpoints; GEMINI_API_KEY enables semantic similarity scoring.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveFuzzyThreshold, "fuzzy-threshold", 0, "Fuzzy skill match acceptance score (1-100)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:           servePort,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
		FuzzyThreshold: serveFuzzyThreshold,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
