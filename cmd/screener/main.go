// Package main provides the entry point for the resume screener CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening and candidate ranking",
	Long:  "Resume Screener extracts structured profiles from resumes and job descriptions, scores candidate fit across skills, experience, education and text similarity, and ranks candidate pools against a requisition.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
