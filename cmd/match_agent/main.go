// Package main provides the entry point for the resume matching CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Skill matching and relevance scoring CLI",
	Long:  "match_agent scores candidate profiles against job requisitions: skill matching with synonym and hierarchy support, achievement ranking, weighted match scoring, and improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
