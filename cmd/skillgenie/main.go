// Package main provides the entry point for the SkillGenie CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgenie",
	Short: "SkillGenie learning-roadmap service",
	Long:  "SkillGenie serves personalized learning roadmaps, market analytics, quizzes and video recommendations driven by a user questionnaire.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
