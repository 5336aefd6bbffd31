// Package main provides the entry point for the Founder Blueprint HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blueprint_agent",
	Short: "Founder Blueprint HTTP API Server",
	Long:  "Founder Blueprint turns a startup onboarding profile into an actionable launch plan (legal tasks, team gaps, milestones) and serves personalized recommendations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
