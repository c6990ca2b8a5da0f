// Package main provides the entry point for the Web Scraper API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scraper_api",
	Short: "Web Scraper API server",
	Long:  "Web Scraper API fetches a fixed set of third-party sites and serves normalized records over a JWT-protected REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
