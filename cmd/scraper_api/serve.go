package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/scraper-api/internal/config"
	"github.com/jonathan/scraper-api/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the authenticated scraping endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	googleCfg, err := config.NewGoogleConfig()
	if err != nil {
		return fmt.Errorf("failed to create Google config: %w", err)
	}

	scrapeCfg, err := config.NewScrapeConfig()
	if err != nil {
		return fmt.Errorf("failed to create scrape config: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		CORSOrigins: config.CORSOrigins(),
		Scrape:      scrapeCfg,
		JWT:         jwtCfg,
		Google:      googleCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
