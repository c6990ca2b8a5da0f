package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default source pages. Each extractor is written against the markup of
// exactly one of these sites.
const (
	DefaultNewsURL   = "https://www.bbc.com/news"
	DefaultBoardURL  = "https://news.ycombinator.com/"
	DefaultQuotesURL = "https://quotes.toscrape.com/"
)

// DefaultFetchTimeout bounds a single outbound fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent on every outbound fetch.
const DefaultUserAgent = "Mozilla/5.0"

// ScrapeConfig holds the fixed source set and fetch behavior for the
// scraping pipeline. It is constructed once at startup and passed down;
// nothing in the pipeline reads the environment directly.
type ScrapeConfig struct {
	NewsURL   string
	BoardURL  string
	QuotesURL string

	Timeout   time.Duration
	UserAgent string

	// Per-source item caps, matching each site's front-page size.
	NewsMaxItems   int
	BoardMaxItems  int
	QuotesMaxItems int
}

// NewScrapeConfig creates scraping configuration from environment variables.
// It reads SCRAPE_NEWS_URL, SCRAPE_BOARD_URL, SCRAPE_QUOTES_URL and
// SCRAPE_TIMEOUT_SECONDS, all optional with defaults.
func NewScrapeConfig() (*ScrapeConfig, error) {
	cfg := &ScrapeConfig{
		NewsURL:        envOrDefault("SCRAPE_NEWS_URL", DefaultNewsURL),
		BoardURL:       envOrDefault("SCRAPE_BOARD_URL", DefaultBoardURL),
		QuotesURL:      envOrDefault("SCRAPE_QUOTES_URL", DefaultQuotesURL),
		Timeout:        DefaultFetchTimeout,
		UserAgent:      DefaultUserAgent,
		NewsMaxItems:   10,
		BoardMaxItems:  15,
		QuotesMaxItems: 10,
	}

	if timeoutStr := os.Getenv("SCRAPE_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPE_TIMEOUT_SECONDS: %v", err)
		}
		if seconds < 1 {
			return nil, fmt.Errorf("SCRAPE_TIMEOUT_SECONDS must be at least 1, got: %d", seconds)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
