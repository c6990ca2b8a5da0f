package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/scraper-api/internal/config"
	"github.com/jonathan/scraper-api/internal/fetch"
)

// Outcome is the standard response envelope for a scrape request. It is
// constructed once per request and never mutated after return; Data is
// always present in JSON, empty rather than null.
type Outcome struct {
	Success   bool      `json:"success"`
	Data      []Record  `json:"data"`
	Message   string    `json:"message"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// Pipeline runs one scrape request end to end: select a source via the
// dispatcher, fetch its fixed page, parse, extract, envelope. Run never
// returns an error; fetch and parse failures are folded into a
// success:false envelope so callers always receive a well-formed response.
type Pipeline struct {
	dispatcher *Dispatcher
	fetchOpts  *fetch.Options
}

// NewPipeline builds a pipeline over the configured source set.
func NewPipeline(cfg *config.ScrapeConfig) (*Pipeline, error) {
	dispatcher, err := NewDispatcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build dispatcher: %w", err)
	}
	return &Pipeline{
		dispatcher: dispatcher,
		fetchOpts: &fetch.Options{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
		},
	}, nil
}

// Run executes one scrape request. Each invocation is independent and
// stateless; concurrent calls need no coordination.
func (p *Pipeline) Run(ctx context.Context, req Request) Outcome {
	source, ok := p.dispatcher.Select(req)
	if !ok {
		// Unrecognized category: empty result, not an error.
		return successOutcome(nil)
	}

	result, err := fetch.URL(ctx, source.URL, p.fetchOpts)
	if err != nil {
		log.Printf("[scrape] %s source fetch failed: %v", source.Name, err)
		return failureOutcome(err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(result.Body))
	if err != nil {
		parseErr := &ParseError{Message: "document is not parseable markup", Cause: err}
		log.Printf("[scrape] %s source parse failed: %v", source.Name, parseErr)
		return failureOutcome(parseErr)
	}

	return successOutcome(source.Extractor.Extract(doc))
}

func successOutcome(records []Record) Outcome {
	if records == nil {
		records = []Record{}
	}
	return Outcome{
		Success:   true,
		Data:      records,
		Message:   fmt.Sprintf("Successfully scraped %d items", len(records)),
		ScrapedAt: time.Now(),
	}
}

func failureOutcome(err error) Outcome {
	return Outcome{
		Success:   false,
		Data:      []Record{},
		Message:   "Error: " + err.Error(),
		ScrapedAt: time.Now(),
	}
}
