// Package scrape implements the multi-source extraction and normalization
// pipeline: source-specific extractors that turn heterogeneous page markup
// into one common record shape, a dispatcher that routes requests to the
// right extractor, and the orchestrator that wraps everything in a standard
// response envelope.
package scrape

import (
	"fmt"
	"strings"
	"time"
)

// Record is one normalized extracted item. Records are immutable once
// constructed: an extractor either produces a complete Record or discards
// the candidate.
type Record struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewRecord constructs a Record and stamps its capture time. Title must be
// non-empty; description and url may be empty strings.
func NewRecord(title, description, url string) (Record, error) {
	if strings.TrimSpace(title) == "" {
		return Record{}, fmt.Errorf("record title cannot be empty")
	}
	return Record{
		Title:       title,
		Description: description,
		URL:         url,
		Timestamp:   time.Now(),
	}, nil
}
