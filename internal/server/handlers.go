package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/scraper-api/internal/scrape"
)

// Scraper runs one scrape request end to end. The pipeline implements it;
// tests substitute stubs.
type Scraper interface {
	Run(ctx context.Context, req scrape.Request) scrape.Outcome
}

// ScrapeRequest represents the request body for POST /scrape.
type ScrapeRequest struct {
	URL        string `json:"url" validate:"required"`
	ScrapeType string `json:"scrape_type"`
}

// handleRoot confirms the API is running.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Web Scraper API is running!",
	})
}

// handleHealth returns service health for monitoring.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleScrape is the general scraping endpoint: the body names a category
// and a target URL, and the dispatcher picks the matching source.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.ScrapeType == "" {
		req.ScrapeType = scrape.TypeNews
	}

	outcome := s.scraper.Run(r.Context(), scrape.Request{
		URL:  req.URL,
		Type: req.ScrapeType,
	})
	s.jsonResponse(w, http.StatusOK, outcome)
}

// handleScrapeNews is the quick endpoint for the default news source.
func (s *Server) handleScrapeNews(w http.ResponseWriter, r *http.Request) {
	outcome := s.scraper.Run(r.Context(), scrape.Request{Type: scrape.TypeNews})
	s.jsonResponse(w, http.StatusOK, withCountMessage(outcome, "news items"))
}

// handleScrapeQuotes is the quick endpoint for the quote source.
func (s *Server) handleScrapeQuotes(w http.ResponseWriter, r *http.Request) {
	outcome := s.scraper.Run(r.Context(), scrape.Request{Type: scrape.TypeQuotes})
	s.jsonResponse(w, http.StatusOK, withCountMessage(outcome, "quotes"))
}

// withCountMessage rephrases a successful envelope's message with the
// endpoint's own noun. Failure envelopes pass through untouched.
func withCountMessage(outcome scrape.Outcome, noun string) scrape.Outcome {
	if !outcome.Success {
		return outcome
	}
	outcome.Message = fmt.Sprintf("Successfully scraped %d %s", len(outcome.Data), noun)
	return outcome
}
