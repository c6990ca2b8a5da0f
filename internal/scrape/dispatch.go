package scrape

import (
	"strings"

	"github.com/jonathan/scraper-api/internal/config"
)

// Supported scrape categories.
const (
	TypeNews   = "news"
	TypeQuotes = "quotes"
)

// Request identifies what to scrape. URL is only consulted for routing;
// every source fetches its own fixed page.
type Request struct {
	URL  string
	Type string
}

// Source pairs an extractor with the fixed page it understands.
type Source struct {
	Name      string
	URL       string
	Extractor Extractor
}

// Dispatcher routes a scrape request to the source that can serve it.
type Dispatcher struct {
	news   *Source
	board  *Source
	quotes *Source

	newsHost  string
	boardHost string
}

// NewDispatcher builds the fixed source set from configuration.
func NewDispatcher(cfg *config.ScrapeConfig) (*Dispatcher, error) {
	newsExtractor, err := NewNewsExtractor(cfg.NewsURL, cfg.NewsMaxItems)
	if err != nil {
		return nil, err
	}
	boardExtractor, err := NewBoardExtractor(cfg.BoardURL, cfg.BoardMaxItems)
	if err != nil {
		return nil, err
	}

	newsBase, err := parsePageURL(cfg.NewsURL)
	if err != nil {
		return nil, err
	}
	boardBase, err := parsePageURL(cfg.BoardURL)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		news:      &Source{Name: "news", URL: cfg.NewsURL, Extractor: newsExtractor},
		board:     &Source{Name: "board", URL: cfg.BoardURL, Extractor: boardExtractor},
		quotes:    &Source{Name: "quotes", URL: cfg.QuotesURL, Extractor: NewQuoteExtractor(cfg.QuotesURL, cfg.QuotesMaxItems)},
		newsHost:  strings.ToLower(newsBase.Host),
		boardHost: strings.ToLower(boardBase.Host),
	}, nil
}

// Select returns the source for a request. Category "quotes" ignores the
// request URL. Category "news" routes by the host named in the URL and
// falls back to the discussion board for any other or absent URL; the
// fallback is a documented default, not a failure. An unrecognized category
// selects nothing, which the pipeline reports as an empty success.
func (d *Dispatcher) Select(req Request) (*Source, bool) {
	switch req.Type {
	case TypeQuotes:
		return d.quotes, true
	case TypeNews:
		target := strings.ToLower(req.URL)
		if strings.Contains(target, d.newsHost) {
			return d.news, true
		}
		// Board host, unknown host, or no URL at all: the board is the
		// documented default for the news category.
		return d.board, true
	default:
		return nil, false
	}
}
