package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/scraper-api/internal/config"
)

func pipelineConfig(newsURL, boardURL, quotesURL string) *config.ScrapeConfig {
	cfg := testScrapeConfig()
	if newsURL != "" {
		cfg.NewsURL = newsURL
	}
	if boardURL != "" {
		cfg.BoardURL = boardURL
	}
	if quotesURL != "" {
		cfg.QuotesURL = quotesURL
	}
	return cfg
}

func htmlServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestPipeline_NewsTruncationWithMalformedCard(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 3; i++ {
		b.WriteString(newsCard("Good headline", "summary", "/news/x"))
	}
	b.WriteString(newsCard("", "malformed, no heading", "/news/bad"))
	for i := 0; i < 9; i++ {
		b.WriteString(newsCard("Good headline", "summary", "/news/y"))
	}
	b.WriteString("</body></html>")

	server := htmlServer(t, b.String())
	pipeline, err := NewPipeline(pipelineConfig(server.URL, "", ""))
	require.NoError(t, err)

	outcome := pipeline.Run(context.Background(), Request{Type: TypeNews, URL: server.URL})

	assert.True(t, outcome.Success)
	require.Len(t, outcome.Data, 10, "12 well-formed cards should truncate to 10, malformed excluded")
	for _, record := range outcome.Data {
		assert.NotEmpty(t, record.Title)
		assert.NotContains(t, record.URL, "/news/bad")
	}
	assert.Equal(t, "Successfully scraped 10 items", outcome.Message)
	assert.False(t, outcome.ScrapedAt.IsZero())
}

func TestPipeline_FetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	t.Cleanup(server.Close)

	cfg := pipelineConfig("", server.URL, "")
	cfg.Timeout = 50 * time.Millisecond

	pipeline, err := NewPipeline(cfg)
	require.NoError(t, err)

	before := time.Now()
	outcome := pipeline.Run(context.Background(), Request{Type: TypeNews})

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Data)
	assert.True(t, strings.HasPrefix(outcome.Message, "Error: "))
	assert.False(t, outcome.ScrapedAt.Before(before), "failure envelope still carries capture time")
}

func TestPipeline_UpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	pipeline, err := NewPipeline(pipelineConfig("", server.URL, ""))
	require.NoError(t, err)

	outcome := pipeline.Run(context.Background(), Request{Type: TypeNews})

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Data)
	assert.Contains(t, outcome.Message, "500")
}

func TestPipeline_QuotesWithMissingAuthor(t *testing.T) {
	html := quoteBlock("First quote.", "Author One") +
		quoteBlock("Orphan quote, no author.", "") +
		quoteBlock("Third quote.", "Author Three")

	server := htmlServer(t, html)
	pipeline, err := NewPipeline(pipelineConfig("", "", server.URL))
	require.NoError(t, err)

	outcome := pipeline.Run(context.Background(), Request{Type: TypeQuotes})

	assert.True(t, outcome.Success)
	require.Len(t, outcome.Data, 2)
	for _, record := range outcome.Data {
		assert.True(t, strings.HasPrefix(record.Description, "By "))
	}
	assert.Equal(t, "Successfully scraped 2 items", outcome.Message)
}

func TestPipeline_UnrecognizedCategory(t *testing.T) {
	pipeline, err := NewPipeline(testScrapeConfig())
	require.NoError(t, err)

	outcome := pipeline.Run(context.Background(), Request{Type: "weather", URL: "https://example.com"})

	// Documented default: empty result, not an error, and no fetch happens.
	assert.True(t, outcome.Success)
	assert.NotNil(t, outcome.Data)
	assert.Empty(t, outcome.Data)
	assert.Equal(t, "Successfully scraped 0 items", outcome.Message)
	assert.False(t, outcome.ScrapedAt.IsZero())
}

func TestPipeline_DefaultNewsRoutesToBoard(t *testing.T) {
	boardHTML := boardPage(boardRow("Board story", "item?id=1"))
	boardServer := htmlServer(t, boardHTML)

	pipeline, err := NewPipeline(pipelineConfig("", boardServer.URL, ""))
	require.NoError(t, err)

	outcome := pipeline.Run(context.Background(), Request{Type: TypeNews, URL: "https://unknown-site.example"})

	assert.True(t, outcome.Success)
	require.Len(t, outcome.Data, 1)
	assert.Equal(t, "Board story", outcome.Data[0].Title)
}
