package scrape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func newsCard(title, description, href string) string {
	var b strings.Builder
	b.WriteString(`<div data-testid="liverpool-card">`)
	if title != "" {
		b.WriteString("<h2>" + title + "</h2>")
	}
	if description != "" {
		b.WriteString("<p>" + description + "</p>")
	}
	if href != "" {
		b.WriteString(`<a href="` + href + `">link</a>`)
	}
	b.WriteString("</div>")
	return b.String()
}

func TestNewsExtractor_WellFormedCards(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	html := "<html><body>" +
		newsCard("First headline", "First summary", "/news/articles/abc") +
		newsCard("Second headline", "Second summary", "https://www.bbc.com/news/articles/def") +
		"</body></html>"

	records := extractor.Extract(parseDoc(t, html))
	require.Len(t, records, 2)

	assert.Equal(t, "First headline", records[0].Title)
	assert.Equal(t, "First summary", records[0].Description)
	assert.Equal(t, "https://www.bbc.com/news/articles/abc", records[0].URL)

	assert.Equal(t, "Second headline", records[1].Title)
	assert.Equal(t, "https://www.bbc.com/news/articles/def", records[1].URL, "absolute href should pass through unchanged")
}

func TestNewsExtractor_ResolvesRelativeHref(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	html := newsCard("Headline", "", "/news/123")
	records := extractor.Extract(parseDoc(t, html))
	require.Len(t, records, 1)
	assert.Equal(t, "https://www.bbc.com/news/123", records[0].URL)
}

func TestNewsExtractor_MissingOptionalFields(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	html := newsCard("Headline only", "", "")
	records := extractor.Extract(parseDoc(t, html))
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Description, "missing paragraph maps to empty string")
	assert.Equal(t, "", records[0].URL, "missing anchor maps to empty string")
}

func TestNewsExtractor_SkipsCardWithoutHeading(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	html := newsCard("Before", "", "") +
		newsCard("", "orphan summary", "/news/orphan") +
		newsCard("After", "", "")

	records := extractor.Extract(parseDoc(t, html))
	require.Len(t, records, 2, "malformed card should be skipped without aborting the batch")
	assert.Equal(t, "Before", records[0].Title)
	assert.Equal(t, "After", records[1].Title)
}

func TestNewsExtractor_TruncatesToMaxItems(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	var b strings.Builder
	for i := 0; i < 25; i++ {
		b.WriteString(newsCard(fmt.Sprintf("Headline %d", i), "", ""))
	}

	records := extractor.Extract(parseDoc(t, b.String()))
	require.Len(t, records, 10)
	assert.Equal(t, "Headline 0", records[0].Title, "records should follow document order")
	assert.Equal(t, "Headline 9", records[9].Title)
}

func TestNewsExtractor_EmptyDocument(t *testing.T) {
	extractor, err := NewNewsExtractor("https://www.bbc.com/news", 10)
	require.NoError(t, err)

	records := extractor.Extract(parseDoc(t, "<html><body><p>no cards here</p></body></html>"))
	assert.Empty(t, records)
}

func TestNewNewsExtractor_InvalidPageURL(t *testing.T) {
	_, err := NewNewsExtractor("not-a-url", 10)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
