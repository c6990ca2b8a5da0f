package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// quoteBlockSelector identifies quote blocks on the quotes listing page.
const quoteBlockSelector = "div.quote"

// quoteDescriptionPrefix is prepended to the author name.
const quoteDescriptionPrefix = "By "

// QuoteExtractor pulls quote blocks from the quotes listing page. The quote
// text becomes the title and the author the description. Quotes have no
// individual permalinks, so every record links to the listing page itself.
type QuoteExtractor struct {
	pageURL  string
	maxItems int
}

// NewQuoteExtractor creates an extractor for the listing at pageURL.
func NewQuoteExtractor(pageURL string, maxItems int) *QuoteExtractor {
	return &QuoteExtractor{pageURL: pageURL, maxItems: maxItems}
}

// Extract returns up to maxItems records in document order. A block missing
// either the quote text or the author is skipped; the remaining blocks are
// unaffected.
func (e *QuoteExtractor) Extract(doc *goquery.Document) []Record {
	records := make([]Record, 0, e.maxItems)

	doc.Find(quoteBlockSelector).EachWithBreak(func(_ int, quote *goquery.Selection) bool {
		if len(records) >= e.maxItems {
			return false
		}

		text := strings.TrimSpace(quote.Find("span.text").First().Text())
		author := strings.TrimSpace(quote.Find("small.author").First().Text())
		if text == "" || author == "" {
			return true
		}

		record, err := NewRecord(text, quoteDescriptionPrefix+author, e.pageURL)
		if err != nil {
			return true
		}
		records = append(records, record)
		return true
	})

	return records
}
