package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// newsCardSelector identifies headline card containers on the news front
// page. The attribute value is the site's own structural marker.
const newsCardSelector = `div[data-testid="liverpool-card"]`

// NewsExtractor pulls headline cards from the news front page. Titles come
// from the card heading, descriptions from the first paragraph, and links
// from the first anchor, resolved against the page origin.
type NewsExtractor struct {
	base     *url.URL
	maxItems int
}

// NewNewsExtractor creates an extractor resolving links against pageURL.
func NewNewsExtractor(pageURL string, maxItems int) (*NewsExtractor, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	return &NewsExtractor{base: base, maxItems: maxItems}, nil
}

// Extract returns up to maxItems records in document order. A card without
// a heading is skipped; the remaining cards are unaffected.
func (e *NewsExtractor) Extract(doc *goquery.Document) []Record {
	records := make([]Record, 0, e.maxItems)

	doc.Find(newsCardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(records) >= e.maxItems {
			return false
		}

		title := strings.TrimSpace(card.Find("h2").First().Text())
		description := strings.TrimSpace(card.Find("p").First().Text())

		link := ""
		if href, ok := card.Find("a").First().Attr("href"); ok {
			link = resolveRef(e.base, href)
		}

		record, err := NewRecord(title, description, link)
		if err != nil {
			// Missing heading: drop this card only.
			return true
		}
		records = append(records, record)
		return true
	})

	return records
}
