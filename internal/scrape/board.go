package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// boardRowSelector identifies story rows on the discussion board front page.
const boardRowSelector = "tr.athing"

// boardStoryDescription is the fixed label for board records; the source
// carries no per-item description.
const boardStoryDescription = "Hacker News Story"

// BoardExtractor pulls story rows from the discussion board front page.
// The story anchor supplies both title and link; board-internal short-form
// hrefs such as "item?id=1" are rewritten to absolute URLs.
type BoardExtractor struct {
	base     *url.URL
	maxItems int
}

// NewBoardExtractor creates an extractor resolving links against pageURL.
func NewBoardExtractor(pageURL string, maxItems int) (*BoardExtractor, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	return &BoardExtractor{base: base, maxItems: maxItems}, nil
}

// Extract returns up to maxItems records in document order. A row without a
// title-line anchor is skipped; the remaining rows are unaffected.
func (e *BoardExtractor) Extract(doc *goquery.Document) []Record {
	records := make([]Record, 0, e.maxItems)

	doc.Find(boardRowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(records) >= e.maxItems {
			return false
		}

		anchor := row.Find("span.titleline a").First()
		if anchor.Length() == 0 {
			// Not a story row: drop it only.
			return true
		}

		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")

		record, err := NewRecord(title, boardStoryDescription, resolveRef(e.base, href))
		if err != nil {
			return true
		}
		records = append(records, record)
		return true
	})

	return records
}
