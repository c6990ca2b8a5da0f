package scrape

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Extractor parses one fetched source document into zero or more Records.
// Implementations are coupled to the markup of a single site. A malformed
// candidate is skipped without affecting the rest of the batch; a document
// with no matching elements yields an empty slice, not an error.
type Extractor interface {
	Extract(doc *goquery.Document) []Record
}

// resolveRef resolves href against the source page URL. Absolute hrefs pass
// through unchanged; unparseable hrefs resolve to "".
func resolveRef(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// parsePageURL validates a configured source page URL for use as a
// resolution base.
func parsePageURL(pageURL string) (*url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &ParseError{
			Message: "invalid source page URL: " + pageURL,
			Cause:   err,
		}
	}
	return base, nil
}
