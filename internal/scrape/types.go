package scrape

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"

	"activities/internal/entry"
)

// ErrNotSpecification is returned when a URL is recognized as belonging to an
// organization but plainly doesn't point at a specification document.
var ErrNotSpecification = errors.New("that doesn't look like a specification")

// Outcome is the result of one extraction attempt. Exactly one of Entry or
// Redirect is set: a non-empty Redirect means the document told us to look at
// a better URL instead.
type Outcome struct {
	Entry    entry.Entry
	Redirect string
}

// Extractor turns a parsed document into a dataset entry, or signals a
// redirect to a more canonical URL.
type Extractor interface {
	// Extract inspects doc, which was fetched from pageURL.
	Extract(doc *goquery.Document, pageURL string) (Outcome, error)
	// Org is the organization tag the extractor stamps on entries.
	Org() string
}

// Fetcher retrieves a URL's body. Non-success HTTP statuses are errors.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
