package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"activities/internal/entry"
)

// Resolve fetches rawURL and extracts a dataset entry, following "better
// URL" signals up to maxRedirects times. The extractor is chosen once from
// the original URL's host and stays fixed across redirects. Any fetch, parse,
// or extraction failure aborts the whole operation; a WHATWG org tag is
// normalized to W3C before the entry is returned, since the dataset schema
// buckets WHATWG work under W3C.
func Resolve(ctx context.Context, fetcher Fetcher, resolver *Resolver, rawURL string, maxRedirects int, logger *zap.Logger) (entry.Entry, error) {
	ext, err := resolver.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	current := rawURL
	for redirects := 0; ; redirects++ {
		if redirects > maxRedirects {
			return nil, fmt.Errorf("redirect limit %d exceeded at %s", maxRedirects, current)
		}

		body, err := fetcher.Fetch(ctx, current)
		if err != nil {
			return nil, err
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", current, err)
		}

		outcome, err := ext.Extract(doc, current)
		if err != nil {
			return nil, err
		}
		if outcome.Redirect != "" {
			logger.Info("Trying a better URL", zap.String("url", outcome.Redirect))
			current = outcome.Redirect
			continue
		}

		e := outcome.Entry
		if e.String("org") == "WHATWG" {
			logger.Debug("Normalizing WHATWG org tag to W3C")
			e["org"] = "W3C"
		}
		return e, nil
	}
}
