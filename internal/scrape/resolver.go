package scrape

import (
	"fmt"
	"net/url"
	"strings"
)

// whatwgSuffix routes any *.spec.whatwg.org host to the W3C-family extractor
// tagged as WHATWG.
const whatwgSuffix = ".spec.whatwg.org"

// Resolver maps a URL's host to the extractor family responsible for it.
type Resolver struct {
	table  map[string]Extractor
	whatwg Extractor
}

// NewResolver builds the static host table.
func NewResolver() *Resolver {
	w3c := NewW3CExtractor("W3C")
	ietf := NewIETFExtractor()
	return &Resolver{
		table: map[string]Extractor{
			"www.w3.org":           w3c,
			"w3c.github.io":        w3c,
			"wicg.github.io":       w3c,
			"dev.w3.org":           w3c,
			"dvcs.w3.org":          w3c,
			"drafts.csswg.org":     w3c,
			"w3ctag.github.io":     w3c,
			"datatracker.ietf.org": ietf,
			"www.ietf.org":         ietf,
			"tools.ietf.org":       ietf,
			"http2.github.io":      ietf,
			"httpwg.github.io":     ietf,
			"httpwg.org":           ietf,
		},
		whatwg: NewW3CExtractor("WHATWG"),
	}
}

// Resolve picks the extractor for rawURL's host. An unrecognized host is
// fatal to the whole operation.
func (r *Resolver) Resolve(rawURL string) (Extractor, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	host := strings.ToLower(u.Host)
	if ext, ok := r.table[host]; ok {
		return ext, nil
	}
	if strings.HasSuffix(host, whatwgSuffix) {
		return r.whatwg, nil
	}
	return nil, fmt.Errorf("can't figure out what organization %s belongs to", host)
}
