package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"activities/internal/entry"
)

// IETFExtractor handles RFCs and Internet-Drafts. Most of its work is
// normalizing the many URL shapes IETF documents live under to the canonical
// tools.ietf.org html form before extracting anything.
type IETFExtractor struct{}

// NewIETFExtractor returns the IETF-family extractor.
func NewIETFExtractor() *IETFExtractor {
	return &IETFExtractor{}
}

// Org returns the organization tag.
func (x *IETFExtractor) Org() string {
	return "IETF"
}

// Extract redirects toward the canonical html URL until the document is
// already there, then reads the DC.* metadata.
func (x *IETFExtractor) Extract(doc *goquery.Document, pageURL string) (Outcome, error) {
	target, err := canonicalTarget(doc, pageURL)
	if err != nil {
		return Outcome{}, err
	}
	if target != "" {
		return Outcome{Redirect: target}, nil
	}

	title := metaContent(doc, "DC.Title")
	if title == "" {
		title = collapseSpace(doc.Find("head title").First().Text())
	}
	description := metaContent(doc, "description", "dcterms.abstract", "DC.Description.Abstract")

	clean, err := CleanURL(pageURL)
	if err != nil {
		return Outcome{}, err
	}

	e := entry.New()
	e["title"] = title
	e["description"] = description
	e["org"] = x.Org()
	e["url"] = clean
	return Outcome{Entry: e}, nil
}

// canonicalTarget returns the better URL to fetch instead, or "" when pageURL
// is already the canonical html location.
func canonicalTarget(doc *goquery.Document, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	segs := splitPath(u.Path)
	if len(segs) == 0 {
		return "", ErrNotSpecification
	}

	switch strings.ToLower(u.Host) {
	case "tools.ietf.org":
		switch segs[0] {
		case "html":
			if id := metaContent(doc, "DC.Identifier"); strings.HasPrefix(strings.ToLower(id), "urn:ietf:rfc") {
				rfc := htmlURL("rfc" + id[strings.LastIndex(id, ":")+1:])
				same, err := sameCleanURL(pageURL, rfc)
				if err != nil {
					return "", err
				}
				if !same {
					return rfc, nil
				}
			}
			name, rev := ParseDraftName(segs[len(segs)-1])
			if rev != "" {
				return htmlURL(name), nil
			}
			return "", nil
		case "id", "pdf":
			if len(segs) < 2 {
				return "", ErrNotSpecification
			}
			return htmlURL(segs[1]), nil
		default:
			return "", ErrNotSpecification
		}
	case "www.ietf.org":
		if segs[0] != "id" || len(segs) < 2 {
			return "", ErrNotSpecification
		}
		name := segs[1]
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[:i]
		}
		name, _ = ParseDraftName(name)
		return htmlURL(name), nil
	case "datatracker.ietf.org":
		if segs[0] != "doc" || len(segs) < 2 {
			return "", ErrNotSpecification
		}
		return htmlURL(segs[1]), nil
	default:
		return "", ErrNotSpecification
	}
}

// ParseDraftName splits an Internet-Draft document name into its base name
// and revision. Only a trailing -NN with exactly two digits counts as a
// revision; anything else leaves the name whole.
func ParseDraftName(name string) (string, string) {
	i := strings.LastIndex(name, "-")
	if i < 0 {
		return name, ""
	}
	rev := name[i+1:]
	if len(rev) == 2 && isDigits(rev) {
		return name[:i], rev
	}
	return name, ""
}

// htmlURL returns the canonical html URL for an IETF document name.
func htmlURL(docName string) string {
	return "https://tools.ietf.org/html/" + docName
}

func sameCleanURL(a, b string) (bool, error) {
	ca, err := CleanURL(a)
	if err != nil {
		return false, err
	}
	cb, err := CleanURL(b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}

// metaContent returns the content of the first <head><meta> whose name
// matches one of names, tried in order, with whitespace collapsed. Missing
// tags yield "".
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		sel := doc.Find(fmt.Sprintf("head meta[name=%q]", name)).First()
		if content, ok := sel.Attr("content"); ok {
			return collapseSpace(content)
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
