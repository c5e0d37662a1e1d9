package scrape

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"activities/internal/entry"
)

// W3CExtractor handles W3C-style documents: TR pages, editor's drafts, and
// WHATWG living standards (same markup conventions, different org tag).
type W3CExtractor struct {
	org string
}

// NewW3CExtractor returns an extractor stamping entries with org.
func NewW3CExtractor(org string) *W3CExtractor {
	return &W3CExtractor{org: org}
}

// Org returns the organization tag.
func (x *W3CExtractor) Org() string {
	return x.org
}

// Extract reads the document's metadata block. A refresh-redirect meta
// instruction wins over everything else; otherwise the editor's draft and
// latest-version links are preferred, in that order, over "This version".
func (x *W3CExtractor) Extract(doc *goquery.Document, pageURL string) (Outcome, error) {
	if target := refreshTarget(doc); target != "" {
		return Outcome{Redirect: target}, nil
	}

	thisURL := metadataLink(doc, "this version")
	latestURL := metadataLink(doc, "latest version")
	edURL := metadataLink(doc, "editor's draft")

	var canonical string
	switch {
	case edURL != "" && edURL != thisURL:
		return Outcome{Redirect: edURL}, nil
	case latestURL != "" && latestURL != thisURL:
		return Outcome{Redirect: latestURL}, nil
	case thisURL != "":
		canonical = thisURL
	default:
		clean, err := CleanURL(pageURL)
		if err != nil {
			return Outcome{}, err
		}
		canonical = clean
	}

	title := collapseSpace(doc.Find("h1").First().Text())
	if title == "" {
		return Outcome{}, errors.New("can't find the specification's title")
	}

	description := collapseSpace(doc.Find("#abstract").First().NextAllFiltered("p, div").First().Text())
	if description == "" {
		return Outcome{}, errors.New("can't find the specification's description")
	}

	e := entry.New()
	e["title"] = title
	e["description"] = description
	e["org"] = x.org
	e["url"] = canonical
	return Outcome{Entry: e}, nil
}

// refreshTarget extracts the target URL of a <meta http-equiv="refresh">
// instruction, or "" when the document has none.
func refreshTarget(doc *goquery.Document) string {
	var target string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(s.AttrOr("http-equiv", ""), "refresh") {
			return true
		}
		content := s.AttrOr("content", "")
		parts := strings.SplitN(content, ";", 2)
		if len(parts) < 2 {
			return true
		}
		kv := strings.SplitN(parts[1], "=", 2)
		if len(kv) < 2 {
			return true
		}
		target = strings.TrimSpace(kv[1])
		return false
	})
	return target
}

// metadataLink finds the definition-list entry whose label starts with
// prefix (case-insensitive) and returns its link's text, canonicalized.
// W3C documents print the URL as the link text.
func metadataLink(doc *goquery.Document, prefix string) string {
	var link string
	doc.Find("dl").First().Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		label := strings.ToLower(strings.TrimSpace(dt.Text()))
		if !strings.HasPrefix(label, prefix) {
			return true
		}
		text := strings.TrimSpace(dt.NextAllFiltered("dd").First().Find("a").First().Text())
		if text == "" {
			return true
		}
		link = text
		return false
	})
	if link == "" {
		return ""
	}
	clean, err := CleanURL(link)
	if err != nil {
		return ""
	}
	return clean
}
