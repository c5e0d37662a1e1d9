package scrape

import (
	"fmt"
	"net/url"
	"strings"
)

// CleanURL canonicalizes a specification URL for comparison and storage: the
// scheme is preserved, the host lowercased, one trailing slash stripped from
// the path, and query/fragment dropped.
func CleanURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	host := strings.ToLower(u.Host)
	path := strings.TrimSuffix(u.Path, "/")
	return fmt.Sprintf("%s://%s%s", u.Scheme, host, path), nil
}

// splitPath breaks a URL path into its segments, dropping the leading empty
// segment and one trailing empty segment from a trailing slash.
func splitPath(p string) []string {
	segs := strings.Split(p, "/")
	if len(segs) > 0 && segs[0] == "" {
		segs = segs[1:]
	}
	if len(segs) > 0 && segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	return segs
}

// collapseSpace folds runs of whitespace, newlines included, into single
// spaces and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
