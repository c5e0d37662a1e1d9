package scrape

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapFetcher serves canned documents by URL and records the fetch order.
type mapFetcher struct {
	pages   map[string]string
	visited []string
}

func (f *mapFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.visited = append(f.visited, url)
	page, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("fetching spec resulted in 404 HTTP status")
	}
	return []byte(page), nil
}

func TestResolveFollowsEditorsDraft(t *testing.T) {
	t.Parallel()

	trPage := w3cPage(`<dl>
<dt>This version:</dt><dd><a href="#">https://www.w3.org/TR/2021/netinfo/</a></dd>
<dt>Editor's draft:</dt><dd><a href="#">https://wicg.github.io/netinfo/</a></dd>
</dl>`)
	edPage := w3cPage(`<dl>
<dt>This version:</dt><dd><a href="#">https://wicg.github.io/netinfo/</a></dd>
<dt>Editor's draft:</dt><dd><a href="#">https://wicg.github.io/netinfo/</a></dd>
</dl>`)

	fetcher := &mapFetcher{pages: map[string]string{
		"https://www.w3.org/TR/netinfo/": trPage,
		"https://wicg.github.io/netinfo": edPage,
	}}

	e, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://www.w3.org/TR/netinfo/", 10, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "https://wicg.github.io/netinfo", e["url"])
	assert.Equal(t, "W3C", e["org"])
	assert.Equal(t, []string{
		"https://www.w3.org/TR/netinfo/",
		"https://wicg.github.io/netinfo",
	}, fetcher.visited)
}

func TestResolveStripsDraftRevision(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{pages: map[string]string{
		"https://tools.ietf.org/html/draft-ietf-foo-03": draftHTML,
		"https://tools.ietf.org/html/draft-ietf-foo":    draftHTML,
	}}

	e, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://tools.ietf.org/html/draft-ietf-foo-03", 10, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "https://tools.ietf.org/html/draft-ietf-foo", e["url"])
	assert.Equal(t, "The Foo Protocol", e["title"])
	assert.Equal(t, "IETF", e["org"])
}

func TestResolveNormalizesWHATWGOrg(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{pages: map[string]string{
		"https://dom.spec.whatwg.org/": w3cPage(""),
	}}

	e, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://dom.spec.whatwg.org/", 10, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "W3C", e["org"])
	assert.Equal(t, "https://dom.spec.whatwg.org", e["url"])
}

func TestResolveRedirectLimit(t *testing.T) {
	t.Parallel()

	// A refresh loop pointing at itself never settles.
	loop := `<html><head>
<meta http-equiv="Refresh" content="0; URL=https://www.w3.org/TR/loop/">
</head><body></body></html>`
	fetcher := &mapFetcher{pages: map[string]string{
		"https://www.w3.org/TR/loop/": loop,
	}}

	_, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://www.w3.org/TR/loop/", 3, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect limit")
	assert.Len(t, fetcher.visited, 4)
}

func TestResolveFetchFailureIsFatal(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{pages: map[string]string{}}
	_, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://www.w3.org/TR/missing/", 10, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestResolveNotASpecificationIsFatal(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{pages: map[string]string{
		"https://tools.ietf.org/wg/httpbis": draftHTML,
	}}
	_, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://tools.ietf.org/wg/httpbis", 10, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotSpecification)
}

func TestResolveUnknownOrganizationIsFatal(t *testing.T) {
	t.Parallel()

	fetcher := &mapFetcher{pages: map[string]string{}}
	_, err := Resolve(context.Background(), fetcher, NewResolver(),
		"https://example.com/spec", 10, zap.NewNop())
	require.Error(t, err)
	assert.Empty(t, fetcher.visited, "no fetch should happen for an unknown organization")
}
