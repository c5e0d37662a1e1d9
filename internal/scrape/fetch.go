package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// FetchConfig controls collector behavior.
type FetchConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// CollyFetcher implements Fetcher using the Colly collector, one synchronous
// GET per call.
type CollyFetcher struct {
	cfg  FetchConfig
	base *colly.Collector
}

// NewCollyFetcher builds a CollyFetcher.
func NewCollyFetcher(cfg FetchConfig) *CollyFetcher {
	c := colly.NewCollector(colly.Async(false))
	c.IgnoreRobotsTxt = true
	// Clones share the visited-URL store; the resolution loop may legitimately
	// land on the same URL twice.
	c.AllowURLRevisit = true
	return &CollyFetcher{cfg: cfg, base: c}
}

// Fetch retrieves url and returns the response body. Any status other than
// 200 is an error.
func (f *CollyFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	collector := f.base.Clone()
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	var (
		body   []byte
		status int
	)
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = append([]byte(nil), r.Body...)
	})
	collector.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if status != 0 && status != http.StatusOK {
			return nil, fmt.Errorf("fetching spec resulted in %d HTTP status", status)
		}
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		return body, nil
	}
}
