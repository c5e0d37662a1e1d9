// Package tracker files tracking issues for new entries on GitHub.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"activities/internal/entry"
)

// Config identifies the issues endpoint and credentials.
type Config struct {
	Owner   string
	Repo    string
	APIBase string
	User    string
	Token   string
}

// Client submits issues to the GitHub issues API.
type Client struct {
	cfg    Config
	httpc  *http.Client
	logger *zap.Logger
}

// New builds a Client.
func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Enabled reports whether credentials are present. When they aren't, filing
// is skipped silently; the rest of the add flow proceeds.
func (c *Client) Enabled() bool {
	return c.cfg.User != "" && c.cfg.Token != ""
}

type issueRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type issueResponse struct {
	Number int `json:"number"`
}

// FileIssue creates an issue summarizing e and returns its number.
func (c *Client) FileIssue(ctx context.Context, e entry.Entry) (int, error) {
	body := fmt.Sprintf(`* Specification Title: %s
* Specification URL: %s
* Caniuse.com URL (optional): %s
* Bugzilla URL (optional): %s
`, e.String("title"), e.String("url"), e.String("ciuName"), e.String("mozBugUrl"))

	payload, err := json.Marshal(issueRequest{Title: e.String("title"), Body: body})
	if err != nil {
		return 0, fmt.Errorf("encode issue: %w", err)
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues", c.cfg.APIBase, c.cfg.Owner, c.cfg.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build issue request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The GitHub API accepts the token in both slots of basic auth.
	req.SetBasicAuth(c.cfg.Token, c.cfg.Token)

	res, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create issue: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("failed to create issue; status %d", res.StatusCode)
	}

	var created issueResponse
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("decode issue response: %w", err)
	}
	c.logger.Info("Created tracking issue", zap.Int("number", created.Number))
	return created.Number, nil
}
