package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dataset.File != "activities.json" {
		t.Fatalf("expected default dataset file, got %q", cfg.Dataset.File)
	}
	if cfg.Tracker.Owner != "mozilla" || cfg.Tracker.Repo != "standards-positions" {
		t.Fatalf("expected default tracker repo, got %s/%s", cfg.Tracker.Owner, cfg.Tracker.Repo)
	}
	if cfg.Scrape.MaxRedirects != 10 {
		t.Fatalf("expected default redirect limit 10, got %d", cfg.Scrape.MaxRedirects)
	}
	if got := cfg.Timeout(); got != 15*time.Second {
		t.Fatalf("expected default timeout 15s, got %v", got)
	}
}

func TestLoadWithFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
dataset:
  file: testdata.json
tracker:
  owner: example
  repo: positions
  api_base: https://github.example.com/api/v3
http:
  timeout_seconds: 45
  user_agent: test-agent
scrape:
  max_redirects: 3
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dataset.File != "testdata.json" {
		t.Fatalf("expected dataset override, got %q", cfg.Dataset.File)
	}
	if cfg.Tracker.Owner != "example" || cfg.Tracker.Repo != "positions" {
		t.Fatalf("expected tracker overrides to apply: %+v", cfg.Tracker)
	}
	if cfg.Scrape.MaxRedirects != 3 {
		t.Fatalf("expected redirect limit 3, got %d", cfg.Scrape.MaxRedirects)
	}
	if cfg.Logging.Development {
		t.Fatal("expected development logging to be disabled")
	}
	if got := cfg.Timeout(); got != 45*time.Second {
		t.Fatalf("expected timeout 45s, got %v", got)
	}
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv("GH_USER", "someone")
	t.Setenv("GH_TOKEN", "sekrit")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tracker.User != "someone" || cfg.Tracker.Token != "sekrit" {
		t.Fatalf("expected credentials from environment, got %+v", cfg.Tracker)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Dataset: DatasetConfig{File: "activities.json"},
		Tracker: TrackerConfig{Owner: "mozilla", Repo: "standards-positions"},
		HTTP:    HTTPConfig{TimeoutSeconds: 10},
		Scrape:  ScrapeConfig{MaxRedirects: 10},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "missing dataset file",
			cfg: func() Config {
				c := base
				c.Dataset.File = ""
				return c
			}(),
			want: "dataset.file",
		},
		{
			name: "missing tracker repo",
			cfg: func() Config {
				c := base
				c.Tracker.Repo = ""
				return c
			}(),
			want: "tracker.owner",
		},
		{
			name: "invalid timeout",
			cfg: func() Config {
				c := base
				c.HTTP.TimeoutSeconds = 0
				return c
			}(),
			want: "http.timeout_seconds",
		},
		{
			name: "invalid redirect limit",
			cfg: func() Config {
				c := base
				c.Scrape.MaxRedirects = 0
				return c
			}(),
			want: "scrape.max_redirects",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
