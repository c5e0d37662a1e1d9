// Package config loads and validates tool configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Tracker TrackerConfig `mapstructure:"tracker"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DatasetConfig locates the activities file.
type DatasetConfig struct {
	File string `mapstructure:"file"`
}

// TrackerConfig identifies the issue tracker repository and credentials.
// User and token come from the GH_USER/GH_TOKEN environment variables.
type TrackerConfig struct {
	Owner   string `mapstructure:"owner"`
	Repo    string `mapstructure:"repo"`
	APIBase string `mapstructure:"api_base"`
	User    string `mapstructure:"user"`
	Token   string `mapstructure:"token"`
}

// HTTPConfig configures document fetching.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// ScrapeConfig bounds the redirect-resolution loop.
type ScrapeConfig struct {
	MaxRedirects int `mapstructure:"max_redirects"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ACTIVITIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials keep the env names the tool has always used.
	_ = v.BindEnv("tracker.user", "GH_USER")
	_ = v.BindEnv("tracker.token", "GH_TOKEN")

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.file", "activities.json")
	v.SetDefault("tracker.owner", "mozilla")
	v.SetDefault("tracker.repo", "standards-positions")
	v.SetDefault("tracker.api_base", "https://api.github.com")
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "activities-bot/1.0")
	v.SetDefault("scrape.max_redirects", 10)
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Dataset.File == "" {
		return fmt.Errorf("dataset.file must be set")
	}
	if c.Tracker.Owner == "" || c.Tracker.Repo == "" {
		return fmt.Errorf("tracker.owner and tracker.repo must be set")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Scrape.MaxRedirects <= 0 {
		return fmt.Errorf("scrape.max_redirects must be > 0")
	}
	return nil
}

// Timeout converts the HTTP timeout config into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
