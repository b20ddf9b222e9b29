// Package config loads process configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime configuration for one run.
type Config struct {
	// Provider selects the data source: chalk247 or fixture.
	Provider string `koanf:"provider"`

	// APIBaseURL is the chalk247 delivery host.
	APIBaseURL string `koanf:"api_base_url"`

	// APIKey is sent as the api_key query parameter on every request.
	APIKey string `koanf:"api_key"`

	// Sport is the league segment in both endpoint paths.
	Sport string `koanf:"sport"`

	// OutputDir receives the timestamped result files and the run manifest.
	OutputDir string `koanf:"output_dir"`

	// RetentionDays bounds how long old output files are kept.
	RetentionDays int `koanf:"retention_days"`

	// HTTPTimeout bounds each upstream request.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// MissingRanking picks the join policy for events whose team has no
	// ranking snapshot: fail (abort the run) or drop (omit the event).
	MissingRanking string `koanf:"missing_ranking"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// OtlpEndpoint enables metric export when set (host:port of a collector).
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Provider:       defaultProvider,
		APIBaseURL:     defaultAPIBaseURL,
		Sport:          defaultSport,
		OutputDir:      defaultOutputDir,
		RetentionDays:  defaultRetentionDays,
		HTTPTimeout:    defaultHTTPTimeout,
		MissingRanking: defaultMissingRanking,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

func (c Config) validate() error {
	switch c.Provider {
	case "chalk247", "fixture":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	switch c.MissingRanking {
	case "fail", "drop":
	default:
		return fmt.Errorf("unknown missing_ranking policy %q (want fail or drop)", c.MissingRanking)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %v", c.HTTPTimeout)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
