package config

import "time"

const (
	// envPrefix namespaces every configuration env var (NFLEVENTS_API_KEY, ...).
	envPrefix = "NFLEVENTS_"

	// envConfigPath points at an optional YAML config file.
	envConfigPath = "NFLEVENTS_CONFIG"

	defaultProvider   = "chalk247"
	defaultAPIBaseURL = "https://delivery.chalk247.com"
	defaultSport      = "NFL"
	defaultOutputDir  = "output_data"
	// Default retention keeps a month of run output before pruning.
	defaultRetentionDays = 30
	defaultHTTPTimeout   = 10 * time.Second
	// Fail-fast by default: an unjoinable event aborts the run.
	defaultMissingRanking = "fail"
)
