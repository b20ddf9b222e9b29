package chalk

import "time"

const (
	providerName       = "chalk247"
	defaultBaseURL     = "https://delivery.chalk247.com"
	defaultSport       = "NFL"
	defaultHTTPTimeout = 10 * time.Second
)
