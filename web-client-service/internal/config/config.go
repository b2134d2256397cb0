package config

import (
	"time"

	"catalog-services/pkg/envconfig"
)

type Config struct {
	Port          string
	CatalogAPIURL string
	Timeout       time.Duration
	RateLimit     float64
	RateBurst     int
}

// Load reads the web-client-service settings from the environment.
func Load() Config {
	return Config{
		Port:          envconfig.String("PORT", "6000"),
		CatalogAPIURL: envconfig.String("CATALOG_API_URL", "http://127.0.0.1:5000"),
		Timeout:       envconfig.Duration("CATALOG_API_TIMEOUT", 5*time.Second),
		RateLimit:     envconfig.Float("RATE_LIMIT", 0),
		RateBurst:     envconfig.Int("RATE_BURST", 30),
	}
}
