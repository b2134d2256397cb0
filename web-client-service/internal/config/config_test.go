package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_API_URL", "CATALOG_API_TIMEOUT", "RATE_LIMIT", "RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "6000", cfg.Port)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.CatalogAPIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Zero(t, cfg.RateLimit)
}
