package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ITEMS_BACKEND", "REDIS_ADDR", "RATE_LIMIT", "RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.ItemsBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Zero(t, cfg.RateLimit, "rate limiting is opt-in")
}

func TestLoad_RateLimitOptIn(t *testing.T) {
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_BURST", "30")

	cfg := Load()

	assert.Equal(t, 10.0, cfg.RateLimit)
	assert.Equal(t, 30, cfg.RateBurst)
}
