package config

import (
	"catalog-services/pkg/envconfig"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Port         string
	ItemsBackend string
	RedisAddr    string
	RateLimit    float64
	RateBurst    int
}

// Load reads the demo-service settings from the environment.
func Load() Config {
	return Config{
		Port:         envconfig.String("PORT", "8000"),
		ItemsBackend: envconfig.String("ITEMS_BACKEND", BackendMemory),
		RedisAddr:    envconfig.String("REDIS_ADDR", "localhost:6379"),
		RateLimit:    envconfig.Float("RATE_LIMIT", 0),
		RateBurst:    envconfig.Int("RATE_BURST", 30),
	}
}
