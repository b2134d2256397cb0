package config

import (
	"catalog-services/pkg/envconfig"
)

type Config struct {
	Port         string
	DBDriver     string
	DBDSN        string
	KafkaBrokers []string
	KafkaTopic   string
	RateLimit    float64
	RateBurst    int
}

// Load reads the catalog-service settings from the environment.
func Load() Config {
	return Config{
		Port:         envconfig.String("PORT", "5000"),
		DBDriver:     envconfig.String("DB_DRIVER", DriverSQLite),
		DBDSN:        envconfig.String("DB_DSN", "database.db"),
		KafkaBrokers: envconfig.List("KAFKA_BROKERS"),
		KafkaTopic:   envconfig.String("KAFKA_TOPIC", "catalog-topic"),
		RateLimit:    envconfig.Float("RATE_LIMIT", 0),
		RateBurst:    envconfig.Int("RATE_BURST", 30),
	}
}
