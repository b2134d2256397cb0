// Package envconfig reads typed settings from environment variables,
// falling back to a default when a variable is unset or malformed.
package envconfig

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// String returns the value of key, or fallback when it is empty.
func String(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Int returns key parsed as an int.
func Int(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// Float returns key parsed as a float64.
func Float(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}

// Duration returns key parsed with time.ParseDuration.
func Duration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// List splits a comma separated value, dropping blank entries.
// An unset variable yields nil.
func List(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
