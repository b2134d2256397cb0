// Package logging builds the zerolog logger shared by every service.
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: json or console (default: json)
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger tagged with the service name.
func New(service string) zerolog.Logger {
	return NewWithWriter(service, writerFromEnv(os.Stdout))
}

// NewWithWriter is New with an explicit output, mostly for tests.
func NewWithWriter(service string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

func writerFromEnv(out io.Writer) io.Writer {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return out
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
