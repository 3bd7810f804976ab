package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger: console output in development, JSON
// otherwise.
func Init(env string) {
	var w io.Writer = os.Stdout
	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	SetOutput(w)
}

// SetOutput replaces the log destination. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "kurevin-art").
		Logger()
}

func Get() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger tagged with request_id.
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
