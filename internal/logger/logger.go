// Package logger provides component-scoped zerolog loggers with a single
// process-wide configuration.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var pretty bool

// Configure sets the global log level and output format. Unknown levels fall
// back to info.
func Configure(level string, prettyOutput bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	pretty = prettyOutput
}

// New returns a logger tagged with the given component field. Console output
// when pretty mode is configured, JSON otherwise.
func New(component string) zerolog.Logger {
	if pretty {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
}
