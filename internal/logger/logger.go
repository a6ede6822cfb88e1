// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "listing-parser"

// Options holds logger configuration.
type Options struct {
	Level  string
	Format string // json or console
	Output io.Writer
}

// New builds a logger from opts and sets the global level.
func New(opts Options) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var zl zerolog.Logger
	if opts.Format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		})
	} else {
		zl = zerolog.New(output)
	}

	return zl.With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// Setup builds a logger from opts and installs it as the global zerolog logger.
func Setup(opts Options) {
	log.Logger = New(opts)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
