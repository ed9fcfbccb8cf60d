// Package logging builds the zerolog loggers used by sessions and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured level.
const EnvLogLevel = "GNUPLOT_LOG_LEVEL"

// Config describes a logger.
type Config struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // console or json
}

// New creates a logger writing to out (stderr when nil).
func New(config Config, out io.Writer) (zerolog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	raw := config.Level
	if env := os.Getenv(EnvLogLevel); env != "" {
		raw = env
	}
	level, ok := ParseLevel(raw)
	if !ok {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s'", raw)
	}
	if strings.EqualFold(config.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name to zerolog. Empty means info.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zerolog.InfoLevel, true
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
