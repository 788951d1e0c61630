package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config contains configuration for logging
type Config struct {
	Level  string
	Format string
	Output string
}

// New builds a zerolog logger. Format "json" writes raw JSON lines, anything
// else uses the console writer. Output "stdout" selects stdout; anything
// else, including empty, selects stderr.
func New(cfg Config, stdout, stderr io.Writer) zerolog.Logger {
	return NewWithWriter(cfg, outputFor(cfg.Output, stdout, stderr))
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func outputFor(output string, stdout, stderr io.Writer) io.Writer {
	if strings.EqualFold(output, "stdout") {
		return stdout
	}
	return stderr
}
