// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a global logger writing to w (stdout when nil). format
// "console" selects human readable output, anything else JSON. An unknown
// level falls back to info.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	l := zerolog.New(w).With().Timestamp().Str("service", "catalog-api").Logger()
	log.Logger = l
	return l
}

// Printf adapts a zerolog logger to the Printf-style writers some
// libraries expect.
type Printf struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

func (p Printf) Printf(format string, args ...any) {
	p.Logger.WithLevel(p.Level).Msgf(format, args...)
}
