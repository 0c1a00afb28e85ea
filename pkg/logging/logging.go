// Package logging sets up zerolog for the cmd tools. The signals package
// itself never logs.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFlag is the flag name every cmd uses for the log level.
const LevelFlag = "log-level"

// Configure installs a console logger on stderr as the global logger.
func Configure(level string) {
	ConfigureWithWriter(level, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// ConfigureWithWriter installs a logger writing to w as the global logger.
func ConfigureWithWriter(level string, w io.Writer) {
	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(w).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger().Level(lvl)
	zerolog.DefaultContextLogger = &log.Logger
}

func parseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		log.Warn().Err(err).Str("logLevel", s).Msg("invalid log level, using info")
		return zerolog.InfoLevel
	}
	return lvl
}
