// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	Init(os.Stderr)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init points the global logger at w using the human readable console format.
func Init(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// SetLevel parses a level name such as "debug" or "warn". Unknown names leave
// the level unchanged and return the parse error.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func Debugf(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

func Warningf(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

func Criticalf(format string, args ...any) {
	log.Error().Msgf(format, args...)
}

func Fatalf(format string, args ...any) {
	log.Fatal().Msgf(format, args...)
}
