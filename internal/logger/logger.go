// Package logger configures the application-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// NewConsole returns a console logger at the given level, with timestamps.
func NewConsole(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a flag value to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
