// Package logging sets up the zerolog logger used by the picker commands.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// New creates a console logger writing to w. Debug messages, such as
// directories that could not be listed, are only written when verbose.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
