// Package logging builds the zerolog loggers handed to the rest of the module.
//
// Loggers are always injected; nothing here installs a global logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger writing to w, filtered at level.
//
// zerolog.Disabled yields a logger that never writes to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil || level == zerolog.Disabled {
		return zerolog.Nop()
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
