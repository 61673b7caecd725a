// Package log configures the zerolog loggers used by parridge.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/parridge/parridge/pkg/errors"
)

// New returns a console logger writing to w at the given level.
// Timestamps are attached to every event.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// ParseLevel converts a level name such as "info" or "debug" into a
// zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

// HookWarnings routes library warnings (for example ConvergenceWarning)
// through logger as structured warn-level events.
func HookWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(m).Msg(warning.Error())
			return
		}
		logger.Warn().Msg(warning.Error())
	})
}
