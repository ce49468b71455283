/*
Package logx provides a structured logging wrapper based on zerolog.

It initializes the global logger once at startup, switching between a
human-readable console writer in development and plain JSON in production,
and exposes small helpers (Info, Warn, Error, Fatal) used across the server.
*/
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitGlobalLogger configures the process-wide zerolog instance.
// Development gets Debug level and a colored console writer; production gets
// Info level and JSON output. All entries carry a timestamp and caller.
func InitGlobalLogger(isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if isDevelopment {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger.With().Caller().Logger()
}

// Logger returns the global zerolog.Logger instance.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// pairs drops a trailing odd field so zerolog never receives a key without a value.
func pairs(fields []any) []any {
	if len(fields)%2 != 0 {
		return fields[:len(fields)-1]
	}
	return fields
}

// Info records a message at the Info level with optional key-value fields.
func Info(msg string, fields ...any) {
	Logger().Info().Fields(pairs(fields)).CallerSkipFrame(1).Msg(msg)
}

// Warn records a message at the Warn level with optional key-value fields.
func Warn(msg string, fields ...any) {
	Logger().Warn().Fields(pairs(fields)).CallerSkipFrame(1).Msg(msg)
}

// Error records an error with a message at the Error level.
func Error(err error, msg string, fields ...any) {
	Logger().Error().Err(err).Fields(pairs(fields)).CallerSkipFrame(1).Msg(msg)
}

// Fatal records the error at the Fatal level and terminates the process.
func Fatal(err error, msg string, fields ...any) {
	Logger().Fatal().Err(err).Fields(pairs(fields)).CallerSkipFrame(1).Msg(msg)
}
