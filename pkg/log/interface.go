// Package log provides a structured logging interface for linfit estimators.
//
// The Logger interface is slog-compatible so that implementations can be
// switched freely. Two backends ship with the package: log/slog (JSON, with
// cockroachdb/errors stack traces) and zerolog. Estimators obtain their logger
// from the global provider:
//
//	logger := log.GetLoggerWithName("linear").With(
//	    log.ModelNameKey, "GradientDescent",
//	)
//	logger.Debug("Training started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. With returns a child logger
// whose fields are included in every subsequent record.
type Logger interface {
	// Debug logs a debug-level message. Estimators log fit progress here.
	Debug(msg string, fields ...any)

	// Info logs an info-level message.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. If the first field is an error value
	// it is attached under the "error" key, with its stack trace when the
	// backend supports it:
	//
	//	logger.Error("fit failed", err, log.ModelNameKey, "LinearRegression")
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates loggers. The package-level provider can be replaced
// with SetProvider, which is how tests and the zerolog backend hook in.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
