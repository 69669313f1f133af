package log

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	lferrors "github.com/YuminosukeSato/linfit/pkg/errors"
)

// ZerologProvider creates Logger values backed by zerolog.
type ZerologProvider struct {
	base zerolog.Logger
}

// NewZerologProvider returns a provider writing JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{
		base: zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger(),
	}
}

// NewZerologLogger returns a zerolog-backed Logger writing to w.
func NewZerologLogger(w io.Writer, level Level) Logger {
	return NewZerologProvider(w, level).GetLogger()
}

// UseZerolog installs a zerolog provider as the package provider and routes
// errors.Warn through it, so warnings such as ConvergenceWarning are emitted
// as structured WARN records.
func UseZerolog(w io.Writer, level Level) *ZerologProvider {
	p := NewZerologProvider(w, level)
	SetProvider(p)
	warnLogger := p.base.With().Str(ComponentKey, "warnings").Logger()
	lferrors.SetZerologWarnFunc(func(warning error) {
		event := warnLogger.Warn()
		var m zerolog.LogObjectMarshaler
		if errors.As(warning, &m) {
			event = event.Object("warning", m)
		}
		event.Msg(warning.Error())
	})
	return p
}

// GetLogger implements LoggerProvider.
func (p *ZerologProvider) GetLogger() Logger {
	return &zerologLogger{logger: p.base}
}

// GetLoggerWithName implements LoggerProvider.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider. Only loggers obtained afterwards see the new level.
func (p *ZerologProvider) SetLevel(level Level) {
	p.base = p.base.Level(toZerologLevel(level))
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.write(l.logger.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.write(l.logger.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.write(l.logger.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	event := l.logger.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = withError(event, err)
			fields = fields[1:]
		}
	}
	l.write(event, msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fmt.Sprint(fields[i]), fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.logger.GetLevel()
}

// write adds key/value pairs to the event. A disabled event is nil and all
// zerolog methods on it are no-ops.
func (l *zerologLogger) write(event *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		if err, ok := fields[i+1].(error); ok {
			event = withError(event, err)
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}

// withError attaches err and, when the error chain carries one of the typed
// linfit errors, its structured fields under "error_detail".
func withError(event *zerolog.Event, err error) *zerolog.Event {
	event = event.AnErr(ErrAttrKey, err)
	var m zerolog.LogObjectMarshaler
	if errors.As(err, &m) {
		event = event.Object("error_detail", m)
	}
	if kind := lferrors.KindOf(err); kind != lferrors.KindUnknown {
		event = event.Str(ErrorKindKey, kind.String())
	}
	return event
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
