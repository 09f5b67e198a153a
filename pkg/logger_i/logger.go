package logger_i

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	inner *slog.Logger
}

// Init installs the process-wide handler. Production uses JSON on stdout,
// everything else the text handler at debug level unless told otherwise.
func Init(level string, production bool) {
	options := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, options)
	} else {
		handler = slog.NewTextHandler(os.Stdout, options)
	}
	slog.SetDefault(slog.New(handler))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	l.inner.Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

// WithTrace attaches the trace id stored in ctx under key, if any.
func (l *Logger) WithTrace(ctx context.Context, key any) *Logger {
	if ctx == nil {
		return l
	}
	if trace, ok := ctx.Value(key).(string); ok && trace != "" {
		return l.With("traceId", trace)
	}
	return l
}
