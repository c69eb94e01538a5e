package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
)

var (
	mu            sync.RWMutex
	defaultLogger = newConsoleLogger(os.Stdout, slog.LevelInfo)
)

// Format selects the log output encoding
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

// redactor hides credential material from log output
var redactor = masq.New(
	masq.WithTag("secret"),
	masq.WithFieldName("Password"),
	masq.WithFieldName("PasswordHash"),
)

func newConsoleLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(true),
		clog.WithReplaceAttr(redactor),
	)
	return slog.New(handler)
}

func newJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactor,
	}))
}

// New creates a logger with the given output, level, and format
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	switch format {
	case FormatJSON:
		return newJSONLogger(w, level)
	default:
		return newConsoleLogger(w, level)
	}
}

// Default returns the process-wide logger
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

type ctxKey struct{}

// With attaches the logger to the context
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From extracts the logger from the context, falling back to the default
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
