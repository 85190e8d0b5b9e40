// Package logger builds the process logger and carries request-scoped
// loggers through the context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type contextKey struct{}

// Err is the attribute used for errors in every log line.
var Err = tint.Err

// New returns a colored console logger for dev and a JSON logger otherwise.
func New(appEnv, level string) *slog.Logger {
	return NewWithWriter(appEnv, level, os.Stdout)
}

func NewWithWriter(appEnv, level string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	var h slog.Handler
	if appEnv == "dev" || appEnv == "local" {
		h = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: lvl == slog.LevelDebug,
		})
	}

	return slog.New(h).With(slog.String("service", "eventbooking"))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request logger, or slog.Default() outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
