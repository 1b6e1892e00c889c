package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

// L is the global logger. It starts as slog's default so packages can log
// before InitLogger runs (tests, init order).
var L = slog.Default()

// InitLogger initializes the global logger.
// Call this once at application startup, after loading config.
func InitLogger(logLevelStr string) {
	level, ok := parseLevel(logLevelStr)
	if !ok {
		slog.Warn("Invalid LOG_LEVEL specified, defaulting to INFO", "configuredLevel", logLevelStr)
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	L = slog.New(handler)

	slog.SetDefault(L)
	L.Info("Logger initialized", "level", level.String())
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

type contextKey string

const sessionKey = contextKey("session_id")

// WithSession tags ctx with a session id that FromContext attaches to every record.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// FromContext returns the global logger, enriched with the session id when ctx carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return L
	}
	if id, ok := ctx.Value(sessionKey).(string); ok && id != "" {
		return L.With("sessionID", id)
	}
	return L
}
