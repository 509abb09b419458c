package logger

import (
	"context"
	"log/slog"
)

// loggerKey is an unexported context key type so other packages cannot
// collide with the logger value.
type loggerKey struct{}

// WithLogger returns a new context carrying the provided logger.
// Middleware uses this to pass a request-scoped logger (annotated with a
// trace ID) down to handlers and stores.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the logger from the context.
// The boolean reports whether a logger was present.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none. If the default is
// also nil, the process-wide default logger is returned.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
