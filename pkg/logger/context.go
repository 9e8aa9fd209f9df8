package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// With attaches key/value pairs to the logger carried by the context and
// returns the derived context. Middleware uses it to accumulate trace id and
// user id, so every report build logs under the request that asked for it.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, From(ctx).With(fields...))
}

// WithLogger attaches a fully built logger to the context, replacing
// whatever was there. With derives from it on subsequent calls.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// From returns the request-scoped logger, or the process logger when the
// context carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}

// FromOr is From with an explicit fallback, for callers that already hold a
// configured logger and only want the context's if one was attached.
func FromOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return fallback
}
