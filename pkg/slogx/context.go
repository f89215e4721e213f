package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithUser enriches the request logger once the guard has resolved who is
// calling, so later log lines carry the identity.
func WithUser(ctx context.Context, userID, role string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("user_id", userID, "role", role))
}
