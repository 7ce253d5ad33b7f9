package dispatch

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey struct{}

// IDFromContext returns the ID of the dispatch a delivery belongs to.
// Senders receive it on the context passed to Send.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}

// LoggerExtractor adds dispatch_id to records logged with a delivery context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("dispatch_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
