package utils

import (
	"context"
	"net/http"
)

type contextKey string

// correlationIDKey is the context key of the request correlation id
const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx carrying the correlation id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation id stored in ctx, if any
func CorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok && id != ""
}

// RequestCorrelationID returns the correlation id of r, or "" when the
// correlation middleware did not run
func RequestCorrelationID(r *http.Request) string {
	if r == nil {
		return ""
	}
	id, _ := CorrelationID(r.Context())
	return id
}
