package middleware

import "context"

type contextKey string

const (
	HeaderRequestID = "X-Request-ID"

	contextKeyRequestID contextKey = "request_id"
)

// RequestIDFromContext returns the identifier set by RequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return val
	}
	return ""
}
