package internal

import (
	"context"
	"time"
)

type ctxKey string

// ContextUserKey carries the uid of the verified session user. The auth
// middleware is the only writer; handlers read it through
// UserIDFromContext.
const ContextUserKey ctxKey = "userID"

// UserIDFromContext returns the session uid, or "" when the request never
// passed the auth middleware.
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(ContextUserKey).(string); ok {
		return userID
	}
	return ""
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextUserKey, userID)
}

const defaultTimeout = 5 * time.Second

// WithTimeout bounds a blocking operation, falling back to defaultTimeout
// when the caller passes a non-positive duration.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = defaultTimeout
	}
	return context.WithTimeout(ctx, duration)
}
