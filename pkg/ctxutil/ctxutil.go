package ctxutil

import (
	"context"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

type ctxKey string

const (
	accessLevelKey ctxKey = "access_level"
	requestIDKey   ctxKey = "request_id"
)

// WithAccessLevel stores the tier derived from the request passcode.
func WithAccessLevel(ctx context.Context, level domain.AccessLevel) context.Context {
	return context.WithValue(ctx, accessLevelKey, level)
}

// AccessLevelFromCtx extracts the access tier from the context.
// Returns domain.AccessLevelNone if the value is missing, unknown, or of the wrong type.
func AccessLevelFromCtx(ctx context.Context) domain.AccessLevel {
	level, ok := ctx.Value(accessLevelKey).(domain.AccessLevel)
	if !ok || !level.IsValid() {
		return domain.AccessLevelNone
	}
	return level
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
