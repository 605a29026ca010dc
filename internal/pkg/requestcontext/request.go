package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// AccountIDKey is the context key for the authenticated account id
	AccountIDKey ContextKey = "account_id"
	// RoleKey is the context key for the authenticated role
	RoleKey ContextKey = "role"
)

// WithRequestID stores the request ID on ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID extracts request ID from context
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// WithAccount stores the authenticated account on ctx
func WithAccount(ctx context.Context, accountID int64, role string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID)
	return context.WithValue(ctx, RoleKey, role)
}

// AccountID extracts the authenticated account id from context
func AccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AccountIDKey).(int64)
	return id, ok
}

// Role extracts the authenticated role from context
func Role(ctx context.Context) string {
	if role, ok := ctx.Value(RoleKey).(string); ok {
		return role
	}
	return ""
}
