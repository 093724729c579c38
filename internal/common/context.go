package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyBusinessID contextKey = "business_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithBusinessID adds a business ID to the context
func WithBusinessID(ctx context.Context, businessID string) context.Context {
	return context.WithValue(ctx, ContextKeyBusinessID, businessID)
}

// BusinessIDFromContext extracts the business ID from context
func BusinessIDFromContext(ctx context.Context) string {
	if businessID, ok := ctx.Value(ContextKeyBusinessID).(string); ok {
		return businessID
	}
	return ""
}
