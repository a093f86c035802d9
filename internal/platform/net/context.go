// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyOperation ctxKey = "operation"
	keyClient    ctxKey = "client"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, operation string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if operation != "" {
		ctx = context.WithValue(ctx, keyOperation, operation)
	}
	return ctx
}

// WithOperation annotates context with the logical operation name
func WithOperation(ctx context.Context, operation string) context.Context {
	if operation != "" {
		ctx = context.WithValue(ctx, keyOperation, operation)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Operation returns the logical operation name on the context if present
func Operation(ctx context.Context) string {
	if v, ok := ctx.Value(keyOperation).(string); ok {
		return v
	}
	return ""
}

// WithClient annotates context with the authenticated API client id
func WithClient(ctx context.Context, clientID string) context.Context {
	if clientID != "" {
		ctx = context.WithValue(ctx, keyClient, clientID)
	}
	return ctx
}

// Client returns the authenticated API client id if present
func Client(ctx context.Context) string {
	if v, ok := ctx.Value(keyClient).(string); ok {
		return v
	}
	return ""
}
