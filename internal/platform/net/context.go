// Package net carries request scoped identity between transport layers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// WithUser stores the verified caller id; an empty id leaves ctx untouched
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID is the caller set by WithUser or ""
func UserID(ctx context.Context) string {
	uid, _ := ctx.Value(ctxKey{}).(string)
	return uid
}

// RequestID reads the id assigned by the chi RequestID middleware
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
