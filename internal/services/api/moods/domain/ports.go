package domain

import (
	"context"
	"time"
)

// ServicePort defines the mood entry service
// callerID is always the verified token subject
type ServicePort interface {
	Submit(ctx context.Context, callerID string, in SubmitInput) (string, error)
	Get(ctx context.Context, callerID, id string) (Entry, error)
	Update(ctx context.Context, callerID, id string, in UpdateInput) (Entry, error)
	Delete(ctx context.Context, callerID, id string) error
	ListRecent(ctx context.Context, callerID string, windowDays int) ([]Entry, error)
	Trend(ctx context.Context, callerID string, windowDays int) (TrendResp, error)
}

// Repo defines the mood entry store
type Repo interface {
	// Insert persists e and returns the generated id
	Insert(ctx context.Context, e NewEntry) (string, error)

	// Get returns the entry regardless of owner, or perr.ErrNotFound
	Get(ctx context.Context, id string) (Entry, error)

	// Update applies p where id and owner both match; no match is perr.ErrNotFound
	Update(ctx context.Context, id, ownerID string, p Patch, at time.Time) (Entry, error)

	// Delete removes the entry where id and owner both match; no match is perr.ErrNotFound
	Delete(ctx context.Context, id, ownerID string) error

	// ListSince returns the owner's entries recorded at or after cutoff, newest first
	ListSince(ctx context.Context, ownerID string, cutoff time.Time) ([]Entry, error)
}
