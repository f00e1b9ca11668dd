// Package domain defines the core types and interfaces for the ident service
package domain

import (
	"context"
	"time"
)

// User is a caller we have seen present a valid token
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstSeenAt time.Time `json:"firstSeenAt"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// Repo abstracts the user registry storage
type Repo interface {
	// Touch inserts the user or refreshes last_seen_at and a non-empty email
	// It is safe to call concurrently for the same id
	Touch(ctx context.Context, id, email string, at time.Time) error

	// Get returns the user or perr.ErrNotFound
	Get(ctx context.Context, id string) (User, error)
}

// RegistryPort is what other modules see of the registry
type RegistryPort interface {
	Touch(ctx context.Context, id, email string) error
	Lookup(ctx context.Context, id string) (User, error)
}
