// Package domain holds mood entry types and the http and service contracts
package domain

import (
	"time"

	"moodlog/internal/core/trend"
)

// Rating bounds, inclusive
const (
	MinRating = 1
	MaxRating = 5
)

// Entry is a single self-reported mood
// the owner never leaves the process
type Entry struct {
	ID         string    `json:"id" example:"6f1c2a9e-7a53-4d0e-9a57-3c1f1b7d2e10"`
	OwnerID    string    `json:"-"`
	Rating     int       `json:"rating" example:"4"`
	Notes      string    `json:"notes" example:"long walk, slept well"`
	RecordedAt time.Time `json:"recordedAt" example:"2024-01-01T08:30:00Z"`
	CreatedAt  time.Time `json:"createdAt" example:"2024-01-01T08:31:02Z"`
	UpdatedAt  time.Time `json:"updatedAt" example:"2024-01-01T08:31:02Z"`
}

// SubmitInput is the body of a new entry
type SubmitInput struct {
	Rating     *int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Notes      *string `json:"notes,omitempty" example:"long walk"`
	RecordedAt *string `json:"recordedAt,omitempty" validate:"omitempty,rfc3339" example:"2024-01-01T08:30:00Z"`
}

// UpdateInput patches an entry; absent fields are left alone
type UpdateInput struct {
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5" example:"3"`
	Notes      *string `json:"notes,omitempty" example:"better after lunch"`
	RecordedAt *string `json:"recordedAt,omitempty" validate:"omitempty,rfc3339" example:"2024-01-01T12:00:00Z"`
}

// Empty reports whether the patch carries no fields
func (in UpdateInput) Empty() bool {
	return in.Rating == nil && in.Notes == nil && in.RecordedAt == nil
}

// SubmitResp is returned on create
type SubmitResp struct {
	MoodID string `json:"moodId" example:"6f1c2a9e-7a53-4d0e-9a57-3c1f1b7d2e10"`
}

// ListResp wraps recent entries, newest first
type ListResp struct {
	Moods []Entry `json:"moods"`
}

// TrendResp is the per-day average series, oldest first
type TrendResp struct {
	Points []trend.DayPoint `json:"points"`
	Zone   string           `json:"zone" example:"UTC"`
}

// NewEntry is what the store persists on submit
type NewEntry struct {
	OwnerID    string
	Rating     int
	Notes      string
	RecordedAt time.Time
}

// Patch is a validated UpdateInput; nil fields are untouched
type Patch struct {
	Rating     *int
	Notes      *string
	RecordedAt *time.Time
}
