package service

import (
	"time"

	"moodlog/internal/core/notes"
)

// Options tune the mood service; zero values fall back to defaults
type Options struct {
	DefaultWindowDays int
	MaxWindowDays     int
	NotesMax          int
	Location          *time.Location

	// StatementTimeout bounds each statement run inside a service transaction, 0 disables
	StatementTimeout time.Duration

	Now func() time.Time
}

// Defaults
const (
	DefaultWindowDays = 7
	MaxWindowDays     = 365
)

func (o Options) withDefaults() Options {
	if o.DefaultWindowDays <= 0 {
		o.DefaultWindowDays = DefaultWindowDays
	}
	if o.MaxWindowDays <= 0 {
		o.MaxWindowDays = MaxWindowDays
	}
	if o.DefaultWindowDays > o.MaxWindowDays {
		o.DefaultWindowDays = o.MaxWindowDays
	}
	if o.NotesMax <= 0 {
		o.NotesMax = notes.DefaultMax
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
