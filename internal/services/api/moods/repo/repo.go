// Package repo provides Postgres bindings for the mood entry store
package repo

import (
	"context"
	"time"

	"moodlog/internal/modkit/repokit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/store"
	"moodlog/internal/services/api/moods/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for domain.Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const entryCols = `id::text, owner_id, rating, notes, recorded_at, created_at, updated_at`

func scanEntry(row store.Row) (domain.Entry, error) {
	var e domain.Entry
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Rating, &e.Notes, &e.RecordedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return domain.Entry{}, err
	}
	e.RecordedAt = e.RecordedAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}

// notFoundOr passes perr.ErrNotFound through and maps everything else
func notFoundOr(err error, msg string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return err
	}
	return perr.FromPostgres(err, msg)
}

// Insert stores a new entry; created_at and updated_at come from the database clock
func (r *queries) Insert(ctx context.Context, e domain.NewEntry) (string, error) {
	id, err := store.Scalar[string](ctx, r.q, `
		INSERT INTO mood_entries (owner_id, rating, notes, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, e.OwnerID, e.Rating, e.Notes, e.RecordedAt.UTC())
	if err != nil {
		return "", perr.FromPostgres(err, "insert mood entry")
	}
	return id, nil
}

// Get loads one entry by id regardless of owner
func (r *queries) Get(ctx context.Context, id string) (domain.Entry, error) {
	e, err := store.One(ctx, r.q, scanEntry,
		`SELECT `+entryCols+` FROM mood_entries WHERE id = $1`, id)
	if err != nil {
		return domain.Entry{}, notFoundOr(err, "load mood entry")
	}
	return e, nil
}

// Update applies the non-nil fields of p in one statement guarded by id and owner
func (r *queries) Update(ctx context.Context, id, ownerID string, p domain.Patch, at time.Time) (domain.Entry, error) {
	var recorded any
	if p.RecordedAt != nil {
		recorded = p.RecordedAt.UTC()
	}
	e, err := store.One(ctx, r.q, scanEntry, `
		UPDATE mood_entries SET
			rating      = COALESCE($3::smallint, rating),
			notes       = COALESCE($4::text, notes),
			recorded_at = COALESCE($5::timestamptz, recorded_at),
			updated_at  = $6
		WHERE id = $1 AND owner_id = $2
		RETURNING `+entryCols, id, ownerID, p.Rating, p.Notes, recorded, at.UTC())
	if err != nil {
		return domain.Entry{}, notFoundOr(err, "update mood entry")
	}
	return e, nil
}

// Delete removes one entry guarded by id and owner
func (r *queries) Delete(ctx context.Context, id, ownerID string) error {
	err := store.ExecOne(ctx, r.q, `DELETE FROM mood_entries WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return notFoundOr(err, "delete mood entry")
	}
	return nil
}

// ListSince returns the owner's entries with recorded_at >= cutoff, newest first
func (r *queries) ListSince(ctx context.Context, ownerID string, cutoff time.Time) ([]domain.Entry, error) {
	out, err := store.Many(ctx, r.q, scanEntry, `
		SELECT `+entryCols+`
		FROM mood_entries
		WHERE owner_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at DESC, id
	`, ownerID, cutoff.UTC())
	if err != nil {
		return nil, perr.FromPostgres(err, "list mood entries")
	}
	if out == nil {
		out = []domain.Entry{}
	}
	return out, nil
}
