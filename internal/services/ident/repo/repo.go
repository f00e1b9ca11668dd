// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"time"

	"moodlog/internal/modkit/repokit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/store"
	"moodlog/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// Touch upserts by id. Race-safe: ON CONFLICT keeps the earliest first_seen_at
func (r *queries) Touch(ctx context.Context, id, email string, at time.Time) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, email, first_seen_at, last_seen_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE SET
			email        = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
			last_seen_at = GREATEST(users.last_seen_at, EXCLUDED.last_seen_at)
	`, id, email, at.UTC())
	return perr.FromPostgres(err, "touch user")
}

// Get loads a single user
func (r *queries) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := store.One(ctx, r.q, func(row store.Row) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.ID, &u.Email, &u.FirstSeenAt, &u.LastSeenAt)
		return u, err
	}, `SELECT id, email, first_seen_at, last_seen_at FROM users WHERE id = $1`, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, perr.FromPostgres(err, "load user")
	}
	u.FirstSeenAt = u.FirstSeenAt.UTC()
	u.LastSeenAt = u.LastSeenAt.UTC()
	return u, nil
}
