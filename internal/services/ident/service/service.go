// Package service provides the ident service implementation
package service

import (
	"context"
	"strings"
	"time"

	"moodlog/internal/modkit/httpkit"
	"moodlog/internal/modkit/repokit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/logger"
	"moodlog/internal/services/ident/domain"
)

// Svc implements the user registry
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	now    func() time.Time
}

var _ domain.RegistryPort = (*Svc)(nil)

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder, now: time.Now}
}

// WithClock swaps the time source, handy for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	if now != nil {
		s.now = now
	}
	return s
}

// Touch records that id presented a valid token just now
func (s *Svc) Touch(ctx context.Context, id, email string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return perr.InvalidArgf("user id required")
	}
	return s.binder.Bind(s.db).Touch(ctx, id, strings.TrimSpace(email), s.now())
}

// Lookup returns a registered user
func (s *Svc) Lookup(ctx context.Context, id string) (domain.User, error) {
	return s.binder.Bind(s.db).Get(ctx, strings.TrimSpace(id))
}

// Tracking wraps a token verifier so every accepted caller is registered
// registry failures are logged and never fail the request
func (s *Svc) Tracking(verify httpkit.TokenFunc) httpkit.TokenFunc {
	return func(ctx context.Context, token string) (httpkit.Identity, error) {
		id, err := verify(ctx, token)
		if err != nil {
			return id, err
		}
		if terr := s.Touch(ctx, id.UserID, id.Email); terr != nil {
			logger.C(ctx).Warn().Err(terr).Str("user_id", id.UserID).Msg("user registry touch failed")
		}
		return id, nil
	}
}
