// Package service holds the mood entry workflows
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"moodlog/internal/core/notes"
	"moodlog/internal/core/trend"
	"moodlog/internal/modkit/repokit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/logger"
	"moodlog/internal/services/api/moods/domain"
)

// Service defines the service contract for moods
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	opt    Options
}

var _ Service = (*Svc)(nil)

// New creates a mood service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], opt Options) *Svc {
	if db == nil {
		panic("moods.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("moods.Service requires a non nil Repo binder")
	}
	opt = opt.withDefaults()
	if opt.StatementTimeout > 0 {
		db = repokit.WithBeginHooks(db, statementTimeout(opt.StatementTimeout))
	}
	return &Svc{db: db, binder: binder, opt: opt}
}

// statementTimeout scopes statement_timeout to the running transaction
func statementTimeout(d time.Duration) repokit.BeginHook {
	ms := fmt.Sprintf("%d", d.Milliseconds())
	return func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, `SELECT set_config('statement_timeout', $1, true)`, ms)
		return perr.FromPostgres(err, "set statement timeout")
	}
}

func (s *Svc) repo() domain.Repo { return s.binder.Bind(s.db) }

// Submit validates and stores a new entry owned by callerID
func (s *Svc) Submit(ctx context.Context, callerID string, in domain.SubmitInput) (string, error) {
	owner, err := caller(callerID)
	if err != nil {
		return "", err
	}
	if in.Rating == nil {
		return "", perr.Validationf("rating", "rating is required")
	}
	if err := checkRating(*in.Rating); err != nil {
		return "", err
	}
	e := domain.NewEntry{OwnerID: owner, Rating: *in.Rating, RecordedAt: s.opt.Now().UTC()}
	if in.RecordedAt != nil {
		at, err := parseRecordedAt(*in.RecordedAt)
		if err != nil {
			return "", err
		}
		e.RecordedAt = at
	}
	if in.Notes != nil {
		n, err := s.cleanNotes(*in.Notes)
		if err != nil {
			return "", err
		}
		e.Notes = n
	}

	id, err := s.repo().Insert(ctx, e)
	if err != nil {
		return "", s.infra(ctx, "submit", err)
	}
	logger.C(ctx).Debug().Str("mood_id", id).Int("rating", e.Rating).Msg("mood submitted")
	return id, nil
}

// Get returns one entry after the existence and ownership checks
func (s *Svc) Get(ctx context.Context, callerID, id string) (domain.Entry, error) {
	owner, err := caller(callerID)
	if err != nil {
		return domain.Entry{}, err
	}
	e, err := s.owned(ctx, s.repo(), owner, id)
	if err != nil {
		return domain.Entry{}, s.infra(ctx, "get", err)
	}
	return e, nil
}

// Update patches the present fields of an owned entry and returns the result
func (s *Svc) Update(ctx context.Context, callerID, id string, in domain.UpdateInput) (domain.Entry, error) {
	owner, err := caller(callerID)
	if err != nil {
		return domain.Entry{}, err
	}

	var out domain.Entry
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := s.owned(ctx, r, owner, id)
		if err != nil {
			return err
		}
		p, err := s.patch(in)
		if err != nil {
			return err
		}
		if in.Empty() {
			out = cur
			return nil
		}
		out, err = r.Update(ctx, cur.ID, owner, p, s.opt.Now())
		return err
	})
	if err != nil {
		return domain.Entry{}, s.infra(ctx, "update", err)
	}
	return out, nil
}

// Delete hard deletes an owned entry
func (s *Svc) Delete(ctx context.Context, callerID, id string) error {
	owner, err := caller(callerID)
	if err != nil {
		return err
	}
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := s.owned(ctx, r, owner, id)
		if err != nil {
			return err
		}
		return r.Delete(ctx, cur.ID, owner)
	})
	if err != nil {
		return s.infra(ctx, "delete", err)
	}
	return nil
}

// ListRecent returns the caller's entries inside the window, newest first
func (s *Svc) ListRecent(ctx context.Context, callerID string, windowDays int) ([]domain.Entry, error) {
	owner, err := caller(callerID)
	if err != nil {
		return nil, err
	}
	cutoff := s.opt.Now().Add(-time.Duration(s.window(windowDays)) * 24 * time.Hour)
	out, err := s.repo().ListSince(ctx, owner, cutoff)
	if err != nil {
		return nil, s.infra(ctx, "list", err)
	}
	if out == nil {
		out = []domain.Entry{}
	}
	return out, nil
}

// Trend buckets the recent window into per-day averages in the reporting zone
func (s *Svc) Trend(ctx context.Context, callerID string, windowDays int) (domain.TrendResp, error) {
	entries, err := s.ListRecent(ctx, callerID, windowDays)
	if err != nil {
		return domain.TrendResp{}, err
	}
	samples := make([]trend.Sample, 0, len(entries))
	for _, e := range entries {
		samples = append(samples, trend.Sample{At: e.RecordedAt, Rating: e.Rating})
	}
	return domain.TrendResp{
		Points: trend.BucketByDay(samples, s.opt.Location),
		Zone:   s.opt.Location.String(),
	}, nil
}

// window resolves the requested day count against the configured bounds
func (s *Svc) window(days int) int {
	switch {
	case days <= 0:
		return s.opt.DefaultWindowDays
	case days > s.opt.MaxWindowDays:
		return s.opt.MaxWindowDays
	}
	return days
}

// owned loads id and checks it belongs to owner
// a malformed id can never exist so it is reported as not found
func (s *Svc) owned(ctx context.Context, r domain.Repo, owner, id string) (domain.Entry, error) {
	uid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domain.Entry{}, perr.NotFoundf("mood entry not found")
	}
	e, err := r.Get(ctx, uid.String())
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Entry{}, perr.NotFoundf("mood entry not found")
		}
		return domain.Entry{}, err
	}
	if e.OwnerID != owner {
		return domain.Entry{}, perr.Forbiddenf("mood entry belongs to another user")
	}
	return e, nil
}

func (s *Svc) patch(in domain.UpdateInput) (domain.Patch, error) {
	var p domain.Patch
	if in.Rating != nil {
		if err := checkRating(*in.Rating); err != nil {
			return p, err
		}
		p.Rating = in.Rating
	}
	if in.RecordedAt != nil {
		at, err := parseRecordedAt(*in.RecordedAt)
		if err != nil {
			return p, err
		}
		p.RecordedAt = &at
	}
	if in.Notes != nil {
		n, err := s.cleanNotes(*in.Notes)
		if err != nil {
			return p, err
		}
		p.Notes = &n
	}
	return p, nil
}

func (s *Svc) cleanNotes(raw string) (string, error) {
	n := notes.Normalize(raw)
	if notes.Len(n) > s.opt.NotesMax {
		return "", perr.Validationf("notes", "notes must be at most %d characters", s.opt.NotesMax)
	}
	return n, nil
}

// infra logs store and verifier failures; caller facing errors pass through untouched
func (s *Svc) infra(ctx context.Context, op string, err error) error {
	if perr.IsInfrastructure(err) {
		logger.C(ctx).Error().Err(err).Str("op", op).Msg("mood store failure")
	}
	return perr.WithOp(err, op)
}

func caller(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", perr.Unauthorizedf("missing caller identity")
	}
	return id, nil
}

func checkRating(v int) error {
	if v < domain.MinRating || v > domain.MaxRating {
		return perr.Validationf("rating", "rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	return nil
}

func parseRecordedAt(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, perr.Validationf("recordedAt", "recordedAt must be an RFC3339 timestamp")
	}
	return t.UTC(), nil
}
