package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"moodlog/internal/modkit/repokit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/services/api/moods/domain"
)

// nopTx satisfies repokit.TxRunner; the fake repo never issues SQL
type nopTx struct{ txs *int }

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, errors.New("nopTx")
}
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("nopTx")
}
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row { return nil }
func (t nopTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	if t.txs != nil {
		*t.txs++
	}
	return fn(t)
}

// memRepo is an in-memory domain.Repo keyed by uuid string
type memRepo struct {
	mu      sync.Mutex
	seq     int
	rows    map[string]domain.Entry
	now     func() time.Time
	failAll error
	updates int
}

func newMemRepo(now func() time.Time) *memRepo {
	return &memRepo{rows: map[string]domain.Entry{}, now: now}
}

func (m *memRepo) binder() repokit.Binder[domain.Repo] {
	return repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return m })
}

func (m *memRepo) Insert(_ context.Context, e domain.NewEntry) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return "", m.failAll
	}
	m.seq++
	id := fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq)
	at := m.now().UTC()
	m.rows[id] = domain.Entry{
		ID: id, OwnerID: e.OwnerID, Rating: e.Rating, Notes: e.Notes,
		RecordedAt: e.RecordedAt, CreatedAt: at, UpdatedAt: at,
	}
	return id, nil
}

func (m *memRepo) Get(_ context.Context, id string) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return domain.Entry{}, m.failAll
	}
	e, ok := m.rows[id]
	if !ok {
		return domain.Entry{}, perr.ErrNotFound
	}
	return e, nil
}

func (m *memRepo) Update(_ context.Context, id, owner string, p domain.Patch, at time.Time) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	e, ok := m.rows[id]
	if !ok || e.OwnerID != owner {
		return domain.Entry{}, perr.ErrNotFound
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.RecordedAt != nil {
		e.RecordedAt = *p.RecordedAt
	}
	e.UpdatedAt = at.UTC()
	m.rows[id] = e
	return e, nil
}

func (m *memRepo) Delete(_ context.Context, id, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.OwnerID != owner {
		return perr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo) ListSince(_ context.Context, owner string, cutoff time.Time) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	var out []domain.Entry
	for _, e := range m.rows {
		if e.OwnerID == owner && !e.RecordedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// seed stores an entry directly, bypassing validation
func (m *memRepo) seed(owner string, rating int, at time.Time) string {
	id, _ := m.Insert(context.Background(), domain.NewEntry{OwnerID: owner, Rating: rating, RecordedAt: at})
	return id
}
