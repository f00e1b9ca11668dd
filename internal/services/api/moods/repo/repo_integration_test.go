//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/store"
	"moodlog/internal/platform/store/migrations"
	"moodlog/internal/platform/store/pgtest"
	"moodlog/internal/services/api/moods/domain"

	"github.com/rs/zerolog"
)

// startPostgres returns a migrated database
func startPostgres(t *testing.T) store.TxRunner {
	t.Helper()
	dsn := pgtest.DSN(t, "moods")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	st, err := store.Open(ctx, store.Config{
		AppName: "moodlog-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := migrations.Up(dsn); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return st.PG
}

func ptr[T any](v T) *T { return &v }

func TestRepo_Integration_Lifecycle(t *testing.T) {
	db := startPostgres(t)
	r := NewPG().Bind(db)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	id, err := r.Insert(ctx, domain.NewEntry{OwnerID: "alice", Rating: 4, Notes: "coffee", RecordedAt: day})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := r.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.OwnerID != "alice" || got.Rating != 4 || got.Notes != "coffee" || !got.RecordedAt.Equal(day) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("timestamps should default from the database clock: %+v", got)
	}

	// rating only; notes and recorded_at stay put
	at := time.Now().UTC().Truncate(time.Microsecond)
	upd, err := r.Update(ctx, id, "alice", domain.Patch{Rating: ptr(2)}, at)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Rating != 2 || upd.Notes != "coffee" || !upd.RecordedAt.Equal(day) || !upd.UpdatedAt.Equal(at) {
		t.Fatalf("partial update wrong: %+v", upd)
	}

	// owner guard turns a foreign write into not found
	if _, err := r.Update(ctx, id, "mallory", domain.Patch{Notes: ptr("x")}, at); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("foreign update = %v", err)
	}
	if err := r.Delete(ctx, id, "mallory"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("foreign delete = %v", err)
	}

	if err := r.Delete(ctx, id, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(ctx, id); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("get after delete = %v", err)
	}
}

func TestRepo_Integration_RatingCheckAndList(t *testing.T) {
	db := startPostgres(t)
	r := NewPG().Bind(db)
	ctx := context.Background()

	_, err := r.Insert(ctx, domain.NewEntry{OwnerID: "alice", Rating: 6, RecordedAt: time.Now()})
	if !perr.IsCode(err, perr.ErrorCodeValidation) || !perr.IsCheckViolation(err) {
		t.Fatalf("out of range rating should trip the check constraint, got %v", err)
	}

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, owner := range []string{"alice", "alice", "alice", "bob"} {
		at := base.Add(-time.Duration(i) * 24 * time.Hour)
		if _, err := r.Insert(ctx, domain.NewEntry{OwnerID: owner, Rating: 3, RecordedAt: at}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	out, err := r.ListSince(ctx, "alice", base.Add(-36*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 entries inside the window, got %d", len(out))
	}
	if !out[0].RecordedAt.After(out[1].RecordedAt) {
		t.Fatalf("list should be newest first: %v then %v", out[0].RecordedAt, out[1].RecordedAt)
	}

	none, err := r.ListSince(ctx, "carol", base.Add(-365*24*time.Hour))
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("unknown owner should list empty, got %v %v", none, err)
	}
}
