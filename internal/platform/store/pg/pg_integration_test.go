//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"moodlog/internal/platform/store/pgtest"

	"github.com/jackc/pgx/v5"
)

func TestOpen_Integration(t *testing.T) {
	dsn := pgtest.DSN(t, "pgopen")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := Open(ctx, Config{URL: dsn, MaxConns: 2, AppName: "moodlog-pg-it"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var app string
	if err := pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("application_name: %v", err)
	}
	if app != "moodlog-pg-it" {
		t.Fatalf("application_name = %q", app)
	}

	rows, err := pool.Query(ctx, `SELECT g, g % 5 + 1 FROM generate_series(1, 3) AS g`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	type pair struct{ N, Rating int }
	got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[pair])
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 3 || got[2] != (pair{3, 4}) {
		t.Fatalf("rows = %+v", got)
	}
}
