package pg

import (
	"context"
	"errors"
	"testing"

	"moodlog/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://nope"}); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		return nil, errors.New("no server in unit tests")
	})

	_, err := Open(context.Background(), Config{
		URL:      "postgres://moodlog:secret@db:5432/moodlog?sslmode=disable",
		MaxConns: 7,
		AppName:  "moodlog-api",
	})
	if err == nil {
		t.Fatalf("pool error should surface")
	}
	if seen == nil || seen.MaxConns != 7 || seen.ConnConfig.RuntimeParams["application_name"] != "moodlog-api" {
		t.Fatalf("pool config = %+v", seen)
	}
}

func TestOpen_KeepsDefaultMaxConns(t *testing.T) {
	testkit.Serial(t)

	var got int32
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		got = pc.MaxConns
		return nil, errors.New("stop")
	})
	_, _ = Open(context.Background(), Config{URL: "postgres://u@h/db?pool_max_conns=3"})
	if got != 3 {
		t.Fatalf("zero MaxConns should keep the url's setting, got %d", got)
	}
}
