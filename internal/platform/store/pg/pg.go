// Package pg opens the pgx pool behind the store and defines its statement trace hook
package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	URL      string
	MaxConns int32
	// AppName shows up in pg_stat_activity
	AppName  string
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool; connections are dialed lazily so a down server is not an error here
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return newPool(ctx, pc)
}
