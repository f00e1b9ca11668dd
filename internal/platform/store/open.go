package store

import (
	"context"
	"fmt"
	"time"

	"moodlog/internal/platform/logger"
	"moodlog/internal/platform/store/pg"
)

var (
	openPool   = pg.Open
	firstDelay = 250 * time.Millisecond
	maxDelay   = 5 * time.Second
)

func openPG(ctx context.Context, cfg Config, l logger.Logger) (*pgAdapter, error) {
	pool, err := openPool(ctx, pg.Config{URL: cfg.PG.URL, MaxConns: cfg.PG.MaxConns, AppName: cfg.AppName})
	if err != nil {
		return nil, err
	}
	a := &pgAdapter{pool: pool, traced: traced{q: pool, slow: cfg.PG.SlowQuery}}
	if cfg.PG.LogSQL {
		a.tracer = pg.LogTracer(l)
	}
	if err := waitReady(ctx, a.Ping, cfg.PG, l); err != nil {
		a.Close()
		return nil, err
	}
	l.Info().Int32("max_conns", pool.Config().MaxConns).Bool("log_sql", cfg.PG.LogSQL).Msg("postgres ready")
	return a, nil
}

// waitReady pings until one succeeds, doubling the pause between tries up to maxDelay
func waitReady(ctx context.Context, ping func(context.Context) error, cfg PGConfig, l logger.Logger) error {
	delay := firstDelay
	var err error
	for try := 1; ; try++ {
		pctx, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
		err = ping(pctx)
		cancel()
		if err == nil {
			return nil
		}
		if try >= cfg.retries() {
			break
		}
		l.Warn().Err(err).Int("try", try).Dur("next_in", delay).Msg("postgres not ready")

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("pg: wait ready: %w", ctx.Err())
		case <-t.C:
		}
		delay = min(delay*2, maxDelay)
	}
	return fmt.Errorf("pg: not ready after %d tries: %w", cfg.retries(), err)
}
