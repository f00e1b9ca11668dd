package store

import (
	"context"
	"errors"
	"time"

	"moodlog/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is satisfied by both *pgxpool.Pool and pgx.Tx
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced is a RowQuerier over pgx that reports each statement to tracer
type traced struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slow   time.Duration
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	began := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.report(ctx, sql, args, began, err)
	return cmdTag(ct), err
}

// Query reports when the result opens, before any row is scanned
func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	began := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.report(ctx, sql, args, began, err)
	if err != nil {
		return nil, err
	}
	return pgxRows{rs}, nil
}

// QueryRow reports on Scan so the event carries the scan error
func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	began := time.Now()
	r := t.q.QueryRow(ctx, sql, args...)
	return scanHook{r: r, done: func(err error) { t.report(ctx, sql, args, began, err) }}
}

func (t traced) report(ctx context.Context, sql string, args []any, began time.Time, err error) {
	if t.tracer == nil {
		return
	}
	d := time.Since(began)
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:     sql,
		Args:    args,
		Elapsed: d,
		Err:     err,
		Slow:    t.slow > 0 && d >= t.slow,
	})
}

// pgAdapter is the TxRunner the store hands to repositories
type pgAdapter struct {
	traced
	pool *pgxpool.Pool
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.pool == nil {
		return errors.New("pg: not open")
	}
	return a.pool.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	if a != nil && a.pool != nil {
		a.pool.Close()
	}
	return nil
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, a.pool, func(tx pgx.Tx) error {
		return fn(a.inTx(tx))
	})
}

// inTx returns a copy of the adapter's tracing bound to tx
func (a *pgAdapter) inTx(tx pgxQuerier) traced {
	t := a.traced
	t.q = tx
	return t
}

type scanHook struct {
	r    pgx.Row
	done func(error)
}

func (h scanHook) Scan(dst ...any) error {
	err := h.r.Scan(dst...)
	h.done(err)
	return err
}

type pgxRows struct{ pgx.Rows }

func (r pgxRows) Columns() []string {
	fds := r.FieldDescriptions()
	names := make([]string, 0, len(fds))
	for _, fd := range fds {
		names = append(names, fd.Name)
	}
	return names
}

func cmdTag(ct pgconn.CommandTag) CommandTag { return ct }
