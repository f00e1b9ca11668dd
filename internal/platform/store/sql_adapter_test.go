package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"moodlog/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recTracer struct{ events []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

type fakePgxRow struct{ err error }

func (r fakePgxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = 1
	return nil
}

// fakePgxRows only answers what the rows adapter forwards
type fakePgxRows struct {
	cols   []string
	closed bool
}

func (r *fakePgxRows) Close()                        { r.closed = true }
func (r *fakePgxRows) Err() error                    { return nil }
func (r *fakePgxRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT 0") }
func (r *fakePgxRows) Next() bool                    { return false }
func (r *fakePgxRows) Scan(...any) error             { return nil }
func (r *fakePgxRows) Values() ([]any, error)        { return nil, nil }
func (r *fakePgxRows) RawValues() [][]byte           { return nil }
func (r *fakePgxRows) Conn() *pgx.Conn               { return nil }
func (r *fakePgxRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}

type fakePgx struct {
	name    string
	execErr error
	rowErr  error
	rows    *fakePgxRows
}

func (f *fakePgx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("DELETE 1"), f.execErr
}

func (f *fakePgx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return f.rows, nil
}

func (f *fakePgx) QueryRow(context.Context, string, ...any) pgx.Row { return fakePgxRow{err: f.rowErr} }

func TestTraced_ExecReportsAndWrapsTag(t *testing.T) {
	tr := &recTracer{}
	boom := errors.New("deadlock detected")
	q := traced{q: &fakePgx{execErr: boom}, tracer: tr}

	ct, err := q.Exec(context.Background(), `DELETE FROM mood_entries WHERE id = $1`, "m1")
	if !errors.Is(err, boom) {
		t.Fatalf("exec err = %v", err)
	}
	if ct.RowsAffected() != 1 || ct.String() != "DELETE 1" {
		t.Fatalf("tag = %q %d", ct.String(), ct.RowsAffected())
	}
	if len(tr.events) != 1 {
		t.Fatalf("events = %d", len(tr.events))
	}
	ev := tr.events[0]
	if !errors.Is(ev.Err, boom) || ev.SQL == "" || ev.Slow {
		t.Fatalf("event = %+v", ev)
	}
	if len(ev.Args) != 1 || ev.Args[0] != "m1" {
		t.Fatalf("args = %#v", ev.Args)
	}
}

func TestTraced_QueryRowReportsAfterScan(t *testing.T) {
	tr := &recTracer{}
	noRows := errors.New("no rows in result set")
	q := traced{q: &fakePgx{rowErr: noRows}, tracer: tr}

	r := q.QueryRow(context.Background(), `SELECT rating FROM mood_entries WHERE id = $1`, "m1")
	if len(tr.events) != 0 {
		t.Fatalf("QueryRow should wait for Scan")
	}
	var n int
	if err := r.Scan(&n); !errors.Is(err, noRows) {
		t.Fatalf("scan = %v", err)
	}
	if len(tr.events) != 1 || !errors.Is(tr.events[0].Err, noRows) {
		t.Fatalf("events = %+v", tr.events)
	}
}

func TestTraced_SlowThreshold(t *testing.T) {
	ctx := context.Background()

	never := &recTracer{}
	_, _ = traced{q: &fakePgx{}, tracer: never}.Exec(ctx, "SELECT 1")
	if never.events[0].Slow {
		t.Fatalf("zero threshold must not flag queries")
	}

	fast := &recTracer{}
	_, _ = traced{q: &fakePgx{}, tracer: fast, slow: time.Hour}.Exec(ctx, "SELECT 1")
	if fast.events[0].Slow {
		t.Fatalf("fast query flagged slow")
	}

	always := &recTracer{}
	q := traced{q: slowPgx{fakePgx: &fakePgx{}}, tracer: always, slow: time.Microsecond}
	_, _ = q.Exec(ctx, "SELECT pg_sleep(0)")
	if !always.events[0].Slow {
		t.Fatalf("query over the threshold should be slow: %+v", always.events[0])
	}
}

// slowPgx takes long enough to cross a one microsecond threshold
type slowPgx struct{ *fakePgx }

func (s slowPgx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	time.Sleep(time.Millisecond)
	return s.fakePgx.Exec(ctx, sql, args...)
}

func TestTraced_NilTracerIsQuiet(t *testing.T) {
	q := traced{q: &fakePgx{}}
	var n int
	if err := q.QueryRow(context.Background(), "SELECT 1").Scan(&n); err != nil || n != 1 {
		t.Fatalf("scan = %d %v", n, err)
	}
}

func TestTraced_QueryColumnsAndClose(t *testing.T) {
	tr := &recTracer{}
	src := &fakePgxRows{cols: []string{"id", "rating", "recorded_at"}}
	q := traced{q: &fakePgx{rows: src}, tracer: tr}

	rs, err := q.Query(context.Background(), `SELECT id, rating, recorded_at FROM mood_entries`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	cols := rs.Columns()
	if len(cols) != 3 || cols[0] != "id" || cols[2] != "recorded_at" {
		t.Fatalf("columns = %v", cols)
	}
	rs.Close()
	if !src.closed {
		t.Fatalf("close not forwarded")
	}
	if len(tr.events) != 1 {
		t.Fatalf("query should emit once on open, got %d", len(tr.events))
	}
}

func TestPGAdapter_InTxKeepsTracing(t *testing.T) {
	tr := &recTracer{}
	a := &pgAdapter{traced: traced{q: &fakePgx{name: "pool"}, tracer: tr, slow: 250 * time.Millisecond}}

	tx := &fakePgx{name: "tx"}
	in := a.inTx(tx)
	if in.q != tx || in.tracer != tr || in.slow != 250*time.Millisecond {
		t.Fatalf("inTx = %+v", in)
	}
	if a.q.(*fakePgx).name != "pool" {
		t.Fatalf("inTx must not mutate the adapter")
	}

	_, _ = in.Exec(context.Background(), "UPDATE mood_entries SET rating = 2")
	if len(tr.events) != 1 {
		t.Fatalf("tx statements should be traced")
	}
}

func TestPGAdapter_UnopenedPingAndClose(t *testing.T) {
	for _, a := range []*pgAdapter{nil, {}} {
		if err := a.Ping(context.Background()); err == nil {
			t.Fatalf("unopened adapter should not ping")
		}
		if err := a.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
}
