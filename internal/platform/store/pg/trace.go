package pg

import (
	"context"
	"strings"
	"time"

	"moodlog/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

type TracerFunc func(ctx context.Context, ev QueryEvent)

func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// LogTracer logs every statement whatever the root level, slow ones at warn.
// Bound values are mood notes and user ids, so only their count is logged.
func LogTracer(l logger.Logger) QueryTracer {
	l = l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return TracerFunc(func(ctx context.Context, ev QueryEvent) {
		e := l.Info()
		if ev.Slow {
			e = l.Warn()
		}
		e.Ctx(ctx).
			Dur("elapsed", ev.Elapsed).
			Bool("slow", ev.Slow).
			Str("sql", oneLine(ev.SQL)).
			Int("args", len(ev.Args)).
			Err(ev.Err).
			Msg("pg query")
	})
}

func oneLine(sql string) string { return strings.Join(strings.Fields(sql), " ") }
