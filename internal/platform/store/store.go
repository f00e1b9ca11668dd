// Package store holds the sql seam repositories run against and opens postgres behind it
package store

import (
	"context"
	"errors"

	"moodlog/internal/platform/logger"
)

// Store carries the opened backends; a nil PG means postgres is disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner
}

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is what repositories issue statements through
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner commits when fn returns nil and rolls back otherwise
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Open connects every backend cfg enables and waits for it to answer.
// l may be the zero logger.
func Open(ctx context.Context, cfg Config, l logger.Logger) (*Store, error) {
	s := &Store{Log: l.With().Str("component", "store").Logger()}
	if !cfg.PG.Enabled {
		s.Log.Info().Msg("postgres disabled")
		return s, nil
	}
	a, err := openPG(ctx, cfg, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = a
	return s, nil
}

// Close releases whatever Open connected
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
