// Package migrations embeds the Postgres schema and applies it with golang-migrate
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"moodlog/internal/platform/logger"
)

//go:embed sql/*.sql
var files embed.FS

// FS returns the embedded migration files rooted at the sql directory
func FS() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// DriverURL rewrites a postgres URL to the pgx5 scheme golang-migrate expects
func DriverURL(dbURL string) (string, error) {
	u := strings.TrimSpace(dbURL)
	for _, p := range []string{"postgres://", "postgresql://", "pgx5://"} {
		if strings.HasPrefix(u, p) {
			return "pgx5://" + strings.TrimPrefix(u, p), nil
		}
	}
	return "", fmt.Errorf("migrations: unsupported database url scheme")
}

// Runner wraps a migrate instance over the embedded files
type Runner struct {
	m *migrate.Migrate
}

// New opens a runner against dbURL
func New(dbURL string) (*Runner, error) {
	target, err := DriverURL(dbURL)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(FS(), ".")
	if err != nil {
		return nil, fmt.Errorf("migrations: open source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return nil, fmt.Errorf("migrations: open database: %w", err)
	}
	m.Log = migrateLog{}
	return &Runner{m: m}, nil
}

// Up applies every pending migration; nothing to do is not an error
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Down rolls back n steps, all of them when n <= 0
func (r *Runner) Down(n int) error {
	var err error
	if n <= 0 {
		err = r.m.Down()
	} else {
		err = r.m.Steps(-n)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Version reports the applied version; 0 means none
func (r *Runner) Version() (version uint, dirty bool, err error) {
	v, d, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, d, err
}

// Force sets the version without running anything, used to clear a dirty flag
func (r *Runner) Force(version int) error { return r.m.Force(version) }

// Close releases the source and database handles
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Up is a one-shot helper for boot and tests
func Up(dbURL string) error {
	r, err := New(dbURL)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()
	return r.Up()
}

// migrateLog routes golang-migrate output through the named logger
type migrateLog struct{}

func (migrateLog) Printf(format string, v ...any) {
	logger.Named("migrate").Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (migrateLog) Verbose() bool { return false }
