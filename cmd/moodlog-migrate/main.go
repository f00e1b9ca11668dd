package main

import (
	"flag"
	"os"

	"moodlog/internal/platform/config"
	"moodlog/internal/platform/logger"
	"moodlog/internal/platform/store/migrations"
)

func main() {
	var (
		fDown    = flag.Int("down", 0, "roll back N steps (-1 for all) instead of migrating up")
		fForce   = flag.Int("force", -1, "force the schema version without running migrations")
		fVersion = flag.Bool("version", false, "print the applied version and exit")
	)
	flag.Parse()

	pgCfg := config.New().Prefix("SERVICE_PGSQL_")
	l := logger.Named("migrate")

	r, err := migrations.New(pgCfg.MustString("DBURL"))
	if err != nil {
		l.Fatal().Err(err).Msg("open migrations")
	}
	defer func() {
		if err := r.Close(); err != nil {
			l.Error().Err(err).Msg("close migrations")
		}
	}()

	switch {
	case *fVersion:
	case *fForce >= 0:
		err = r.Force(*fForce)
	case *fDown != 0:
		n := *fDown
		if n < 0 {
			n = 0
		}
		err = r.Down(n)
	default:
		err = r.Up()
	}
	if err != nil {
		l.Error().Err(err).Msg("migration failed")
		_ = r.Close()
		os.Exit(1)
	}

	v, dirty, err := r.Version()
	if err != nil {
		l.Error().Err(err).Msg("read version")
		_ = r.Close()
		os.Exit(1)
	}
	l.Info().Uint("version", v).Bool("dirty", dirty).Msg("schema version")
}
