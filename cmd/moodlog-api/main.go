// @title         moodlog API
// @version       0.1.0
// @description   Record daily mood ratings and read them back as recent lists and day trends
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os/signal"
	"syscall"

	// reporting zones must resolve on slim images
	_ "time/tzdata"

	"moodlog/internal/adapters/authjwt"
	"moodlog/internal/platform/config"
	"moodlog/internal/platform/logger"
	phttp "moodlog/internal/platform/net/http"
	"moodlog/internal/platform/store"
	"moodlog/internal/platform/store/migrations"

	"moodlog/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbURL := pgCfg.MustString("DBURL")
	if apiCfg.MayBool("MIGRATE", false) {
		if err := migrations.Up(dbURL); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
	}

	// verifier first so a missing secret fails before we dial postgres
	verifier := authjwt.New(authjwt.FromConfig(root.Prefix("AUTH_JWT_")))

	pgc := store.PGFromConfig(pgCfg)
	pgc.URL, pgc.Enabled = dbURL, true
	st, err := store.Open(ctx, store.Config{AppName: "moodlog-api", PG: pgc}, *l)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			Verify:         verifier.TokenFunc(),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
