// Package api assembles the HTTP surface: meta in the open, moods behind bearer auth
package api

import (
	"moodlog/internal/platform/config"
	"moodlog/internal/platform/logger"
	"moodlog/internal/platform/metrics"
	phttp "moodlog/internal/platform/net/http"
	"moodlog/internal/platform/store"

	"moodlog/internal/modkit"
	"moodlog/internal/modkit/httpkit"
	"moodlog/internal/modkit/module"
	"moodlog/internal/modkit/swaggerkit"

	metamod "moodlog/internal/services/api/meta/module"
	moodsmod "moodlog/internal/services/api/moods/module"
	identrepo "moodlog/internal/services/ident/repo"
	identsvc "moodlog/internal/services/ident/service"
)

type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// CORSOrigins limits browser callers; empty means any origin
	CORSOrigins []string

	// Verify checks bearer tokens for the protected surface
	Verify httpkit.TokenFunc
}

// Mount panics without a postgres store or a token verifier
func Mount(r phttp.Router, opt Options) {
	if opt.Store == nil || opt.Store.PG == nil {
		logger.Get().Panic().Msg("api.Mount requires a postgres store")
	}
	if opt.Verify == nil {
		logger.Get().Panic().Msg("api.Mount requires a token verifier")
	}

	deps := modkit.Deps{Cfg: opt.Config, PG: opt.Store.PG, Log: *logger.Named("api")}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// every accepted caller lands in the user registry before the handler runs
	users := identsvc.New(deps.PG, identrepo.NewPG())
	auth := httpkit.NewPortFunc(users.Tracking(opt.Verify))
	module.Register("ident", users)

	mods := []struct {
		module.Module
		secured bool
	}{
		{metamod.New(deps), false},
		{moodsmod.New(deps, modkit.WithMiddlewares(httpkit.Auth(auth))), true},
	}

	r.Use(metrics.Instrument)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORSOrigins...), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			deps.Log.Info().Str("module", m.Name()).Str("prefix", m.Prefix()).Bool("auth", m.secured).Msg("module mounted")
		}
	})
}
