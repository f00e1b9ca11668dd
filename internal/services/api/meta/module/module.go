// Package module mounts the meta endpoints
package module

import (
	"time"

	"moodlog/internal/core/version"
	"moodlog/internal/modkit"
	"moodlog/internal/modkit/httpkit"
	"moodlog/internal/modkit/module"
	metahttp "moodlog/internal/services/api/meta/http"
)

// New builds the meta module; readiness probes postgres when deps.PG can ping
func New(deps modkit.Deps, opts ...modkit.Option) *modkit.Mounted {
	d := metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   time.Now(),
		Modules:     module.Names,
	}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		d.Probes = append(d.Probes, metahttp.Probe{Name: "pg", Check: p})
	}

	b := modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)
	return modkit.NewMounted(b, func(r httpkit.Router) { metahttp.Register(r, d) }, nil)
}
