// Package module wires moods into the API
package module

import (
	"moodlog/internal/modkit"
	"moodlog/internal/modkit/httpkit"
	moodshttp "moodlog/internal/services/api/moods/http"
	moodsrepo "moodlog/internal/services/api/moods/repo"
	moodssvc "moodlog/internal/services/api/moods/service"
)

var defaults = []modkit.Option{
	modkit.WithName("moods"),
	modkit.WithPrefix("/moods"),
}

// New builds the moods module with MOODS_* settings from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) *modkit.Mounted {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith builds the moods module; its ports are the instrumented domain.ServicePort
func NewWith(deps modkit.Deps, set Settings, opts ...modkit.Option) *modkit.Mounted {
	svc := instrumented{next: moodssvc.New(deps.PG, moodsrepo.NewPG(), set.Service)}
	routes := func(r httpkit.Router) { moodshttp.Register(r, svc, set.Transport) }
	return modkit.NewMounted(modkit.Build(defaults, opts...), routes, svc)
}
