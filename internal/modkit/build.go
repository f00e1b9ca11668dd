package modkit

import (
	"net/http"
	"slices"

	"moodlog/internal/modkit/httpkit"
	str "moodlog/internal/platform/strings"
)

// Built is the result of applying Options over a module's defaults
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// Build applies defaults first so caller options win
func Build(defaults []Option, opts ...Option) Built {
	var b Built
	for _, o := range slices.Concat(defaults, opts) {
		o(&b)
	}
	return b
}

// Mounted is a Module made from a Built and the function that registers its routes
type Mounted struct {
	b      Built
	routes func(httpkit.Router)
	ports  any
}

// NewMounted panics when the name or prefix is blank
func NewMounted(b Built, routes func(httpkit.Router), ports any) *Mounted {
	b.Name = str.MustString(b.Name, "module name")
	b.Prefix = str.MustPrefix(b.Prefix)
	return &Mounted{b: b, routes: routes, ports: ports}
}

func (m *Mounted) Name() string   { return m.b.Name }
func (m *Mounted) Prefix() string { return m.b.Prefix }
func (m *Mounted) Ports() any     { return m.ports }

// MountRoutes scopes the module under its prefix behind its own middleware
func (m *Mounted) MountRoutes(r httpkit.Router) {
	r.Route(m.b.Prefix, func(sub httpkit.Router) {
		if len(m.b.Mw) > 0 {
			sub.Use(m.b.Mw...)
		}
		if m.routes != nil {
			m.routes(sub)
		}
	})
}
