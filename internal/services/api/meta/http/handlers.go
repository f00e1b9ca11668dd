// Package http serves liveness, readiness and build info under /meta
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"moodlog/internal/core/version"
	"moodlog/internal/modkit/httpkit"
)

const probeTimeout = 2 * time.Second

// Pinger is what a readiness probe calls
type Pinger interface {
	Ping(stdctx.Context) error
}

// Probe is one named dependency checked by /ready
type Probe struct {
	Name  string
	Check Pinger
}

type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      []Probe
	Modules     func() []string
	Now         func() time.Time
}

type handlers struct{ Deps }

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse says the process is up
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"moodlog-api"`
	Started string `json:"started" example:"2026-03-10T08:00:00Z"`
	Now     string `json:"now"     example:"2026-03-10T08:05:00Z"`
}

// ReadyCheck is the outcome of one probe: ok or fail
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"connection refused"`
}

// ReadyResponse is ok when every probe passes, fail when any fails,
// and degraded when there was nothing to probe
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-10T08:05:00Z"`
}

// ServiceResponse reports uptime in seconds and the mounted modules
type ServiceResponse struct {
	Name    string   `json:"name"    example:"moodlog-api"`
	Started string   `json:"started" example:"2026-03-10T08:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules" example:"meta,moods"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.Now())}, nil
}

// @Summary Readiness with dependency probes
// @Description Always 200; read status to decide.
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.Probes)), Now: stamp(h.Now())}
	if len(h.Probes) == 0 {
		out.Status = "degraded"
	}
	for _, p := range h.Probes {
		c := ReadyCheck{Name: p.Name, Status: "ok"}
		if err := p.Check.Ping(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, c)
	}
	return out, nil
}

// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// @Summary Uptime and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h handlers) service(*http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.Now().Sub(h.StartedAt) / time.Second),
		Modules: []string{},
	}
	if h.Modules != nil {
		out.Modules = h.Modules()
	}
	return out, nil
}
