// Package http provides http transport for moods
package http

import (
	stdhttp "net/http"

	"moodlog/internal/modkit/httpkit"
	perr "moodlog/internal/platform/errors"
	"moodlog/internal/services/api/moods/domain"
	svc "moodlog/internal/services/api/moods/service"
)

// Options tune the transport edge
type Options struct {
	// ConcealForeign reports another user's entry as not found instead of forbidden
	ConcealForeign bool
}

// Register mounts mood endpoints on the given router
// every route expects an authenticated caller on the request context
func Register(r httpkit.Router, s svc.Service, opt Options) {
	h := &handlers{svc: s, conceal: opt.ConcealForeign}
	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
	httpkit.Get(r, "/recent", h.recent)
	httpkit.Get(r, "/trend", h.trend)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct {
	svc     svc.Service
	conceal bool
}

// edge applies transport policy to service errors
func (h *handlers) edge(err error) error {
	if h.conceal && perr.IsCode(err, perr.ErrorCodeForbidden) {
		return perr.Recode(err, perr.ErrorCodeNotFound, "mood entry not found")
	}
	return err
}

// @Summary Record a mood
// @Tags Moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SubmitInput true "Mood"
// @Success 201 {object} domain.SubmitResp "created"
// @Failure 400 {object} httpkit.Envelope
// @Failure 401 {object} httpkit.Envelope
// @Router /moods [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id, err := h.svc.Submit(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.SubmitResp{MoodID: id}), nil
}

// @Summary Recent moods, newest first
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 7, max 365)"
// @Success 200 {object} domain.ListResp
// @Failure 400 {object} httpkit.Envelope
// @Failure 401 {object} httpkit.Envelope
// @Router /moods/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	days, _, err := httpkit.QueryInt(r, "days")
	if err != nil {
		return nil, err
	}
	out, err := h.svc.ListRecent(r.Context(), uid, days)
	if err != nil {
		return nil, err
	}
	return domain.ListResp{Moods: out}, nil
}

// @Summary Daily average rating, oldest first
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 7, max 365)"
// @Success 200 {object} domain.TrendResp
// @Failure 400 {object} httpkit.Envelope
// @Failure 401 {object} httpkit.Envelope
// @Router /moods/trend [get]
func (h *handlers) trend(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	days, _, err := httpkit.QueryInt(r, "days")
	if err != nil {
		return nil, err
	}
	return h.svc.Trend(r.Context(), uid, days)
}

// @Summary Get one mood
// @Tags Moods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mood id"
// @Success 200 {object} domain.Entry
// @Failure 403 {object} httpkit.Envelope
// @Failure 404 {object} httpkit.Envelope
// @Router /moods/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	e, err := h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
	if err != nil {
		return nil, h.edge(err)
	}
	return e, nil
}

// @Summary Update a mood
// @Description Only the fields present in the body change
// @Tags Moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mood id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Entry
// @Failure 400 {object} httpkit.Envelope
// @Failure 403 {object} httpkit.Envelope
// @Failure 404 {object} httpkit.Envelope
// @Router /moods/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	e, err := h.svc.Update(r.Context(), uid, httpkit.Param(r, "id"), in)
	if err != nil {
		return nil, h.edge(err)
	}
	return e, nil
}

// @Summary Delete a mood
// @Tags Moods
// @Security BearerAuth
// @Param id path string true "Mood id"
// @Success 204
// @Failure 403 {object} httpkit.Envelope
// @Failure 404 {object} httpkit.Envelope
// @Router /moods/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, httpkit.Param(r, "id")); err != nil {
		return nil, h.edge(err)
	}
	return httpkit.NoContent(), nil
}
