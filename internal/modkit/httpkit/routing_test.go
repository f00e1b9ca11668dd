package httpkit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "moodlog/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type entry struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	port := NewPortFunc(func(_ context.Context, tok string) (Identity, error) {
		if tok == "good" {
			return Identity{UserID: "u1"}, nil
		}
		return Identity{}, errors.New("bad signature")
	})

	MountAPIV1(phttp.AdaptChi(mux), CommonStack("https://moodlog.example"), func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		api.Group(func(pr Router) {
			pr.Use(Auth(port))
			pr.Route("/moods", func(m Router) {
				PostJSON(m, "/", func(r *http.Request, in entry) (any, error) {
					uid, _ := User(r)
					return Created(map[string]any{"owner": uid, "rating": in.Rating}), nil
				})
				PutJSON(m, "/{id}", func(r *http.Request, in entry) (any, error) {
					return map[string]any{"id": Param(r, "id"), "rating": in.Rating}, nil
				})
				Delete(m, "/{id}", func(*http.Request) (any, error) { return NoContent(), nil })
			})
		})
	})
	return mux
}

func call(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouting(t *testing.T) {
	h := newRouter(t)

	cases := []struct {
		method, path, token, body string
		status                    int
		has                       string
	}{
		{http.MethodGet, "/api/v1/ping", "", "", http.StatusOK, `"data":"pong"`},
		{http.MethodPost, "/api/v1/moods", "", `{"rating":3}`, http.StatusUnauthorized, "missing bearer token"},
		{http.MethodPost, "/api/v1/moods", "forged", `{"rating":3}`, http.StatusUnauthorized, "invalid bearer token"},
		{http.MethodPost, "/api/v1/moods", "good", `{"rating":3}`, http.StatusCreated, `"owner":"u1"`},
		{http.MethodPost, "/api/v1/moods", "good", `{"rating":9}`, http.StatusBadRequest, `"field":"rating"`},
		{http.MethodPut, "/api/v1/moods/m7", "good", `{"rating":2}`, http.StatusOK, `"id":"m7"`},
		{http.MethodDelete, "/api/v1/moods/m7", "good", "", http.StatusNoContent, ""},
		{http.MethodGet, "/health", "", "", http.StatusNotFound, ""},
	}
	for _, c := range cases {
		rec := call(h, c.method, c.path, c.token, c.body)
		if rec.Code != c.status || !strings.Contains(rec.Body.String(), c.has) {
			t.Fatalf("%s %s: %d %s", c.method, c.path, rec.Code, rec.Body.String())
		}
	}
}

func TestCommonStack_HeadersAndHeartbeat(t *testing.T) {
	var h http.Handler = http.NotFoundHandler()
	stack := CommonStack()
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache headers missing")
	}
}
