package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "moodlog/internal/platform/errors"
	phttp "moodlog/internal/platform/net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func withReqID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods/trend", nil)
	return req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, id))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]int{"avg": 3})
	if rec.Code != http.StatusTeapot || rec.Header().Get("Content-Type") != "application/json; charset=utf-8" {
		t.Fatalf("JSON = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
}

func TestHandle_SuccessEnvelope(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		resp := phttp.OK(map[string]float64{"average": 3.5})
		resp.Header = http.Header{"Cache-Control": {"private"}}
		return resp
	})
	rec := httptest.NewRecorder()
	h(rec, withReqID("rid-1"))

	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "rid-1" {
		t.Fatalf("envelope = %+v", env)
	}
	if rec.Header().Get("Cache-Control") != "private" {
		t.Fatalf("extra header dropped")
	}
}

func TestHandle_ZeroStatusIsOK(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Body: "x"} })
	rec := httptest.NewRecorder()
	h(rec, withReqID(""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandle_ErrorDecidesStatus(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		// a status set alongside an error body is ignored
		return phttp.Response{Status: http.StatusCreated, Body: perr.Validationf("days", "days must be between 1 and 365")}
	})
	rec := httptest.NewRecorder()
	h(rec, withReqID("rid-2"))

	env := decode(t, rec)
	if rec.Code != http.StatusBadRequest || env.Field != "days" || env.Code != perr.ErrorCodeValidation {
		t.Fatalf("error envelope = %d %+v", rec.Code, env)
	}
	if env.Data != nil || env.RequestID != "rid-2" {
		t.Fatalf("error envelope = %+v", env)
	}
}

func TestHandle_NoContentHasNoBody(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })
	rec := httptest.NewRecorder()
	h(rec, withReqID("rid-3"))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("no content = %d %q", rec.Code, rec.Body.String())
	}
}
