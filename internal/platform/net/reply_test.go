package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "moodlog/internal/platform/errors"
	pnet "moodlog/internal/platform/net"
)

func TestSuccess(t *testing.T) {
	w := pnet.Success(http.StatusCreated, map[string]string{"id": "m1"}, "req-1")
	if w.StatusCode != http.StatusCreated || w.Status != "Created" || w.RequestID != "req-1" {
		t.Fatalf("wire = %+v", w)
	}
	if w.Error != "" || w.Code != 0 {
		t.Fatalf("success carries no error: %+v", w)
	}
}

func TestError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		field  string
		msg    string
	}{
		{"nil", nil, http.StatusOK, "", ""},
		{"validation", perr.Validationf("rating", "rating must be between 1 and 5"), http.StatusBadRequest, "rating", "rating must be between 1 and 5"},
		{"forbidden", perr.Forbiddenf("mood entry belongs to another user"), http.StatusForbidden, "", "mood entry belongs to another user"},
		{"foreign error", errors.New("dial tcp 10.0.0.3:5432: refused"), http.StatusInternalServerError, "", "internal error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, w := pnet.Error(c.err, "req-2")
			if status != c.status || w.StatusCode != c.status {
				t.Fatalf("status = %d/%d want %d", status, w.StatusCode, c.status)
			}
			if w.Field != c.field || w.Error != c.msg || w.RequestID != "req-2" {
				t.Fatalf("wire = %+v", w)
			}
		})
	}
}
