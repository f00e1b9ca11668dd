package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	perr "moodlog/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns a path parameter captured by the router
func Param(r *stdhttp.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// QueryInt reads an optional integer query parameter
// absent or blank yields ok=false; anything that is not an integer is a validation error on name
func QueryInt(r *stdhttp.Request, name string) (v int, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false, perr.Validationf(name, "%s must be an integer", name)
	}
	return n, true, nil
}
