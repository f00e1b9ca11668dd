// Package httpkit is the HTTP surface modules build against
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "moodlog/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

func Created(data any) Response { return phttp.Created(data) }
func NoContent() Response       { return phttp.NoContent() }

// Param is the trimmed path parameter name
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// QueryInt reads an optional integer query parameter
func QueryInt(r *http.Request, name string) (int, bool, error) { return phttp.QueryInt(r, name) }
