package httpkit

import (
	"net/http"

	phttp "moodlog/internal/platform/net/http"
)

// Get mounts a handler that reads nothing from the body
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBody(h))
}

// Delete mounts a handler that reads nothing from the body
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.NoBody(h))
}

// PostJSON mounts h behind JSON decoding and validation of T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// PutJSON mounts h behind JSON decoding and validation of T
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.JSONHandler(h))
}
