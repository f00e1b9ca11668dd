package middleware

import (
	"net/http"

	pnet "moodlog/internal/platform/net"
	"moodlog/internal/platform/logger"
)

// Identity is the caller resolved from a verified credential
type Identity struct {
	UserID string
	Email  string
}

// AuthPort resolves the caller of a request
type AuthPort interface {
	// Parse returns the verified identity or an error
	Parse(r *http.Request) (Identity, error)
}

// Auth resolves the caller through p and annotates the request context
// a nil port passes requests through untouched
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			id, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), id.UserID)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
