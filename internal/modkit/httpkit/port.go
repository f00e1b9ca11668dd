package httpkit

import (
	"context"
	"net/http"
	"strings"

	perrs "moodlog/internal/platform/errors"
	"moodlog/internal/platform/net/middleware"
)

// Identity is the verified caller
type Identity = middleware.Identity

// TokenFunc verifies a raw bearer token and returns the caller it names
type TokenFunc func(ctx context.Context, token string) (Identity, error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse resolves the caller from the bearer token
// any rejection is 401 except an unavailable verifier which stays 503
func (p *Port) Parse(r *http.Request) (Identity, error) {
	raw, err := bearer(r)
	if err != nil {
		return Identity{}, err
	}

	if p.parse == nil {
		return Identity{}, perrs.Unauthorizedf("invalid bearer token")
	}

	id, err := p.parse(r.Context(), raw)
	if err != nil {
		if perrs.IsCode(err, perrs.ErrorCodeUnavailable) {
			return Identity{}, err
		}
		return Identity{}, perrs.Unauthorizedf("invalid bearer token")
	}
	if strings.TrimSpace(id.UserID) == "" {
		return Identity{}, perrs.Unauthorizedf("invalid bearer token")
	}
	return id, nil
}
