package httpkit

import (
	"net/http"
	"strings"

	perrs "moodlog/internal/platform/errors"
	pnet "moodlog/internal/platform/net"
)

// User returns the caller resolved by the Auth middleware
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// bearer extracts the token from "Authorization: Bearer <token>"
// the scheme is case insensitive
func bearer(r *http.Request) (string, error) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	tok = strings.TrimSpace(tok)
	if !ok || !strings.EqualFold(scheme, "bearer") || tok == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return tok, nil
}
