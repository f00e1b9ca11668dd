// Package authjwt verifies HS256 bearer tokens and names the caller they carry
package authjwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"moodlog/internal/modkit/httpkit"
	"moodlog/internal/platform/config"
	perr "moodlog/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token body we accept
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Options configures a Verifier
type Options struct {
	Secret   []byte
	Issuer   string // optional, enforced when set
	Audience string // optional, enforced when set
	Leeway   time.Duration
}

// FromConfig reads AUTH_JWT_* style keys from the scoped conf
func FromConfig(c config.Conf) Options {
	return Options{
		Secret:   []byte(c.MustString("SECRET")),
		Issuer:   c.MayString("ISSUER", ""),
		Audience: c.MayString("AUDIENCE", ""),
		Leeway:   c.MayDuration("LEEWAY", 30*time.Second),
	}
}

// Verifier checks signature, algorithm and time claims
type Verifier struct {
	opt    Options
	parser *jwt.Parser
}

// New constructs a Verifier; an empty secret is a programmer error
func New(opt Options) *Verifier {
	if len(opt.Secret) == 0 {
		panic("authjwt: empty secret")
	}
	popts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(opt.Leeway),
	}
	if opt.Issuer != "" {
		popts = append(popts, jwt.WithIssuer(opt.Issuer))
	}
	if opt.Audience != "" {
		popts = append(popts, jwt.WithAudience(opt.Audience))
	}
	return &Verifier{opt: opt, parser: jwt.NewParser(popts...)}
}

// Verify returns the identity named by a valid token
// every rejection is Unauthorized; the reason stays in the wrapped cause
func (v *Verifier) Verify(_ context.Context, raw string) (httpkit.Identity, error) {
	var c Claims
	tok, err := v.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) { return v.opt.Secret, nil })
	if err != nil {
		return httpkit.Identity{}, perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid bearer token")
	}
	if !tok.Valid {
		return httpkit.Identity{}, perr.Unauthorizedf("invalid bearer token")
	}
	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return httpkit.Identity{}, perr.Wrap(errors.New("missing sub claim"), perr.ErrorCodeUnauthorized, "invalid bearer token")
	}
	return httpkit.Identity{UserID: sub, Email: strings.TrimSpace(c.Email)}, nil
}

// Sign mints a token for subject; used by tests and local tooling
func (v *Verifier) Sign(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.opt.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.opt.Audience != "" {
		c.Audience = jwt.ClaimStrings{v.opt.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.opt.Secret)
}

// TokenFunc adapts the verifier to httpkit's bearer port
func (v *Verifier) TokenFunc() httpkit.TokenFunc { return v.Verify }
