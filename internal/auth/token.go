package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenProvider yields the bearer credential for outgoing API calls.
// ok is false when no usable credential is available, in which case callers
// skip authenticated operations client-side instead of attempting them.
type TokenProvider interface {
	Token() (token string, ok bool)
}

// StaticProvider serves a fixed token, typically sourced from configuration.
// If the token parses as a JWT with an elapsed exp claim it is reported as
// absent; tokens that do not parse are passed through opaque.
type StaticProvider struct {
	token string
	now   func() time.Time
}

// NewStaticProvider creates a provider around the given token. An empty token
// means no credential.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token, now: time.Now}
}

// Token implements TokenProvider.
func (p *StaticProvider) Token() (string, bool) {
	if p.token == "" {
		return "", false
	}
	if expired(p.token, p.now()) {
		return "", false
	}
	return p.token, true
}

// expired reports whether tok is a parseable JWT whose exp claim has passed.
// Unparseable tokens and tokens without exp are treated as not expired: the
// credential is opaque and the server has the final word.
func expired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// NoCredential is a TokenProvider that never yields a token.
type NoCredential struct{}

// Token implements TokenProvider.
func (NoCredential) Token() (string, bool) { return "", false }
