package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStaticProvider_EmptyToken(t *testing.T) {
	p := NewStaticProvider("")

	_, ok := p.Token()
	assert.False(t, ok)
}

func TestStaticProvider_OpaqueToken(t *testing.T) {
	p := NewStaticProvider("not-a-jwt-at-all")

	tok, ok := p.Token()
	assert.True(t, ok)
	assert.Equal(t, "not-a-jwt-at-all", tok)
}

func TestStaticProvider_ValidJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(time.Hour))
	p := NewStaticProvider(raw)

	tok, ok := p.Token()
	assert.True(t, ok)
	assert.Equal(t, raw, tok)
}

func TestStaticProvider_ExpiredJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(-time.Hour))
	p := NewStaticProvider(raw)

	_, ok := p.Token()
	assert.False(t, ok)
}

func TestStaticProvider_JWTWithoutExp(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	p := NewStaticProvider(raw)
	_, ok := p.Token()
	assert.True(t, ok)
}

func TestNoCredential(t *testing.T) {
	_, ok := NoCredential{}.Token()
	assert.False(t, ok)
}
