package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	iat := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	exp := iat.Add(time.Hour)

	c, err := ParseClaims(signed(t, jwt.MapClaims{
		"sub":   "u-1",
		"email": "a@b.com",
		"iat":   iat.Unix(),
		"exp":   exp.Unix(),
	}))
	require.NoError(t, err)

	assert.Equal(t, "u-1", c.Subject)
	assert.Equal(t, "a@b.com", c.Email)
	assert.True(t, iat.Equal(c.IssuedAt))
	assert.True(t, exp.Equal(c.ExpiresAt))

	assert.False(t, c.Expired(iat))
	assert.True(t, c.Expired(exp))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestParseClaims_NoExpiry(t *testing.T) {
	c, err := ParseClaims(signed(t, jwt.MapClaims{"sub": "u-1"}))
	require.NoError(t, err)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.False(t, c.Expired(time.Now()))
}

func TestParseClaims_Opaque(t *testing.T) {
	for _, token := range []string{"abc", "", "a.b.c"} {
		_, err := ParseClaims(token)
		assert.ErrorIs(t, err, ErrNotJWT, token)
	}
}
