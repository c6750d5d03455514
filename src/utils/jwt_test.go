package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 7*24*time.Hour)

	t.Run("GenerateAndParse", func(t *testing.T) {
		token, err := issuer.GenerateJWT("abc123", "registrar")
		require.NoError(t, err)

		claims, err := issuer.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "abc123", claims.ID)
		assert.Equal(t, "registrar", claims.Username)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := NewTokenIssuer("other-secret", time.Hour).GenerateJWT("x", "y")
		require.NoError(t, err)

		_, err = issuer.ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		past := NewTokenIssuer("test-secret", time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateJWT("x", "y")
		require.NoError(t, err)

		_, err = issuer.ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("RejectsNonHMAC", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := issuer.ParseJWT("")
		assert.Error(t, err)
	})
}
