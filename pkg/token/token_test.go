package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssue(t *testing.T) {
	t.Run("signed token carries the claim", func(t *testing.T) {
		signed, err := Issue("user-1", "admin", testSecret)
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := Verify(signed, testSecret)
		require.NoError(t, err)

		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
		assert.WithinDuration(t, claims.IssuedAt.Add(Lifetime), claims.ExpiresAt, time.Second)
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		_, err := Issue("user-1", "cashier", "")
		assert.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		signed, err := Issue("user-1", "cashier", testSecret)
		require.NoError(t, err)

		_, err = Verify(signed, "other-secret")
		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := Verify("not.a.token", testSecret)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "user-1",
			"role": "cashier",
			"iat":  past.Add(-Lifetime).Unix(),
			"exp":  past.Unix(),
		})
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = Verify(signed, testSecret)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("non-HMAC algorithm is rejected", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = Verify(signed, testSecret)
		assert.Error(t, err)
	})
}
