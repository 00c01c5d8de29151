//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"zavvi-web/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	sign := func(t *testing.T, exp time.Time) string {
		t.Helper()
		token, err := jwt.Sign("secret", jwt.NewClaims("u1", now.Add(-time.Hour), exp))
		require.NoError(t, err)
		return token
	}

	t.Run("future exp is valid", func(t *testing.T) {
		assert.NoError(t, jwt.CheckExpiry(sign(t, now.Add(time.Minute)), now))
	})

	t.Run("past exp is expired", func(t *testing.T) {
		err := jwt.CheckExpiry(sign(t, now.Add(-time.Second)), now)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("exp equal to now is expired", func(t *testing.T) {
		err := jwt.CheckExpiry(sign(t, now), now)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("malformed token fails closed", func(t *testing.T) {
		for _, token := range []string{"", "abc", "a.b.c", "a.%%%.c"} {
			err := jwt.CheckExpiry(token, now)
			assert.ErrorIs(t, err, jwt.ErrExpiredToken, token)
		}
	})

	t.Run("token without exp fails closed", func(t *testing.T) {
		token, err := jwt.Sign("secret", jwt.Claims{UserID: "u1"})
		require.NoError(t, err)
		err = jwt.CheckExpiry(token, now)
		assert.ErrorIs(t, err, jwt.ErrMissingExp)
	})

	t.Run("signature is not verified", func(t *testing.T) {
		token, err := jwt.Sign("some-other-secret", jwt.NewClaims("u1", now, now.Add(time.Hour)))
		require.NoError(t, err)
		claims, err := jwt.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})
}
