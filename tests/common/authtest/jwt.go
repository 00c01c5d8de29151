//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"zavvi-web/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// GenerateToken mints a session token for userID that expires ttl after now.
func GenerateToken(t *testing.T, userID string, now time.Time, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.Sign(testSecret, jwt.NewClaims(userID, now, now.Add(ttl)))
	require.NoError(t, err)
	return token
}

// CreateExpiredToken mints a token whose exp is already behind now.
func CreateExpiredToken(t *testing.T, userID string, now time.Time) string {
	t.Helper()
	return GenerateToken(t, userID, now.Add(-2*time.Hour), time.Hour)
}
