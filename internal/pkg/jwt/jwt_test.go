package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	token, expiresAt, err := GenerateAccessToken("u-1", "admin", "admin", "secret", 15)
	require.NoError(t, err)
	require.False(t, expiresAt.IsZero())

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ValidateAccessToken(token, "other")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		expired, _, err := GenerateAccessToken("u-1", "admin", "admin", "secret", -5)
		require.NoError(t, err)

		_, err = ValidateAccessToken(expired, "secret")
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateAccessToken("not-a-token", "secret")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}
