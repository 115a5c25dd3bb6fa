package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("bcrypt hash", func(t *testing.T) {
		hash, err := Hash("s3cret!")
		require.NoError(t, err)
		require.True(t, IsHashed(hash))
		require.True(t, Verify("s3cret!", hash))
		require.False(t, Verify("wrong", hash))
	})

	t.Run("legacy plaintext", func(t *testing.T) {
		require.False(t, IsHashed("123456"))
		require.True(t, Verify("123456", "123456"))
		require.False(t, Verify("1234567", "123456"))
	})
}

func TestValidatePassword(t *testing.T) {
	require.False(t, ValidatePassword("12345"))
	require.True(t, ValidatePassword("123456"))
}
