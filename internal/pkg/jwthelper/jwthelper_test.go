package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	signingKey := []byte("test-signing-key")

	t.Run("round trips the claims", func(t *testing.T) {
		pair, err := GenerateTokenPair(signingKey, 7, "organizer1")
		require.NoError(t, err)

		claims, err := ParseToken(signingKey, pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "organizer1", claims.Username)

		claims, err = ParseToken(signingKey, pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
	})

	t.Run("every pair is unique", func(t *testing.T) {
		first, err := GenerateTokenPair(signingKey, 7, "organizer1")
		require.NoError(t, err)

		second, err := GenerateTokenPair(signingKey, 7, "organizer1")
		require.NoError(t, err)

		assert.NotEqual(t, first.AccessToken, second.AccessToken)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	})

	t.Run("access and refresh tokens differ", func(t *testing.T) {
		pair, err := GenerateTokenPair(signingKey, 7, "organizer1")
		require.NoError(t, err)

		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	})
}

func TestParseToken(t *testing.T) {
	t.Run("rejects a token signed with another key", func(t *testing.T) {
		pair, err := GenerateTokenPair([]byte("key-one"), 7, "organizer1")
		require.NoError(t, err)

		_, err = ParseToken([]byte("key-two"), pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseToken([]byte("test-signing-key"), "not.a.token")
		assert.Error(t, err)
	})
}
