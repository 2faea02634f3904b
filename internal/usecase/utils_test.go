package usecase_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shri210404/pmsnew-sub000/internal/usecase"
)

func TestGenerateTokenSecret(t *testing.T) {
	t.Run("hex output is twice the byte length", func(t *testing.T) {
		secret, err := usecase.GenerateTokenSecret(32)
		require.NoError(t, err)
		assert.Len(t, secret, 64)

		decoded, err := hex.DecodeString(secret)
		require.NoError(t, err)
		assert.Len(t, decoded, 32)
	})

	t.Run("non-positive length falls back to the default", func(t *testing.T) {
		secret, err := usecase.GenerateTokenSecret(0)
		require.NoError(t, err)
		assert.Len(t, secret, 64)
	})

	t.Run("secrets do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			secret, err := usecase.GenerateTokenSecret(16)
			require.NoError(t, err)
			assert.False(t, seen[secret])
			seen[secret] = true
		}
	})
}

func TestHashPassword(t *testing.T) {
	hashed, salt, err := usecase.HashPassword("my password", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, "my password", hashed)

	t.Run("round trip verifies", func(t *testing.T) {
		assert.NoError(t, usecase.VerifyPassword(hashed, "my password", salt))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		assert.Error(t, usecase.VerifyPassword(hashed, "other password", salt))
	})

	t.Run("wrong salt fails", func(t *testing.T) {
		_, otherSalt, err := usecase.HashPassword("my password", 4)
		require.NoError(t, err)
		assert.Error(t, usecase.VerifyPassword(hashed, "my password", otherSalt))
	})

	t.Run("same password hashes differently per user", func(t *testing.T) {
		again, againSalt, err := usecase.HashPassword("my password", 4)
		require.NoError(t, err)
		assert.NotEqual(t, hashed, again)
		assert.NotEqual(t, salt, againSalt)
	})
}

func TestNewEntityID(t *testing.T) {
	id, err := usecase.NewEntityID()
	require.NoError(t, err)
	assert.Len(t, id, 12)

	other, err := usecase.NewEntityID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
