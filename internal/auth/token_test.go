package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, expiresAt, err := tm.GenerateToken("admin-1", "Admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "Admin", claims.Name)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 30).GenerateToken("admin-1", "Admin")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 30).ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := NewTokenManager("secret", 30).ParseToken("not-a-token")
	require.Error(t, err)
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)

	require.NoError(t, ComparePassword(hash, "hunter2"))
	require.Error(t, ComparePassword(hash, "wrong"))
}
