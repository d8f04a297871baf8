package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTSecretComesFromEnvOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "abc")
	assert.Equal(t, []byte("abc"), jwtSecret())

	// Không có secret mặc định khi biến môi trường rỗng
	t.Setenv("JWT_SECRET", "")
	assert.Empty(t, jwtSecret())
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, 60)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")

	_, err = ParseToken(token)
	assert.Error(t, err)
}
