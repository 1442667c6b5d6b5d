package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("64f1c0ffee0000000000abcd", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", userID)
	assert.Equal(t, "user", role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateRefreshToken("64f1c0ffee0000000000abcd", "admin")
	require.NoError(t, err)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", userID)
	assert.Equal(t, "admin", role)
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = ParseToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateAccessToken("64f1c0ffee0000000000abcd", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMissingUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := signToken("", "user", AccessTokenTTL)
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := signToken("64f1c0ffee0000000000abcd", "user", -AccessTokenTTL)
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
