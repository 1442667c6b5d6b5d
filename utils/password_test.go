package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateRandomToken(t *testing.T) {
	token := GenerateRandomToken(32)
	assert.Len(t, token, 32)
	for _, r := range token {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected rune %q", r)
	}

	assert.NotEqual(t, token, GenerateRandomToken(32))
	assert.Empty(t, GenerateRandomToken(0))
}
