package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carebridge/hcms-server/internal/auth"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("s3cret-pw", hash))
	assert.False(t, auth.VerifyPassword("wrong-pw", hash))
	assert.False(t, auth.VerifyPassword("", hash))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, auth.VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, auth.VerifyPassword("anything", ""))
}

func TestTruncationAt72Bytes(t *testing.T) {
	prefix := strings.Repeat("a", auth.MaxPasswordBytes)

	hash, err := auth.HashPassword(prefix+"tail-one", bcrypt.MinCost)
	require.NoError(t, err)

	// Passwords agreeing on their first 72 bytes are interchangeable.
	assert.True(t, auth.VerifyPassword(prefix, hash))
	assert.True(t, auth.VerifyPassword(prefix+"tail-two", hash))

	// A difference inside the first 72 bytes still matters.
	assert.False(t, auth.VerifyPassword(strings.Repeat("b", auth.MaxPasswordBytes), hash))
}

func TestLongPasswordDoesNotError(t *testing.T) {
	// Go's bcrypt rejects inputs over 72 bytes; the truncation policy is
	// what keeps long passwords hashable at all.
	hash, err := auth.HashPassword(strings.Repeat("x", 500), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(strings.Repeat("x", 500), hash))
}
