package auth

import (
	"testing"

	"blip/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{Link: &config.LinkConfig{OTPCost: bcrypt.MinCost}}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, hasher.Check("123456", hash))
	assert.False(t, hasher.Check("654321", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Link: &config.LinkConfig{OTPCost: 1}}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_DigestIsDeterministic(t *testing.T) {
	hasher := newTestHasher()

	assert.Equal(t, hasher.Digest("token"), hasher.Digest("token"))
	assert.NotEqual(t, hasher.Digest("token"), hasher.Digest("other"))
	assert.Len(t, hasher.Digest("token"), 64)
}
