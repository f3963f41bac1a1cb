package auth

import (
	"strings"
	"testing"

	"catalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFastHasher() *bcryptHasher {
	return NewBcryptHasherWithConfig(HasherConfig{Cost: bcrypt.MinCost}).(*bcryptHasher)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := newFastHasher()

	passwords := []string{
		"StrongPass123!",
		"with:colon:inside",
		"Pässphräse",
		" ",
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Check(password, hash), "round trip for %q", password)
	}
}

func TestBcryptHasher_SaltIsRandom(t *testing.T) {
	hasher := newFastHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newFastHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("StrongPass123?", hash))
	assert.False(t, hasher.Check("StrongPass123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := newFastHasher()

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestNewBcryptHasherWithConfig_OutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{0, 1, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasherWithConfig(HasherConfig{Cost: cost}).(*bcryptHasher)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	}

	hasher := NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
