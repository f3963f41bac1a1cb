// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

// HasherConfig carries the bcrypt work factor.
type HasherConfig struct {
	Cost int
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from the auth section of the config.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasherCfg := HasherConfig{Cost: bcrypt.DefaultCost}
	if cfg != nil && cfg.Auth != nil {
		hasherCfg.Cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithConfig(hasherCfg)
}

// NewBcryptHasherWithConfig returns a hasher with an explicit cost. Costs
// outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithConfig(cfg HasherConfig) service.PasswordHasher {
	cost := cfg.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// CompareHashAndPassword compares in constant time.
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
