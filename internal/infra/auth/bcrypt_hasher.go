// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"blip/config"
	"blip/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.SecretHasher. OTPs are short, so they get a
// salted bcrypt hash; opaque tokens are long and random, so a SHA-256 digest is
// enough and keeps them indexable.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.SecretHasher {
	cost := bcrypt.DefaultCost
	if cfg.Link != nil && cfg.Link.OTPCost >= bcrypt.MinCost {
		cost = cfg.Link.OTPCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the secret.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash secret")
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// Digest returns the hex SHA-256 of the secret.
func (h *bcryptHasher) Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return hex.EncodeToString(sum[:])
}
