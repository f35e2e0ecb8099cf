// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher hashes short-lived link secrets.
type SecretHasher interface {
	// Hash generates a salted, slow hash for a low-entropy secret such as an OTP.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a hash produced by Hash.
	Check(secret, hash string) bool

	// Digest returns a deterministic lookup digest for a high-entropy secret.
	Digest(secret string) string
}

// LinkSecretGenerator produces the two secrets of a link grant.
type LinkSecretGenerator interface {
	// Generate returns a 6-digit OTP and an opaque URL-safe token.
	Generate() (otp string, token string, err error)
}
