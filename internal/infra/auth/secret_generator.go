package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"blip/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	otpDigits        = 6
	opaqueTokenBytes = 32
)

var otpUpperBound = big.NewInt(1_000_000)

type secretGenerator struct{}

// NewSecretGenerator returns a crypto/rand backed link secret generator.
func NewSecretGenerator() service.LinkSecretGenerator {
	return &secretGenerator{}
}

// Generate returns a zero-padded 6-digit OTP and a 256-bit URL-safe token.
func (g *secretGenerator) Generate() (string, string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate otp")
	}

	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate token")
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), base64.RawURLEncoding.EncodeToString(buf), nil
}
