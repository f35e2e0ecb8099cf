package auth

import (
	"testing"
	"time"

	"blip/config"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	token, err := svc.IssueToken(accountID, "a@example.com", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)

	parsed, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	svc := newTestJWTService(t)

	expired, err := svc.IssueToken(uuid.New(), "a@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenInvalid)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenInvalid)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenInvalid)
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	svc := newTestJWTService(t)
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrAuthTokenInvalid)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
