package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"

	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	referralPrefixMaxLen = 12
	referralSuffixLen    = 6
	referralCodeRetries  = 3
	referralAlphabet     = "abcdefghjkmnpqrstuvwxyz23456789"
)

type identityService struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
	newCode      func(handle string) string
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Logger       *slog.Logger
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		identityRepo: params.IdentityRepo,
		logger:       params.Logger,
		newCode:      newReferralCode,
	}
}

// Ensure upserts the identity, retrying with a new referral code on collision.
func (s *identityService) Ensure(ctx context.Context, input usecase.EnsureIdentityInput) (*entity.Identity, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("identity id is required")
	}

	handle := strings.TrimPrefix(strings.TrimSpace(input.Handle), "@")

	var lastErr error
	for range referralCodeRetries {
		identity, err := s.identityRepo.Ensure(ctx, &entity.Identity{
			ID:           input.ID,
			Handle:       handle,
			ChatID:       input.ChatID,
			ReferralCode: s.newCode(handle),
		})
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, repository.ErrDuplicateReferralCode) {
			return nil, errors.Wrap(err, "failed to ensure identity")
		}

		lastErr = err
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Referral code collision, retrying",
			slog.String("identity_id", input.ID),
		)
	}

	return nil, errors.Wrap(lastErr, "failed to allocate referral code")
}

// newReferralCode is the slugged handle plus a short random suffix, e.g. "alice-k3m9xq".
func newReferralCode(handle string) string {
	prefix := slug.Make(handle)
	if len(prefix) > referralPrefixMaxLen {
		prefix = strings.TrimRight(prefix[:referralPrefixMaxLen], "-")
	}
	if prefix == "" {
		prefix = "ref"
	}

	return prefix + "-" + randomSuffix(referralSuffixLen)
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
	}

	for i, b := range buf {
		buf[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}

	return string(buf)
}
