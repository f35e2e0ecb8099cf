package impl

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentGrantLimit bounds how many past grants an OTP is compared against.
const recentGrantLimit = 10

var otpPattern = regexp.MustCompile(`^\d{6}$`)

type linkService struct {
	txManager repository.TransactionManager
	tokenRepo repository.LinkTokenRepository
	hasher    service.SecretHasher
	generator service.LinkSecretGenerator
	qrcode    service.QRCodeService
	messenger service.Messenger
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// LinkServiceParams holds dependencies for LinkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenRepo repository.LinkTokenRepository
	Hasher    service.SecretHasher
	Generator service.LinkSecretGenerator
	QRCode    service.QRCodeService
	Messenger service.Messenger
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLinkService creates a new link service instance
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	return &linkService{
		txManager: params.TxManager,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		generator: params.Generator,
		qrcode:    params.QRCode,
		messenger: params.Messenger,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Issue supersedes the identity's unconsumed grants and creates a fresh one in one transaction.
func (s *linkService) Issue(ctx context.Context, identityID string, role entity.Role) (*usecase.IssueOutput, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("role must be user or merchant")
	}

	otp, token, err := s.generator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate link secrets")
	}
	otpHash, err := s.hasher.Hash(otp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash otp")
	}

	now := s.now().UTC()
	grant := &entity.LinkToken{
		ID:         uuid.New(),
		IdentityID: identityID,
		Role:       role,
		OTPHash:    otpHash,
		TokenHash:  s.hasher.Digest(token),
		ExpiresAt:  now.Add(s.config.Link.TTL),
		CreatedAt:  now,
	}

	var superseded int64
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewIdentityRepository().FindByIDForUpdate(ctx, identityID); err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to lock identity")
		}

		tokens := factory.NewLinkTokenRepository()

		superseded, err = tokens.SupersedeActive(ctx, identityID, now)
		if err != nil {
			return errors.Wrap(err, "failed to supersede link tokens")
		}

		return errors.Wrap(tokens.Create(ctx, grant), "failed to create link token")
	})
	if err != nil {
		return nil, err
	}

	out := &usecase.IssueOutput{
		OTP:         otp,
		OpaqueToken: token,
		URL:         s.redeemURL(token),
		Role:        role,
		ExpiresAt:   grant.ExpiresAt,
	}
	if out.URL != "" {
		if out.QRCode, err = s.qrcode.Encode(out.URL); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to render link QR code", slog.Any("error", err))
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Link token issued",
		slog.String("identity_id", identityID),
		slog.String("role", role.String()),
		slog.Int64("superseded", superseded),
	)

	return out, nil
}

// redeemURL carries only the opaque token; the role is looked up server-side.
func (s *linkService) redeemURL(token string) string {
	if s.config.Link.BaseURL == "" {
		return ""
	}

	u, err := url.Parse(s.config.Link.BaseURL)
	if err != nil {
		return ""
	}
	query := u.Query()
	query.Set("token", token)
	u.RawQuery = query.Encode()

	return u.String()
}

func (s *linkService) RedeemByToken(ctx context.Context, token string, accountID uuid.UUID) (*usecase.LinkResult, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenNotFound
	}

	now := s.now().UTC()
	var (
		result   *usecase.LinkResult
		identity *entity.Identity
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		grant, err := factory.NewLinkTokenRepository().FindByTokenHash(ctx, s.hasher.Digest(token))
		if err != nil {
			if errors.Is(err, repository.ErrLinkTokenNotFound) {
				return domainerrors.ErrTokenNotFound
			}

			return errors.Wrap(err, "failed to find link token")
		}
		if err := checkGrant(grant, now); err != nil {
			return err
		}

		result, identity, err = s.link(ctx, factory, grant, accountID, now)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterLink(ctx, result, identity)

	return result, nil
}

// RedeemByOTP commits failed-attempt bookkeeping even when it returns an error.
func (s *linkService) RedeemByOTP(ctx context.Context, identityID, otp string, accountID uuid.UUID) (*usecase.LinkResult, error) {
	if !otpPattern.MatchString(otp) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("the code has 6 digits")
	}

	now := s.now().UTC()
	var (
		result    *usecase.LinkResult
		identity  *entity.Identity
		rejection error
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewIdentityRepository().FindByIDForUpdate(ctx, identityID); err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				rejection = domainerrors.ErrTokenNotFound

				return nil
			}

			return errors.Wrap(err, "failed to lock identity")
		}

		tokens := factory.NewLinkTokenRepository()
		grants, err := tokens.ListByIdentity(ctx, identityID, recentGrantLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list link tokens")
		}
		if len(grants) == 0 {
			rejection = domainerrors.ErrTokenNotFound

			return nil
		}

		active := activeGrant(grants)
		if active != nil && !active.IsExpired(now) && active.Attempts >= s.config.Link.MaxAttempts {
			if _, err := tokens.Consume(ctx, active.ID, entity.ConsumeBurned, nil, now); err != nil {
				return errors.Wrap(err, "failed to burn link token")
			}
			rejection = domainerrors.ErrAttemptsExceeded

			return nil
		}

		matched := s.matchOTP(grants, active, otp)
		if matched == nil {
			rejection, err = s.rejectOTP(ctx, tokens, grants, active, now)

			return err
		}

		if rejection = checkGrant(matched, now); rejection != nil {
			return nil
		}

		result, identity, err = s.link(ctx, factory, matched, accountID, now)

		return err
	})
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("OTP redemption rejected",
			slog.String("identity_id", identityID),
			slog.String("reason", rejection.Error()),
		)

		return nil, rejection
	}

	s.afterLink(ctx, result, identity)

	return result, nil
}

// matchOTP checks the active grant first, then older ones so a stale code
// reports why it no longer works.
func (s *linkService) matchOTP(grants []*entity.LinkToken, active *entity.LinkToken, otp string) *entity.LinkToken {
	if active != nil && s.hasher.Check(otp, active.OTPHash) {
		return active
	}
	for _, grant := range grants {
		if grant != active && s.hasher.Check(otp, grant.OTPHash) {
			return grant
		}
	}

	return nil
}

// rejectOTP records a miss against the active grant and picks the reason to report.
func (s *linkService) rejectOTP(ctx context.Context, tokens repository.LinkTokenRepository, grants []*entity.LinkToken, active *entity.LinkToken, now time.Time) (rejection, err error) {
	switch {
	case active == nil && grants[0].ConsumedReason == entity.ConsumeBurned:
		return domainerrors.ErrAttemptsExceeded, nil
	case active == nil:
		return domainerrors.ErrTokenNotFound, nil
	case active.IsExpired(now):
		return domainerrors.ErrTokenExpired, nil
	}

	if err := tokens.IncrementAttempts(ctx, active.ID); err != nil {
		return nil, errors.Wrap(err, "failed to count otp attempt")
	}
	remaining := s.config.Link.MaxAttempts - active.Attempts - 1

	return domainerrors.ErrInvalidOTP.WithDetails(strconv.Itoa(max(remaining, 0)) + " attempts left"), nil
}

func activeGrant(grants []*entity.LinkToken) *entity.LinkToken {
	for _, grant := range grants {
		if !grant.IsConsumed() {
			return grant
		}
	}

	return nil
}

// checkGrant applies the grant-side preconditions in order.
func checkGrant(grant *entity.LinkToken, now time.Time) error {
	if grant.IsConsumed() {
		if grant.ConsumedReason == entity.ConsumeBurned {
			return domainerrors.ErrAttemptsExceeded
		}

		return domainerrors.ErrTokenConsumed
	}
	if grant.IsExpired(now) {
		return domainerrors.ErrTokenExpired
	}

	return nil
}

// link applies the account-side preconditions and then binds and consumes
// with compare-and-swap updates inside the caller's transaction.
func (s *linkService) link(ctx context.Context, factory repository.RepositoryFactory, grant *entity.LinkToken, accountID uuid.UUID, now time.Time) (*usecase.LinkResult, *entity.Identity, error) {
	accounts := factory.NewAccountRepository()

	account, err := accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil, domainerrors.ErrAccountNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find account")
	}
	if account.IsLinked() {
		return nil, nil, domainerrors.ErrAccountAlreadyLinked
	}

	holder, err := accounts.FindByIdentityID(ctx, grant.IdentityID)
	switch {
	case err == nil && holder.ID != accountID:
		return nil, nil, domainerrors.ErrIdentityAlreadyLinked
	case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
		return nil, nil, errors.Wrap(err, "failed to find identity holder")
	}

	linked, err := accounts.LinkIdentity(ctx, accountID, grant.IdentityID, now)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityLinkedElsewhere) {
			return nil, nil, domainerrors.ErrIdentityAlreadyLinked
		}

		return nil, nil, errors.Wrap(err, "failed to link account")
	}
	if !linked {
		return nil, nil, domainerrors.ErrAccountAlreadyLinked
	}

	consumed, err := factory.NewLinkTokenRepository().Consume(ctx, grant.ID, entity.ConsumeRedeemed, &accountID, now)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to consume link token")
	}
	if !consumed {
		return nil, nil, domainerrors.ErrTokenConsumed
	}

	identity, err := factory.NewIdentityRepository().FindByID(ctx, grant.IdentityID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find linked identity")
	}

	ledger := factory.NewLedgerRepository()
	accountBalance, err := ledger.Balance(ctx, entity.AccountOwner(accountID))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read account balance")
	}
	identityBalance, err := ledger.Balance(ctx, entity.IdentityOwner(grant.IdentityID))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read identity balance")
	}

	return &usecase.LinkResult{
		AccountID:       accountID,
		IdentityID:      grant.IdentityID,
		Role:            grant.Role,
		AccountBalance:  accountBalance,
		IdentityBalance: identityBalance,
		CombinedBalance: accountBalance + identityBalance,
	}, identity, nil
}

// afterLink notifies the chat side and publishes the event; both are best effort.
func (s *linkService) afterLink(ctx context.Context, result *usecase.LinkResult, identity *entity.Identity) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Account linked",
		slog.String("account_id", result.AccountID.String()),
		slog.String("identity_id", result.IdentityID),
	)

	bot := entity.FlowAirdrop
	if result.Role == entity.RoleMerchant {
		bot = entity.FlowMerchant
	}
	if identity != nil && identity.ChatID != "" {
		view := service.View{Text: "Your chat is now linked to your web account. Combined balance: " +
			strconv.FormatInt(result.CombinedBalance, 10) + " points."}
		if _, err := s.messenger.Send(ctx, entity.ChatRef{Bot: bot, ChatID: identity.ChatID}, view); err != nil {
			logger.Warn("Failed to notify linked identity", slog.Any("error", err))
		}
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventAccountLinked,
		SubjectID:  result.IdentityID,
		Attributes: map[string]string{"account_id": result.AccountID.String(), "role": result.Role.String()},
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish link event", slog.Any("error", err))
	}
}

// PurgeExpired garbage-collects grants that can no longer be redeemed.
func (s *linkService) PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	purged, err := s.tokenRepo.PurgeBefore(ctx, olderThan.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge link tokens")
	}

	if purged > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Purged link tokens", slog.Int64("count", purged))
	}

	return purged, nil
}
