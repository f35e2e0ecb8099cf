package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type onboardingService struct {
	txManager  repository.TransactionManager
	ledger     usecase.LedgerUsecase
	moderation usecase.ModerationUsecase
	publisher  service.EventPublisher
	config     *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Ledger     usecase.LedgerUsecase
	Moderation usecase.ModerationUsecase
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOnboardingService creates the completer that persists finished flows.
func NewOnboardingService(params OnboardingServiceParams) usecase.FlowCompleter {
	return &onboardingService{
		txManager:  params.TxManager,
		ledger:     params.Ledger,
		moderation: params.Moderation,
		publisher:  params.Publisher,
		config:     params.Config,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *onboardingService) Complete(ctx context.Context, kind entity.FlowKind, identityID string, answers map[string]string, referralCode string) (*usecase.CompletionResult, error) {
	switch kind {
	case entity.FlowMerchant:
		return s.submitApplication(ctx, identityID, answers)
	case entity.FlowAirdrop:
		return s.register(ctx, identityID, answers, referralCode)
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown flow")
	}
}

// persist locks the identity, merges the answers into its profile and applies
// mark under the same transaction. It returns ErrDuplicateSubmission when the
// flow was already completed.
func (s *onboardingService) persist(
	ctx context.Context,
	factory repository.RepositoryFactory,
	kind entity.FlowKind,
	identityID string,
	answers map[string]string,
	mark func(repository.IdentityRepository, map[string]string) (bool, error),
) (*entity.Identity, error) {
	identities := factory.NewIdentityRepository()

	current, err := identities.FindByIDForUpdate(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to lock identity")
	}
	if current.HasCompleted(kind) {
		return nil, domainerrors.ErrDuplicateSubmission
	}

	profile := make(map[string]string, len(current.Profile)+len(answers))
	maps.Copy(profile, current.Profile)
	maps.Copy(profile, answers)

	changed, err := mark(identities, profile)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domainerrors.ErrDuplicateSubmission
	}

	identity, err := identities.FindByID(ctx, identityID)

	return identity, errors.Wrap(err, "failed to reload identity")
}

func (s *onboardingService) submitApplication(ctx context.Context, identityID string, answers map[string]string) (*usecase.CompletionResult, error) {
	now := s.now().UTC()
	var identity *entity.Identity

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		identity, err = s.persist(ctx, factory, entity.FlowMerchant, identityID, answers,
			func(repo repository.IdentityRepository, profile map[string]string) (bool, error) {
				return repo.MarkSubmitted(ctx, identityID, profile, now)
			})

		return err
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Merchant application submitted", slog.String("identity_id", identityID))

	if err := s.moderation.Enqueue(ctx, identity); err != nil {
		logger.Error("Failed to enqueue application", slog.String("identity_id", identityID), slog.Any("error", err))
	}
	s.publish(ctx, constants.EventIdentitySubmitted, identity, now)

	return &usecase.CompletionResult{Identity: identity}, nil
}

// register records the airdrop registration and its bonus atomically. The
// referral is credited afterwards in its own transaction so a bad code never
// undoes the registration.
func (s *onboardingService) register(ctx context.Context, identityID string, answers map[string]string, referralCode string) (*usecase.CompletionResult, error) {
	now := s.now().UTC()
	bonus := s.config.Rewards.Registration
	result := &usecase.CompletionResult{}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := s.persist(ctx, factory, entity.FlowAirdrop, identityID, answers,
			func(repo repository.IdentityRepository, profile map[string]string) (bool, error) {
				return repo.MarkRegistered(ctx, identityID, profile, now)
			})
		if err != nil {
			return err
		}
		result.Identity = identity

		if bonus <= 0 {
			return nil
		}

		credited, err := appendAward(ctx, factory.NewLedgerRepository(), usecase.AwardInput{
			Owner:  entity.IdentityOwner(identityID),
			Kind:   entity.EventRegistrationBonus,
			Amount: bonus,
		}, now)
		if credited {
			result.Awarded = bonus
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Airdrop registration completed", slog.String("identity_id", identityID))

	if referralCode != "" {
		referral, err := s.ledger.CreditReferral(ctx, identityID, referralCode)
		if err != nil {
			logger.Warn("Referral not credited",
				slog.String("identity_id", identityID),
				slog.String("code", referralCode),
				slog.Any("error", err),
			)
		}
		result.Referral = referral
	}
	s.publish(ctx, constants.EventIdentityRegistered, result.Identity, now)

	return result, nil
}

func (s *onboardingService) publish(ctx context.Context, eventType string, identity *entity.Identity, at time.Time) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SubjectID:  identity.ID,
		Attributes: map[string]string{"handle": identity.Handle},
		OccurredAt: at,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
