package impl

import (
	"context"
	"log/slog"
	"time"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const progressEntryLimit = 20

type ledgerService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	ledgerRepo   repository.LedgerRepository
	referralRepo repository.ReferralRepository
	verifier     service.TaskVerifier
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	LedgerRepo   repository.LedgerRepository
	ReferralRepo repository.ReferralRepository
	Verifier     service.TaskVerifier `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		ledgerRepo:   params.LedgerRepo,
		referralRepo: params.ReferralRepo,
		verifier:     params.Verifier,
		config:       params.Config,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// appendAward validates and writes one ledger entry through repo, which may be
// bound to a surrounding transaction.
func appendAward(ctx context.Context, repo repository.LedgerRepository, input usecase.AwardInput, at time.Time) (bool, error) {
	if !input.Owner.IsValid() || !input.Kind.IsValid() || input.Amount <= 0 {
		return false, domainerrors.ErrInvalidAward
	}
	if input.Kind.RequiresReference() && input.Reference == "" {
		return false, domainerrors.ErrInvalidAward.WithDetails("reference is required for " + string(input.Kind))
	}

	credited, err := repo.Append(ctx, &entity.LedgerEntry{
		ID:        uuid.New(),
		Owner:     input.Owner,
		Kind:      input.Kind,
		Amount:    input.Amount,
		DedupeKey: input.Kind.DedupeKey(input.Reference),
		Reference: input.Reference,
		CreatedAt: at.UTC(),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to append ledger entry")
	}

	return credited, nil
}

// Award credits points; one-time kinds are deduplicated by the ledger's unique index.
func (s *ledgerService) Award(ctx context.Context, input usecase.AwardInput) (bool, error) {
	credited, err := appendAward(ctx, s.ledgerRepo, input, s.now())
	if err != nil {
		return false, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Ledger award",
		slog.String("owner", input.Owner.String()),
		slog.String("kind", string(input.Kind)),
		slog.Int64("amount", input.Amount),
		slog.Bool("credited", credited),
	)

	return credited, nil
}

// CreditReferral resolves the code, records the edge and credits both sides in one transaction.
func (s *ledgerService) CreditReferral(ctx context.Context, referredID, code string) (*usecase.ReferralOutcome, error) {
	if code == "" || referredID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("referral code is required")
	}

	now := s.now().UTC()
	rewards := s.config.Rewards
	outcome := &usecase.ReferralOutcome{}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identities := factory.NewIdentityRepository()
		ledger := factory.NewLedgerRepository()

		referrer, err := identities.FindByReferralCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrReferralCodeNotFound
			}

			return errors.Wrap(err, "failed to resolve referral code")
		}
		if referrer.ID == referredID {
			return domainerrors.ErrSelfReferral
		}
		if _, err := identities.FindByID(ctx, referredID); err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to find referred identity")
		}

		referrals := factory.NewReferralRepository()
		if _, err := referrals.FindByReferred(ctx, referredID); err == nil {
			return domainerrors.ErrAlreadyReferred
		} else if !errors.Is(err, repository.ErrReferralNotFound) {
			return errors.Wrap(err, "failed to check existing referral")
		}

		edge := &entity.ReferralEdge{
			ID:         uuid.New(),
			ReferrerID: referrer.ID,
			ReferredID: referredID,
			Code:       code,
			Amount:     rewards.Referrer,
			CreatedAt:  now,
		}
		if err := referrals.Create(ctx, edge); err != nil {
			if errors.Is(err, repository.ErrReferralExists) {
				return domainerrors.ErrAlreadyReferred
			}

			return errors.Wrap(err, "failed to create referral edge")
		}
		outcome.Edge = edge

		if rewards.Referrer > 0 {
			outcome.ReferrerCredited, err = appendAward(ctx, ledger, usecase.AwardInput{
				Owner:     entity.IdentityOwner(referrer.ID),
				Kind:      entity.EventReferralReferrer,
				Amount:    rewards.Referrer,
				Reference: referredID,
			}, now)
			if err != nil {
				return err
			}
		}
		if rewards.Referred > 0 {
			outcome.ReferredCredited, err = appendAward(ctx, ledger, usecase.AwardInput{
				Owner:     entity.IdentityOwner(referredID),
				Kind:      entity.EventReferralReferred,
				Amount:    rewards.Referred,
				Reference: referrer.ID,
			}, now)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Referral credited",
		slog.String("referrer_id", outcome.Edge.ReferrerID),
		slog.String("referred_id", referredID),
	)

	return outcome, nil
}

// CompleteTask verifies the task according to the configured policy and credits it once.
func (s *ledgerService) CompleteTask(ctx context.Context, owner entity.Owner, taskID string) (*usecase.TaskOutcome, error) {
	task, ok := s.config.Task(taskID)
	if !ok {
		return nil, domainerrors.ErrTaskNotFound
	}

	if task.Verify {
		if err := s.verify(ctx, owner, taskID); err != nil {
			return nil, err
		}
	}

	credited, err := s.Award(ctx, usecase.AwardInput{
		Owner:     owner,
		Kind:      entity.EventTaskCompletion,
		Amount:    task.Points,
		Reference: task.ID,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.TaskOutcome{TaskID: task.ID, Points: task.Points, Credited: credited}, nil
}

func (s *ledgerService) verify(ctx context.Context, owner entity.Owner, taskID string) error {
	if s.verifier == nil {
		if s.config.Verification.Policy == config.VerificationPolicyTrustOnMissing {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("No task verifier configured, accepting on trust",
				slog.String("task_id", taskID),
				slog.String("owner", owner.String()),
			)

			return nil
		}

		return domainerrors.ErrVerificationUnavailable
	}

	done, err := s.verifier.Verify(ctx, owner, taskID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Task verification failed",
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)

		return domainerrors.ErrVerificationUnavailable.WrapMessage(err.Error())
	}
	if !done {
		return domainerrors.ErrVerificationFailed
	}

	return nil
}

func (s *ledgerService) Balance(ctx context.Context, owner entity.Owner) (int64, error) {
	balance, err := s.ledgerRepo.Balance(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read balance")
	}

	return balance, nil
}

// Progress reads an identity's balance, recent entries, referral count and tier.
func (s *ledgerService) Progress(ctx context.Context, identityID string) (*usecase.IdentityProgress, error) {
	identity, err := s.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	owner := entity.IdentityOwner(identityID)

	balance, err := s.Balance(ctx, owner)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListByOwner(ctx, owner, progressEntryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	referrals, err := s.referralRepo.CountByReferrer(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count referrals")
	}

	progress := &usecase.IdentityProgress{
		Identity:  identity,
		Balance:   balance,
		Entries:   entries,
		Referrals: referrals,
	}
	if tier, ok := identity.Tier(); ok {
		progress.Tier = &tier
	}

	return progress, nil
}
