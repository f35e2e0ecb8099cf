package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	accountRepo repository.AccountRepository
	ledger      usecase.LedgerUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Ledger      usecase.LedgerUsecase
	Logger      *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		ledger:      params.Ledger,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *accountService) Ensure(ctx context.Context, accountID uuid.UUID, email string) (*entity.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if accountID == uuid.Nil || email == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("account id and email are required")
	}

	now := s.now().UTC()
	account, err := s.accountRepo.Ensure(ctx, &entity.Account{
		ID:        accountID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrAccountEmailTaken
		}

		return nil, errors.Wrap(err, "failed to ensure account")
	}

	return account, nil
}

// Progress sums both ledgers for display without merging them.
func (s *accountService) Progress(ctx context.Context, accountID uuid.UUID) (*usecase.AccountProgress, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	balance, err := s.ledger.Balance(ctx, entity.AccountOwner(accountID))
	if err != nil {
		return nil, err
	}

	progress := &usecase.AccountProgress{
		Account:         account,
		AccountBalance:  balance,
		CombinedBalance: balance,
	}

	if account.IsLinked() {
		identity, err := s.ledger.Progress(ctx, *account.IdentityID)
		if err != nil {
			return nil, err
		}
		progress.Identity = identity
		progress.CombinedBalance += identity.Balance
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Account progress read",
		slog.String("account_id", accountID.String()),
		slog.Int64("combined_balance", progress.CombinedBalance),
	)

	return progress, nil
}
