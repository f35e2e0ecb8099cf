package usecase

import (
	"context"

	"blip/internal/domain/entity"

	"github.com/google/uuid"
)

// EnsureIdentityInput carries what a chat update tells us about its sender.
type EnsureIdentityInput struct {
	ID     string
	Handle string
	ChatID string
}

// IdentityUsecase manages chat identities.
type IdentityUsecase interface {
	// Ensure creates the identity on first interaction and refreshes its handle.
	Ensure(ctx context.Context, input EnsureIdentityInput) (*entity.Identity, error)
}

// AccountProgress is the web-side view of an account's points.
type AccountProgress struct {
	Account        *entity.Account
	AccountBalance int64
	// Identity is nil until the account is linked.
	Identity *IdentityProgress
	// CombinedBalance is a display sum; the ledgers stay separate.
	CombinedBalance int64
}

// AccountUsecase manages web accounts.
type AccountUsecase interface {
	// Ensure records the account named by a verified web token.
	Ensure(ctx context.Context, accountID uuid.UUID, email string) (*entity.Account, error)

	Progress(ctx context.Context, accountID uuid.UUID) (*AccountProgress, error)
}
