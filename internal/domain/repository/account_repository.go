package repository

import (
	"context"
	"time"

	"blip/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email belongs to another account.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrIdentityLinkedElsewhere is returned when the identity is bound to a different account.
	ErrIdentityLinkedElsewhere = errors.New("identity linked to another account")
)

// AccountRepository defines the interface for web account database operations.
type AccountRepository interface {
	// Ensure creates the account on first sight and refreshes its email afterwards.
	Ensure(ctx context.Context, account *entity.Account) (*entity.Account, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	FindByIdentityID(ctx context.Context, identityID string) (*entity.Account, error)

	// LinkIdentity binds an unlinked account to an identity. It reports false when the
	// account is already linked and returns ErrIdentityLinkedElsewhere on a unique violation.
	LinkIdentity(ctx context.Context, accountID uuid.UUID, identityID string, at time.Time) (bool, error)
}
