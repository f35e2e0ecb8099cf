package repository

import (
	"context"
	"time"

	"blip/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for link token persistence.
var (
	// ErrLinkTokenNotFound is returned when a link token is not found.
	ErrLinkTokenNotFound = errors.New("link token not found")
	// ErrActiveLinkTokenExists is returned when an identity already has an unconsumed token.
	ErrActiveLinkTokenExists = errors.New("identity already has an active link token")
)

// LinkTokenRepository defines the interface for link token database operations.
type LinkTokenRepository interface {
	Create(ctx context.Context, token *entity.LinkToken) error

	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.LinkToken, error)

	// ListByIdentity returns the most recent grants of an identity, newest first.
	ListByIdentity(ctx context.Context, identityID string, limit int) ([]*entity.LinkToken, error)

	// SupersedeActive consumes every unconsumed grant of the identity.
	SupersedeActive(ctx context.Context, identityID string, at time.Time) (int64, error)

	IncrementAttempts(ctx context.Context, id uuid.UUID) error

	// Consume marks an unconsumed grant consumed. It reports false when the grant
	// was consumed concurrently.
	Consume(ctx context.Context, id uuid.UUID, reason entity.ConsumeReason, by *uuid.UUID, at time.Time) (bool, error)

	// PurgeBefore deletes grants that expired or were consumed before cutoff.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
