package repository

import (
	"context"

	"blip/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for referral persistence.
var (
	// ErrReferralExists is returned when the referred identity already has a referral edge.
	ErrReferralExists = errors.New("referral already exists")
	// ErrReferralNotFound is returned when an identity was never referred.
	ErrReferralNotFound = errors.New("referral not found")
)

// LedgerRepository defines the append-only ledger operations.
type LedgerRepository interface {
	// Append inserts the entry unless an entry with the same owner, kind and dedupe key
	// exists. It reports whether a row was written.
	Append(ctx context.Context, entry *entity.LedgerEntry) (bool, error)

	Balance(ctx context.Context, owner entity.Owner) (int64, error)

	// ListByOwner returns the latest entries of an owner, newest first.
	ListByOwner(ctx context.Context, owner entity.Owner, limit int) ([]*entity.LedgerEntry, error)
}

// ReferralRepository defines referral edge operations.
type ReferralRepository interface {
	// Create stores the edge; ErrReferralExists when the referred identity already has one.
	Create(ctx context.Context, edge *entity.ReferralEdge) error

	FindByReferred(ctx context.Context, referredID string) (*entity.ReferralEdge, error)

	CountByReferrer(ctx context.Context, referrerID string) (int64, error)
}
