// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"blip/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when an identity is not found.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrDuplicateReferralCode is returned when a generated referral code collides.
	ErrDuplicateReferralCode = errors.New("referral code already exists")
)

// IdentityFilter selects broadcast recipients. Zero value selects every identity.
type IdentityFilter struct {
	Status         *entity.ApplicationStatus
	RegisteredOnly bool
	LinkedOnly     bool
	FlaggedOnly    bool
}

// IdentityRepository defines the interface for identity-related database operations.
type IdentityRepository interface {
	// Ensure inserts the identity or refreshes handle and chat id of an existing one,
	// and returns the stored record.
	Ensure(ctx context.Context, identity *entity.Identity) (*entity.Identity, error)

	FindByID(ctx context.Context, id string) (*entity.Identity, error)

	// FindByIDForUpdate reads the identity and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Identity, error)

	FindByReferralCode(ctx context.Context, code string) (*entity.Identity, error)

	// MarkSubmitted moves an identity with no application to pending.
	// It reports false when an application already exists.
	MarkSubmitted(ctx context.Context, id string, profile map[string]string, at time.Time) (bool, error)

	// MarkRegistered records airdrop registration once.
	// It reports false when the identity was already registered.
	MarkRegistered(ctx context.Context, id string, profile map[string]string, at time.Time) (bool, error)

	// Decide moves a pending application to a terminal status.
	// It reports false when the application is not pending.
	Decide(ctx context.Context, id string, status entity.ApplicationStatus, reviewer string, at time.Time) (bool, error)

	SetFlagged(ctx context.Context, id string) error

	// ForEachBatch walks the identities matching filter in id order, batchSize at a time.
	ForEachBatch(ctx context.Context, filter IdentityFilter, batchSize int, fn func([]*entity.Identity) error) error
}
