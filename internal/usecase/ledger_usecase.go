package usecase

import (
	"context"

	"blip/internal/domain/entity"
)

// AwardInput describes a single credit.
type AwardInput struct {
	Owner     entity.Owner
	Kind      entity.EventKind
	Amount    int64
	Reference string
}

// ReferralOutcome reports a referral credit.
type ReferralOutcome struct {
	Edge             *entity.ReferralEdge
	ReferrerCredited bool
	ReferredCredited bool
}

// TaskOutcome reports a task completion.
type TaskOutcome struct {
	TaskID   string
	Points   int64
	Credited bool
}

// IdentityProgress is an identity's standing in the points programme.
type IdentityProgress struct {
	Identity  *entity.Identity
	Balance   int64
	Entries   []*entity.LedgerEntry
	Referrals int64
	// Tier is recomputed from the stored volume bracket on every read.
	Tier *entity.Tier
}

// LedgerUsecase credits points exactly once per qualifying action.
type LedgerUsecase interface {
	// Award reports false when a one-time entry already exists.
	Award(ctx context.Context, input AwardInput) (bool, error)

	// CreditReferral creates the referral edge and credits both sides atomically.
	CreditReferral(ctx context.Context, referredID, code string) (*ReferralOutcome, error)

	// CompleteTask verifies and credits a configured task.
	CompleteTask(ctx context.Context, owner entity.Owner, taskID string) (*TaskOutcome, error)

	Balance(ctx context.Context, owner entity.Owner) (int64, error)

	Progress(ctx context.Context, identityID string) (*IdentityProgress, error)
}
