package usecase

import (
	"context"

	"blip/internal/domain/entity"
)

// DecisionOutcome is the acknowledged result of a reviewer action.
type DecisionOutcome string

const (
	AckApproved       DecisionOutcome = "approved"
	AckRejected       DecisionOutcome = "rejected"
	AckFlagged        DecisionOutcome = "flagged"
	AckAlreadyDecided DecisionOutcome = "already_decided"
)

// DecideInput is a reviewer action on an application.
type DecideInput struct {
	IdentityID string
	Decision   entity.Decision
	ReviewerID string
	// Prompt is the moderation message the action came from, if any.
	Prompt *entity.MessageRef
}

// Ack is returned to the reviewer.
type Ack struct {
	Outcome  DecisionOutcome
	Identity *entity.Identity
	Text     string
}

// ModerationUsecase reviews merchant applications.
type ModerationUsecase interface {
	// Enqueue sends the reviewer an actionable prompt for a pending application.
	Enqueue(ctx context.Context, identity *entity.Identity) error

	// Decide returns domainerrors.ErrUnauthorized for anyone but the configured reviewer.
	Decide(ctx context.Context, input DecideInput) (*Ack, error)

	IsReviewer(identityID string) bool
}
