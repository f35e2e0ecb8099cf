package usecase

import (
	"context"

	"blip/internal/domain/entity"
	"blip/internal/domain/service"
)

// AdvanceOutcome classifies how the engine handled an update.
type AdvanceOutcome string

const (
	// OutcomeStarted means a session was (re)created at the first step.
	OutcomeStarted AdvanceOutcome = "started"
	// OutcomeAdvanced means the answer was stored and the next step rendered.
	OutcomeAdvanced AdvanceOutcome = "advanced"
	// OutcomeRejected means the input was refused and the current step re-rendered.
	OutcomeRejected AdvanceOutcome = "rejected"
	// OutcomeCompleted means the flow was handed off and the session destroyed.
	OutcomeCompleted AdvanceOutcome = "completed"
	// OutcomeAlreadySubmitted answers a duplicate confirm after handoff.
	OutcomeAlreadySubmitted AdvanceOutcome = "already_submitted"
	// OutcomeNoSession means there was nothing to advance.
	OutcomeNoSession AdvanceOutcome = "no_session"
)

// StartInput identifies who starts a flow and where to render it.
type StartInput struct {
	Flow         entity.FlowKind
	IdentityID   string
	ChatID       string
	ReferralCode string
}

// AdvanceInput is one abstract chat update: either typed text or a selected option.
type AdvanceInput struct {
	Flow       entity.FlowKind
	IdentityID string
	ChatID     string
	Text       *string
	Option     *entity.Action
}

// AdvanceResult describes what the engine rendered.
type AdvanceResult struct {
	Outcome  AdvanceOutcome
	Step     string
	Terminal bool
	View     service.View
	// Reason carries the hint shown for rejected input.
	Reason string
}

// SessionUsecase drives multi-step forms over a chat interface.
type SessionUsecase interface {
	// Start begins the flow unless the identity already completed it.
	Start(ctx context.Context, input StartInput) (*AdvanceResult, error)

	// Restart discards any session and re-enters the first step. Safe at any time.
	Restart(ctx context.Context, input StartInput) (*AdvanceResult, error)

	Advance(ctx context.Context, input AdvanceInput) (*AdvanceResult, error)
}

// CompletionResult is the outcome of a flow handoff.
type CompletionResult struct {
	Identity *entity.Identity
	// Awarded is the registration bonus credited by this completion.
	Awarded  int64
	Referral *ReferralOutcome
}

// FlowCompleter performs the single durable handoff at the end of a flow.
type FlowCompleter interface {
	// Complete returns domainerrors.ErrDuplicateSubmission when the identity
	// already completed the flow.
	Complete(ctx context.Context, flow entity.FlowKind, identityID string, answers map[string]string, referralCode string) (*CompletionResult, error)
}
