package usecase

import (
	"context"
	"strings"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/repository"

	"github.com/google/uuid"
)

// DispatchInput is a broadcast request from a chat.
type DispatchInput struct {
	InitiatorID string
	// Initiator is where the summary is reported; the broadcast goes out through its bot.
	Initiator entity.ChatRef
	Filter    repository.IdentityFilter
	Message   string
}

// BroadcastSummary aggregates a run. Failures are counted, never retried.
type BroadcastSummary struct {
	JobID  uuid.UUID
	Sent   int
	Failed int
}

// BroadcastUsecase fans a message out to a filtered set of identities.
type BroadcastUsecase interface {
	// Dispatch authorizes the initiator and starts a detached run.
	Dispatch(ctx context.Context, input DispatchInput) (uuid.UUID, error)

	// Run is the synchronous, rate-limited fan-out.
	Run(ctx context.Context, bot entity.FlowKind, filter repository.IdentityFilter, message string) (*BroadcastSummary, error)

	// Wait blocks until detached runs finish or ctx is done.
	Wait(ctx context.Context) error
}

// ParseBroadcastFilter maps a chat argument to a recipient filter.
func ParseBroadcastFilter(name string) (repository.IdentityFilter, error) {
	var filter repository.IdentityFilter

	switch strings.ToLower(name) {
	case "all":
	case "registered":
		filter.RegisteredOnly = true
	case "linked":
		filter.LinkedOnly = true
	case "flagged":
		filter.FlaggedOnly = true
	case string(entity.StatusPending), string(entity.StatusApproved), string(entity.StatusRejected):
		status := entity.ApplicationStatus(strings.ToLower(name))
		filter.Status = &status
	default:
		return filter, domainerrors.ErrInvalidInput.WithDetails("filter must be one of all, registered, linked, flagged, pending, approved, rejected")
	}

	return filter, nil
}
