package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blip/config"
	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderationService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	messenger    service.Messenger
	publisher    service.EventPublisher
	flows        flow.Registry
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Messenger    service.Messenger
	Publisher    service.EventPublisher
	Flows        flow.Registry
	Config       *config.Config
	Logger       *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		messenger:    params.Messenger,
		publisher:    params.Publisher,
		flows:        params.Flows,
		config:       params.Config,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// IsReviewer is a plain equality check against the configured reviewer.
func (s *moderationService) IsReviewer(identityID string) bool {
	reviewer := s.config.Moderation.ReviewerID

	return reviewer != "" && identityID == reviewer
}

func (s *moderationService) reviewerChat() (entity.ChatRef, bool) {
	chatID := s.config.Moderation.ReviewerChatID

	return entity.ChatRef{Bot: entity.FlowMerchant, ChatID: chatID}, chatID != ""
}

func (s *moderationService) Enqueue(ctx context.Context, identity *entity.Identity) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	chat, ok := s.reviewerChat()
	if !ok {
		logger.Warn("No reviewer chat configured, application not enqueued", slog.String("identity_id", identity.ID))

		return nil
	}

	if _, err := s.messenger.Send(ctx, chat, s.promptView(identity)); err != nil {
		return errors.Wrap(err, "failed to send moderation prompt")
	}

	logger.Info("Application enqueued for review", slog.String("identity_id", identity.ID))

	return nil
}

// Decide authorizes before any lookup so unauthorized callers learn nothing about the identity.
func (s *moderationService) Decide(ctx context.Context, input usecase.DecideInput) (*usecase.Ack, error) {
	if !s.IsReviewer(input.ReviewerID) {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Unauthorized moderation attempt",
			slog.String("reviewer_id", input.ReviewerID),
		)

		return nil, domainerrors.ErrUnauthorized
	}

	switch input.Decision {
	case entity.DecisionApprove, entity.DecisionReject:
		return s.decide(ctx, input)
	case entity.DecisionFlag:
		return s.flag(ctx, input)
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown decision")
	}
}

func (s *moderationService) decide(ctx context.Context, input usecase.DecideInput) (*usecase.Ack, error) {
	status, outcome := entity.StatusRejected, usecase.AckRejected
	if input.Decision == entity.DecisionApprove {
		status, outcome = entity.StatusApproved, usecase.AckApproved
	}

	now := s.now().UTC()
	var identity *entity.Identity

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identities := factory.NewIdentityRepository()

		current, err := identities.FindByIDForUpdate(ctx, input.IdentityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrIdentityNotFound
			}

			return errors.Wrap(err, "failed to lock identity")
		}
		if current.Status.IsDecided() {
			identity, outcome = current, usecase.AckAlreadyDecided

			return nil
		}
		if current.Status != entity.StatusPending {
			return domainerrors.ErrNotPending
		}

		changed, err := identities.Decide(ctx, current.ID, status, input.ReviewerID, now)
		if err != nil {
			return errors.Wrap(err, "failed to record decision")
		}
		if !changed {
			outcome = usecase.AckAlreadyDecided
			identity, err = identities.FindByID(ctx, current.ID)

			return errors.Wrap(err, "failed to reload identity")
		}

		if tier, ok := current.Tier(); ok && status == entity.StatusApproved {
			if _, err := appendAward(ctx, factory.NewLedgerRepository(), usecase.AwardInput{
				Owner:  entity.IdentityOwner(current.ID),
				Kind:   entity.EventModerationApproval,
				Amount: tier.Allocation,
			}, now); err != nil {
				return err
			}
		}

		identity, err = identities.FindByID(ctx, current.ID)

		return errors.Wrap(err, "failed to reload identity")
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if input.Prompt != nil {
		if err := s.messenger.Edit(ctx, *input.Prompt, s.decidedView(identity)); err != nil {
			logger.Warn("Failed to disable moderation prompt", slog.Any("error", err))
		}
	}

	ack := &usecase.Ack{Outcome: outcome, Identity: identity}
	if outcome == usecase.AckAlreadyDecided {
		ack.Text = fmt.Sprintf("Already %s.", identity.Status)

		return ack, nil
	}

	ack.Text = fmt.Sprintf("Application %s.", identity.Status)
	logger.Info("Application decided",
		slog.String("identity_id", identity.ID),
		slog.String("status", string(identity.Status)),
	)
	s.notifyApplicant(ctx, identity)

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventIdentityDecided,
		SubjectID:  identity.ID,
		Attributes: map[string]string{"status": string(identity.Status), "reviewer_id": input.ReviewerID},
		OccurredAt: now,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish decision event", slog.Any("error", err))
	}

	return ack, nil
}

// flag is not terminal: the prompt stays actionable.
func (s *moderationService) flag(ctx context.Context, input usecase.DecideInput) (*usecase.Ack, error) {
	if _, err := s.identityRepo.FindByID(ctx, input.IdentityID); err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	if err := s.identityRepo.SetFlagged(ctx, input.IdentityID); err != nil {
		return nil, errors.Wrap(err, "failed to flag identity")
	}

	identity, err := s.identityRepo.FindByID(ctx, input.IdentityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload identity")
	}

	if input.Prompt != nil {
		view := s.promptView(identity)
		if identity.Status.IsDecided() {
			view = s.decidedView(identity)
		}
		if err := s.messenger.Edit(ctx, *input.Prompt, view); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to update moderation prompt", slog.Any("error", err))
		}
	}

	return &usecase.Ack{Outcome: usecase.AckFlagged, Identity: identity, Text: "Flagged."}, nil
}

func (s *moderationService) notifyApplicant(ctx context.Context, identity *entity.Identity) {
	if identity.ChatID == "" {
		return
	}

	text := "Your merchant application was not approved."
	if identity.Status == entity.StatusApproved {
		text = "Your merchant application was approved!"
		if tier, ok := identity.Tier(); ok {
			text += fmt.Sprintf(" Tier: %s, %d points credited.", tier.Name, tier.Allocation)
		}
	}

	chat := entity.ChatRef{Bot: entity.FlowMerchant, ChatID: identity.ChatID}
	if _, err := s.messenger.Send(ctx, chat, service.View{Text: text}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to notify applicant",
			slog.String("identity_id", identity.ID),
			slog.Any("error", err),
		)
	}
}

func (s *moderationService) describe(identity *entity.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Merchant application from %s (%s)\n\n", identity.DisplayName(), identity.ID)

	if f, ok := s.flows.Get(entity.FlowMerchant); ok {
		b.WriteString(f.Summary(identity.Profile))
	}
	if tier, ok := identity.Tier(); ok {
		fmt.Fprintf(&b, "\n\nTier: %s (%d points)", tier.Name, tier.Allocation)
	}
	if identity.Flagged {
		b.WriteString("\n\n⚑ Flagged for follow-up")
	}

	return b.String()
}

func (s *moderationService) promptView(identity *entity.Identity) service.View {
	return service.View{
		Text: s.describe(identity),
		Buttons: [][]service.Button{
			{
				{Label: "Approve", Action: entity.ModerateAction(entity.DecisionApprove, identity.ID)},
				{Label: "Reject", Action: entity.ModerateAction(entity.DecisionReject, identity.ID)},
			},
			{{Label: "Flag", Action: entity.ModerateAction(entity.DecisionFlag, identity.ID)}},
		},
	}
}

// decidedView replaces the prompt; its only button is an inert acknowledgment.
func (s *moderationService) decidedView(identity *entity.Identity) service.View {
	label := strings.ToUpper(string(identity.Status[:1])) + string(identity.Status[1:])

	return service.View{
		Text:    s.describe(identity) + "\n\nDecision: " + string(identity.Status),
		Buttons: [][]service.Button{{{Label: label, Action: entity.DecidedAction(identity.ID)}}},
	}
}
