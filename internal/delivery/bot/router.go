package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ackStaleButton = "This button is no longer valid."
	ackDecided     = "This application was already decided."
	ackNotAllowed  = "You are not allowed to do that."
)

// Router dispatches chat updates of one bot.
type Router interface {
	Handle(ctx context.Context, flow entity.FlowKind, update Update) (*Reply, error)
}

type router struct {
	identities usecase.IdentityUsecase
	sessions   usecase.SessionUsecase
	links      usecase.LinkUsecase
	ledger     usecase.LedgerUsecase
	moderation usecase.ModerationUsecase
	broadcasts usecase.BroadcastUsecase
	messenger  service.Messenger
	logger     *slog.Logger
}

// RouterParams holds dependencies for the update router, injected by Fx.
type RouterParams struct {
	fx.In

	Identities usecase.IdentityUsecase
	Sessions   usecase.SessionUsecase
	Links      usecase.LinkUsecase
	Ledger     usecase.LedgerUsecase
	Moderation usecase.ModerationUsecase
	Broadcasts usecase.BroadcastUsecase
	Messenger  service.Messenger
	Logger     *slog.Logger
}

func NewRouter(params RouterParams) Router {
	return &router{
		identities: params.Identities,
		sessions:   params.Sessions,
		links:      params.Links,
		ledger:     params.Ledger,
		moderation: params.Moderation,
		broadcasts: params.Broadcasts,
		messenger:  params.Messenger,
		logger:     params.Logger,
	}
}

// Handle records the sender, then routes buttons, commands and free text in that order.
func (r *router) Handle(ctx context.Context, flow entity.FlowKind, update Update) (*Reply, error) {
	if !flow.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown bot " + string(flow))
	}

	identity, err := r.identities.Ensure(ctx, usecase.EnsureIdentityInput{
		ID:     update.ActorID,
		Handle: update.Handle,
		ChatID: update.ChatID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure identity")
	}

	ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, r.logger).With(
		slog.String("bot", string(flow)),
		slog.String("identity_id", identity.ID),
	))

	if update.CallbackData != "" {
		return r.handleAction(ctx, flow, identity, update)
	}

	if cmd, ok := parseCommand(update.Text); ok {
		return r.handleCommand(ctx, flow, identity, update, cmd)
	}

	text := update.Text
	result, err := r.sessions.Advance(ctx, usecase.AdvanceInput{
		Flow:       flow,
		IdentityID: identity.ID,
		ChatID:     update.ChatID,
		Text:       &text,
	})
	if err != nil {
		return nil, err
	}

	return &Reply{Outcome: Outcome(result.Outcome)}, nil
}

func (r *router) handleAction(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update) (*Reply, error) {
	action, err := entity.ParseAction(update.CallbackData)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Ignoring malformed callback", slog.Any("error", err))

		return &Reply{Outcome: OutcomeIgnored, Ack: ackStaleButton}, nil
	}

	switch action.Kind {
	case entity.ActionOption:
		result, err := r.sessions.Advance(ctx, usecase.AdvanceInput{
			Flow:       flow,
			IdentityID: identity.ID,
			ChatID:     update.ChatID,
			Option:     &action,
		})
		if err != nil {
			return nil, err
		}

		return &Reply{Outcome: Outcome(result.Outcome), Ack: result.Reason}, nil
	case entity.ActionRestart:
		result, err := r.sessions.Restart(ctx, usecase.StartInput{Flow: flow, IdentityID: identity.ID, ChatID: update.ChatID})
		if err != nil {
			return nil, err
		}

		return &Reply{Outcome: Outcome(result.Outcome)}, nil
	case entity.ActionModerate:
		ack, err := r.moderation.Decide(ctx, usecase.DecideInput{
			IdentityID: action.TargetID,
			Decision:   action.Decision,
			ReviewerID: identity.ID,
			Prompt:     update.message(flow),
		})
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return &Reply{Outcome: OutcomeAck, Ack: ackNotAllowed}, nil
			}
			if msg, ok := userMessage(err); ok {
				return &Reply{Outcome: OutcomeAck, Ack: msg}, nil
			}

			return nil, err
		}

		return &Reply{Outcome: OutcomeAck, Ack: ack.Text}, nil
	default:
		return &Reply{Outcome: OutcomeAck, Ack: ackDecided}, nil
	}
}

func (r *router) handleCommand(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update, cmd command) (*Reply, error) {
	var err error

	switch cmd.name {
	case "start":
		var result *usecase.AdvanceResult
		input := usecase.StartInput{Flow: flow, IdentityID: identity.ID, ChatID: update.ChatID}
		if len(cmd.args) > 0 {
			input.ReferralCode = cmd.args[0]
		}
		if result, err = r.sessions.Start(ctx, input); err == nil {
			return &Reply{Outcome: Outcome(result.Outcome)}, nil
		}
	case "restart":
		var result *usecase.AdvanceResult
		input := usecase.StartInput{Flow: flow, IdentityID: identity.ID, ChatID: update.ChatID}
		if result, err = r.sessions.Restart(ctx, input); err == nil {
			return &Reply{Outcome: Outcome(result.Outcome)}, nil
		}
	case "link":
		err = r.link(ctx, flow, identity, update, cmd)
	case "points":
		err = r.points(ctx, flow, identity, update)
	case "task":
		err = r.task(ctx, flow, identity, update, cmd)
	case "broadcast":
		err = r.broadcast(ctx, flow, identity, update, cmd)
	default:
		r.send(ctx, update.chat(flow), helpText(flow, r.moderation.IsReviewer(identity.ID)))
	}

	if err != nil {
		msg, ok := userMessage(err)
		if !ok {
			return nil, err
		}
		r.send(ctx, update.chat(flow), msg)
	}

	return &Reply{Outcome: OutcomeCommand}, nil
}

func (r *router) link(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update, cmd command) error {
	role := flow.DefaultRole()
	if len(cmd.args) > 0 {
		role = entity.Role(strings.ToLower(cmd.args[0]))
	}

	out, err := r.links.Issue(ctx, identity.ID, role)
	if err != nil {
		return err
	}

	minutes := int(time.Until(out.ExpiresAt).Round(time.Minute) / time.Minute)
	text := fmt.Sprintf("Your one-time code: %s\nIt links this chat as a %s account and expires in %d minutes.", out.OTP, out.Role, minutes)
	if out.URL != "" {
		text += "\n\nOr open: " + out.URL
	}
	r.send(ctx, update.chat(flow), text)

	if len(out.QRCode) > 0 {
		if err := r.messenger.SendPhoto(ctx, update.chat(flow), out.QRCode, "Scan to link your account"); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to send link QR code", slog.Any("error", err))
		}
	}

	return nil
}

func (r *router) points(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update) error {
	progress, err := r.ledger.Progress(ctx, identity.ID)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Balance: %d points\nReferrals: %d\nYour referral code: %s", progress.Balance, progress.Referrals, identity.ReferralCode)
	if progress.Tier != nil {
		fmt.Fprintf(&b, "\nTier: %s", progress.Tier.Name)
	}
	r.send(ctx, update.chat(flow), b.String())

	return nil
}

func (r *router) task(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update, cmd command) error {
	if len(cmd.args) == 0 {
		return domainerrors.ErrInvalidInput.WithDetails("usage: /task <id>")
	}

	outcome, err := r.ledger.CompleteTask(ctx, entity.IdentityOwner(identity.ID), cmd.args[0])
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Task %s completed: +%d points.", outcome.TaskID, outcome.Points)
	if !outcome.Credited {
		text = fmt.Sprintf("Task %s was already credited.", outcome.TaskID)
	}
	r.send(ctx, update.chat(flow), text)

	return nil
}

func (r *router) broadcast(ctx context.Context, flow entity.FlowKind, identity *entity.Identity, update Update, cmd command) error {
	if !r.moderation.IsReviewer(identity.ID) {
		return domainerrors.ErrUnauthorized
	}
	if len(cmd.args) < 2 {
		return domainerrors.ErrInvalidInput.WithDetails("usage: /broadcast <filter> <message>")
	}

	filter, err := usecase.ParseBroadcastFilter(cmd.args[0])
	if err != nil {
		return err
	}

	jobID, err := r.broadcasts.Dispatch(ctx, usecase.DispatchInput{
		InitiatorID: identity.ID,
		Initiator:   update.chat(flow),
		Filter:      filter,
		Message:     cmd.rest,
	})
	if err != nil {
		return err
	}

	r.send(ctx, update.chat(flow), "Broadcast "+jobID.String()[:8]+" started. You will get a summary when it finishes.")

	return nil
}

func (r *router) send(ctx context.Context, to entity.ChatRef, text string) {
	if _, err := r.messenger.Send(ctx, to, service.View{Text: text}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to send reply", slog.Any("error", err))
	}
}

// userMessage turns a client-side domain error into chat text. Server-side errors are not shown.
func userMessage(err error) (string, bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return "", false
	}
	if appErr.HTTPCode() >= 500 && !errors.Is(err, domainerrors.ErrVerificationUnavailable) {
		return "", false
	}

	msg := appErr.Message()
	if appErr.Details() != "" {
		msg = appErr.Details()
	}
	if msg == "" {
		return "", false
	}

	return strings.ToUpper(msg[:1]) + msg[1:] + ".", true
}

func helpText(flow entity.FlowKind, reviewer bool) string {
	lines := []string{
		"/start - begin",
		"/restart - start the form over",
		"/link [user|merchant] - link this chat to your web account",
		"/points - show your balance and referral code",
		"/task <id> - claim a completed task",
	}
	if flow == entity.FlowMerchant {
		lines[0] = "/start - apply as a merchant"
	} else {
		lines[0] = "/start [referral code] - register for the airdrop"
	}
	if reviewer {
		lines = append(lines, "/broadcast <all|registered|linked|flagged|pending|approved|rejected> <message>")
	}

	return strings.Join(lines, "\n")
}
