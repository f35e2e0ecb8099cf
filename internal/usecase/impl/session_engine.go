package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "blip/internal/delivery/context"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	hintStaleOption  = "that option is no longer available"
	hintUnknownInput = "please answer the question above"
	hintSubmitFailed = "we could not submit right now, please press Submit again"
)

type sessionEngine struct {
	flows        flow.Registry
	store        service.SessionStore
	messenger    service.Messenger
	completer    usecase.FlowCompleter
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// SessionEngineParams holds dependencies for the session engine, injected by Fx.
type SessionEngineParams struct {
	fx.In

	Flows        flow.Registry
	Store        service.SessionStore
	Messenger    service.Messenger
	Completer    usecase.FlowCompleter
	IdentityRepo repository.IdentityRepository
	Logger       *slog.Logger
}

// NewSessionEngine creates the conversational step engine.
func NewSessionEngine(params SessionEngineParams) usecase.SessionUsecase {
	return &sessionEngine{
		flows:        params.Flows,
		store:        params.Store,
		messenger:    params.Messenger,
		completer:    params.Completer,
		identityRepo: params.IdentityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (e *sessionEngine) flow(kind entity.FlowKind) (*flow.Flow, error) {
	f, ok := e.flows.Get(kind)
	if !ok {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown flow " + string(kind))
	}

	return f, nil
}

func (e *sessionEngine) Start(ctx context.Context, input usecase.StartInput) (*usecase.AdvanceResult, error) {
	f, err := e.flow(input.Flow)
	if err != nil {
		return nil, err
	}

	key := entity.SessionKey{Flow: input.Flow, IdentityID: input.IdentityID}
	unlock := e.store.Lock(key)
	defer unlock()

	identity, err := e.identityRepo.FindByID(ctx, input.IdentityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}
	if identity.HasCompleted(input.Flow) {
		e.store.Delete(key)
		view := service.View{Text: alreadySubmittedText(input.Flow)}
		e.render(ctx, entity.ChatRef{Bot: input.Flow, ChatID: input.ChatID}, nil, view)

		return &usecase.AdvanceResult{Outcome: usecase.OutcomeAlreadySubmitted, Terminal: true, View: view}, nil
	}

	return e.enter(ctx, f, key, input, nil), nil
}

func (e *sessionEngine) Restart(ctx context.Context, input usecase.StartInput) (*usecase.AdvanceResult, error) {
	f, err := e.flow(input.Flow)
	if err != nil {
		return nil, err
	}

	key := entity.SessionKey{Flow: input.Flow, IdentityID: input.IdentityID}
	unlock := e.store.Lock(key)
	defer unlock()

	// Reuse the old anchor so the superseded buttons disappear in place.
	var anchor *entity.MessageRef
	if old, ok := e.store.Get(key); ok {
		anchor = old.Anchor
		if input.ReferralCode == "" {
			input.ReferralCode = old.ReferralCode
		}
	}
	e.store.Delete(key)

	return e.enter(ctx, f, key, input, anchor), nil
}

// enter must be called with the key locked.
func (e *sessionEngine) enter(ctx context.Context, f *flow.Flow, key entity.SessionKey, input usecase.StartInput, anchor *entity.MessageRef) *usecase.AdvanceResult {
	now := e.now()
	first := f.First()
	sess := &entity.Session{
		Key:          key,
		Step:         first.Name,
		Answers:      map[string]string{},
		ReferralCode: input.ReferralCode,
		StartedAt:    now,
		UpdatedAt:    now,
	}

	view := stepView(f, first, sess.Answers, "")
	sess.Anchor = e.render(ctx, entity.ChatRef{Bot: key.Flow, ChatID: input.ChatID}, anchor, view)
	e.store.Put(sess)

	return &usecase.AdvanceResult{Outcome: usecase.OutcomeStarted, Step: first.Name, View: view}
}

// Advance serializes on the session key for the whole transition.
func (e *sessionEngine) Advance(ctx context.Context, input usecase.AdvanceInput) (*usecase.AdvanceResult, error) {
	f, err := e.flow(input.Flow)
	if err != nil {
		return nil, err
	}

	key := entity.SessionKey{Flow: input.Flow, IdentityID: input.IdentityID}
	unlock := e.store.Lock(key)
	defer unlock()

	chat := entity.ChatRef{Bot: input.Flow, ChatID: input.ChatID}

	sess, ok := e.store.Get(key)
	if !ok {
		return e.withoutSession(ctx, chat, input)
	}

	step, ok := f.Step(sess.Step)
	if !ok {
		e.store.Delete(key)

		return nil, errors.Errorf("session %s points to unknown step %q", key, sess.Step)
	}

	var (
		value  string
		option *flow.Option
	)

	switch {
	case input.Option != nil:
		if input.Option.Kind != entity.ActionOption || input.Option.Step != step.Name {
			return e.reject(ctx, chat, f, sess, step, hintStaleOption), nil
		}
		opt, ok := step.Option(input.Option.Value)
		if !ok {
			return e.reject(ctx, chat, f, sess, step, hintStaleOption), nil
		}
		value, option = opt.Value, &opt
	case input.Text != nil:
		value, err = step.CheckText(*input.Text)
		if err != nil {
			return e.reject(ctx, chat, f, sess, step, rejectionHint(err)), nil
		}
	default:
		return e.reject(ctx, chat, f, sess, step, hintUnknownInput), nil
	}

	if step.Confirm {
		return e.complete(ctx, chat, f, sess, step)
	}

	sess.Answers[step.Name] = value
	next := f.NextAfter(step, option)
	if next == nil {
		return nil, errors.Errorf("flow %s has no step after %q", f.Kind, step.Name)
	}

	sess.Step = next.Name
	sess.UpdatedAt = e.now()

	view := stepView(f, next, sess.Answers, "")
	sess.Anchor = e.render(ctx, chat, sess.Anchor, view)
	e.store.Put(sess)

	return &usecase.AdvanceResult{Outcome: usecase.OutcomeAdvanced, Step: next.Name, View: view}, nil
}

// withoutSession answers a late confirm after handoff idempotently.
func (e *sessionEngine) withoutSession(ctx context.Context, chat entity.ChatRef, input usecase.AdvanceInput) (*usecase.AdvanceResult, error) {
	identity, err := e.identityRepo.FindByID(ctx, input.IdentityID)
	if err != nil && !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	if identity != nil && identity.HasCompleted(input.Flow) {
		view := service.View{Text: alreadySubmittedText(input.Flow)}
		e.render(ctx, chat, nil, view)

		return &usecase.AdvanceResult{Outcome: usecase.OutcomeAlreadySubmitted, Terminal: true, View: view}, nil
	}

	view := service.View{
		Text:    "There is no form in progress. Press Start over to begin.",
		Buttons: [][]service.Button{{{Label: "Start over", Action: entity.RestartAction()}}},
	}
	e.render(ctx, chat, nil, view)

	return &usecase.AdvanceResult{Outcome: usecase.OutcomeNoSession, View: view}, nil
}

// reject re-renders the unchanged step with a hint and leaves the stored session untouched.
func (e *sessionEngine) reject(ctx context.Context, chat entity.ChatRef, f *flow.Flow, sess *entity.Session, step *flow.Step, hint string) *usecase.AdvanceResult {
	view := stepView(f, step, sess.Answers, hint)

	anchor := e.render(ctx, chat, sess.Anchor, view)
	if anchor != nil && (sess.Anchor == nil || *anchor != *sess.Anchor) {
		// Only the anchor moves; step and answers stay as they were.
		sess.Anchor = anchor
		e.store.Put(sess)
	}

	deliverycontext.GetLoggerOrDefault(ctx, e.logger).Debug("Session input rejected",
		slog.String("session", sess.Key.String()),
		slog.String("step", step.Name),
		slog.String("hint", hint),
	)

	return &usecase.AdvanceResult{Outcome: usecase.OutcomeRejected, Step: step.Name, View: view, Reason: hint}
}

func (e *sessionEngine) complete(ctx context.Context, chat entity.ChatRef, f *flow.Flow, sess *entity.Session, step *flow.Step) (*usecase.AdvanceResult, error) {
	_, err := e.completer.Complete(ctx, f.Kind, sess.Key.IdentityID, sess.Answers, sess.ReferralCode)
	switch {
	case errors.Is(err, domainerrors.ErrDuplicateSubmission):
		e.store.Delete(sess.Key)
		view := service.View{Text: alreadySubmittedText(f.Kind)}
		e.render(ctx, chat, sess.Anchor, view)

		return &usecase.AdvanceResult{Outcome: usecase.OutcomeAlreadySubmitted, Step: step.Name, Terminal: true, View: view}, nil
	case err != nil:
		e.reject(ctx, chat, f, sess, step, hintSubmitFailed)

		return nil, errors.Wrap(err, "failed to complete flow")
	}

	e.store.Delete(sess.Key)
	view := service.View{Text: f.Summary(sess.Answers) + "\n\n" + f.Done}
	e.render(ctx, chat, sess.Anchor, view)

	deliverycontext.GetLoggerOrDefault(ctx, e.logger).Info("Flow completed",
		slog.String("session", sess.Key.String()),
	)

	return &usecase.AdvanceResult{Outcome: usecase.OutcomeCompleted, Step: step.Name, Terminal: true, View: view}, nil
}

// render edits the anchor in place, falling back to a new message that becomes
// the anchor. Delivery problems never fail the transition.
func (e *sessionEngine) render(ctx context.Context, chat entity.ChatRef, anchor *entity.MessageRef, view service.View) *entity.MessageRef {
	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)

	if anchor != nil {
		err := e.messenger.Edit(ctx, *anchor, view)
		if err == nil {
			return anchor
		}
		logger.Warn("Failed to edit anchored message, sending a new one", slog.Any("error", err))
		if chat.ChatID == "" {
			chat = anchor.ChatRef
		}
	}

	if chat.ChatID == "" {
		return anchor
	}

	ref, err := e.messenger.Send(ctx, chat, view)
	if err != nil {
		logger.Warn("Failed to render step", slog.Any("error", err))

		return anchor
	}

	return &ref
}

func stepView(f *flow.Flow, step *flow.Step, answers map[string]string, hint string) service.View {
	text := fmt.Sprintf("%s · step %d/%d\n\n%s", f.Title, f.Position(step), f.Len(), step.Prompt)
	if step.Confirm {
		text += "\n\n" + f.Summary(answers)
	}
	if hint != "" {
		text += "\n\n⚠ " + hint
	}

	buttons := make([][]service.Button, 0, len(step.Options)+1)
	for _, opt := range step.Options {
		buttons = append(buttons, []service.Button{{Label: opt.Label, Action: entity.OptionAction(step.Name, opt.Value)}})
	}
	buttons = append(buttons, []service.Button{{Label: "Start over", Action: entity.RestartAction()}})

	return service.View{Text: text, Buttons: buttons}
}

func rejectionHint(err error) string {
	var appErr *domainerrors.BaseError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	return hintUnknownInput
}

func alreadySubmittedText(kind entity.FlowKind) string {
	if kind == entity.FlowMerchant {
		return "Your application was already submitted. We will get back to you after review."
	}

	return "You are already registered. Use /points to see your balance."
}
