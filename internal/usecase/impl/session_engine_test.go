package impl

import (
	"context"
	"testing"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/domain/service"
	"blip/internal/infra/session"
	"blip/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0x52908400098527886e0f7030069857d2e4169ee7"

type engineFixture struct {
	*onboardingFixture
	engine   usecase.SessionUsecase
	sessions service.SessionStore
}

func createTestSessionEngine(t *testing.T) *engineFixture {
	t.Helper()

	f := createTestOnboardingService(t)
	store := session.NewMemoryStore(newTestConfig())

	engine := NewSessionEngine(SessionEngineParams{
		Flows:        flow.DefaultRegistry(),
		Store:        store,
		Messenger:    f.messenger,
		Completer:    f.completer,
		IdentityRepo: f.store.identityRepo,
		Logger:       newDiscardLogger(),
	})

	return &engineFixture{onboardingFixture: f, engine: engine, sessions: store}
}

func (f *engineFixture) start(t *testing.T, kind entity.FlowKind, identityID, code string) *usecase.AdvanceResult {
	t.Helper()

	result, err := f.engine.Start(context.Background(), usecase.StartInput{
		Flow:         kind,
		IdentityID:   identityID,
		ChatID:       "chat-" + identityID,
		ReferralCode: code,
	})
	require.NoError(t, err)

	return result
}

func (f *engineFixture) choose(t *testing.T, kind entity.FlowKind, identityID, step, value string) *usecase.AdvanceResult {
	t.Helper()

	action := entity.OptionAction(step, value)
	result, err := f.engine.Advance(context.Background(), usecase.AdvanceInput{
		Flow:       kind,
		IdentityID: identityID,
		ChatID:     "chat-" + identityID,
		Option:     &action,
	})
	require.NoError(t, err)

	return result
}

func (f *engineFixture) say(t *testing.T, kind entity.FlowKind, identityID, text string) *usecase.AdvanceResult {
	t.Helper()

	result, err := f.engine.Advance(context.Background(), usecase.AdvanceInput{
		Flow:       kind,
		IdentityID: identityID,
		ChatID:     "chat-" + identityID,
		Text:       &text,
	})
	require.NoError(t, err)

	return result
}

func (f *engineFixture) session(identityID string, kind entity.FlowKind) (*entity.Session, bool) {
	return f.sessions.Get(entity.SessionKey{Flow: kind, IdentityID: identityID})
}

func TestSessionEngine_MerchantFlowRejectsStaleOption(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:5")
	merchant := entity.FlowMerchant

	started := f.start(t, merchant, "tg:5", "")
	assert.Equal(t, usecase.OutcomeStarted, started.Outcome)
	assert.Equal(t, "business_type", started.Step)
	assert.Contains(t, started.View.Text, "step 1/9")

	answers := []struct{ step, value string }{
		{"business_type", "ecommerce"},
		{entity.ProfileMonthlyVolume, string(entity.Volume100KTo1M)},
		{"region", "latam"},
		{"settlement", "crypto"},
	}
	for _, answer := range answers {
		result := f.choose(t, merchant, "tg:5", answer.step, answer.value)
		require.Equal(t, usecase.OutcomeAdvanced, result.Outcome, answer.step)
	}

	// A button left over from step 3 must not rewrite the stored answer.
	stale := f.choose(t, merchant, "tg:5", "region", "apac")
	assert.Equal(t, usecase.OutcomeRejected, stale.Outcome)
	assert.Equal(t, "integration", stale.Step)
	assert.Contains(t, stale.View.Text, hintStaleOption)

	sess, ok := f.session("tg:5", merchant)
	require.True(t, ok)
	assert.Equal(t, "integration", sess.Step)
	assert.Equal(t, "latam", sess.Answers["region"])

	// Typing on an option step is rejected as well.
	typed := f.say(t, merchant, "tg:5", "api")
	assert.Equal(t, usecase.OutcomeRejected, typed.Outcome)

	unknown := f.choose(t, merchant, "tg:5", "integration", "carrier-pigeon")
	assert.Equal(t, usecase.OutcomeRejected, unknown.Outcome)

	for _, answer := range []struct{ step, value string }{
		{"integration", "api"},
		{"team_size", "small"},
		{"timeline", "month"},
		{"source", "referral"},
	} {
		result := f.choose(t, merchant, "tg:5", answer.step, answer.value)
		require.Equal(t, usecase.OutcomeAdvanced, result.Outcome, answer.step)
	}

	sess, ok = f.session("tg:5", merchant)
	require.True(t, ok)
	assert.Equal(t, "confirm", sess.Step)

	done := f.choose(t, merchant, "tg:5", "confirm", flow.SubmitValue)
	assert.Equal(t, usecase.OutcomeCompleted, done.Outcome)
	assert.True(t, done.Terminal)
	assert.Contains(t, done.View.Text, "Region: Latin America")

	_, ok = f.session("tg:5", merchant)
	assert.False(t, ok)

	identity, err := f.store.identityRepo.FindByID(context.Background(), "tg:5")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, identity.Status)
	assert.Equal(t, "latam", identity.Profile["region"])
	assert.Len(t, f.messenger.SentTo(testReviewerChatID), 1)

	// Only the first render is a new message; every later step edits it.
	assert.Len(t, f.messenger.SentTo("chat-tg:5"), 1)

	late := f.choose(t, merchant, "tg:5", "confirm", flow.SubmitValue)
	assert.Equal(t, usecase.OutcomeAlreadySubmitted, late.Outcome)
	assert.Len(t, f.messenger.SentTo(testReviewerChatID), 1)

	again := f.start(t, merchant, "tg:5", "")
	assert.Equal(t, usecase.OutcomeAlreadySubmitted, again.Outcome)
}

func TestSessionEngine_AirdropValidatesTextAndBranches(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:1")
	f.store.identity(t, "tg:2")
	airdrop := entity.FlowAirdrop

	f.start(t, airdrop, "tg:2", "code-tg:1")
	assert.Equal(t, "wallet", f.choose(t, airdrop, "tg:2", "has_wallet", "yes").Step)

	bad := f.say(t, airdrop, "tg:2", "not a wallet")
	assert.Equal(t, usecase.OutcomeRejected, bad.Outcome)
	assert.Equal(t, "that does not look like a 0x wallet address", bad.Reason)

	assert.Equal(t, "email", f.say(t, airdrop, "tg:2", testWallet).Step)
	assert.Equal(t, usecase.OutcomeRejected, f.say(t, airdrop, "tg:2", "bob at example").Outcome)
	assert.Equal(t, "x_handle", f.say(t, airdrop, "tg:2", "  bob@example.com ").Step)
	assert.Equal(t, usecase.OutcomeRejected, f.say(t, airdrop, "tg:2", "@this_handle_is_far_too_long").Outcome)
	assert.Equal(t, "region", f.say(t, airdrop, "tg:2", "@bob_01").Step)
	assert.Equal(t, "confirm", f.choose(t, airdrop, "tg:2", "region", "emea").Step)

	sess, ok := f.session("tg:2", airdrop)
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", sess.Answers["email"])

	done := f.choose(t, airdrop, "tg:2", "confirm", flow.SubmitValue)
	require.Equal(t, usecase.OutcomeCompleted, done.Outcome)

	assert.Equal(t, int64(125), f.store.balance(t, entity.IdentityOwner("tg:2")))
	assert.Equal(t, int64(50), f.store.balance(t, entity.IdentityOwner("tg:1")))
}

func TestSessionEngine_AirdropSkipsWalletWithoutOne(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:2")

	f.start(t, entity.FlowAirdrop, "tg:2", "")
	result := f.choose(t, entity.FlowAirdrop, "tg:2", "has_wallet", "no")
	assert.Equal(t, "email", result.Step)
	assert.Contains(t, result.View.Text, "step 3/6")
}

func TestSessionEngine_RestartClearsAnswersAndKeepsAnchor(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:5")
	merchant := entity.FlowMerchant

	f.start(t, merchant, "tg:5", "")
	f.choose(t, merchant, "tg:5", "business_type", "retail")
	before, ok := f.session("tg:5", merchant)
	require.True(t, ok)

	restarted, err := f.engine.Restart(context.Background(), usecase.StartInput{Flow: merchant, IdentityID: "tg:5", ChatID: "chat-tg:5"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeStarted, restarted.Outcome)
	assert.Equal(t, "business_type", restarted.Step)

	after, ok := f.session("tg:5", merchant)
	require.True(t, ok)
	assert.Empty(t, after.Answers)
	assert.Equal(t, before.Anchor, after.Anchor)
	assert.Len(t, f.messenger.SentTo("chat-tg:5"), 1)
}

func TestSessionEngine_AdvanceWithoutSession(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:5")

	result := f.choose(t, entity.FlowMerchant, "tg:5", "region", "na")
	assert.Equal(t, usecase.OutcomeNoSession, result.Outcome)
	require.Len(t, result.View.Buttons, 1)
	assert.Equal(t, entity.RestartAction(), result.View.Buttons[0][0].Action)
}

func TestSessionEngine_ConfirmAfterCompletionElsewhere(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:2")
	airdrop := entity.FlowAirdrop

	f.start(t, airdrop, "tg:2", "")
	f.choose(t, airdrop, "tg:2", "has_wallet", "no")
	f.say(t, airdrop, "tg:2", "bob@example.com")
	f.say(t, airdrop, "tg:2", "bob")
	f.choose(t, airdrop, "tg:2", "region", "na")

	// Another path registers the identity before this session submits.
	_, err := f.completer.Complete(context.Background(), airdrop, "tg:2", nil, "")
	require.NoError(t, err)

	result := f.choose(t, airdrop, "tg:2", "confirm", flow.SubmitValue)
	assert.Equal(t, usecase.OutcomeAlreadySubmitted, result.Outcome)
	assert.True(t, result.Terminal)

	_, ok := f.session("tg:2", airdrop)
	assert.False(t, ok)
	assert.Equal(t, int64(100), f.store.balance(t, entity.IdentityOwner("tg:2")))
}

type failingCompleter struct {
	calls int
}

func (c *failingCompleter) Complete(context.Context, entity.FlowKind, string, map[string]string, string) (*usecase.CompletionResult, error) {
	c.calls++

	return nil, errors.New("database unavailable")
}

func TestSessionEngine_FailedSubmitKeepsSession(t *testing.T) {
	f := createTestSessionEngine(t)
	f.store.identity(t, "tg:2")
	completer := &failingCompleter{}
	engine := NewSessionEngine(SessionEngineParams{
		Flows:        flow.DefaultRegistry(),
		Store:        f.sessions,
		Messenger:    f.messenger,
		Completer:    completer,
		IdentityRepo: f.store.identityRepo,
		Logger:       newDiscardLogger(),
	})
	f.engine = engine
	airdrop := entity.FlowAirdrop

	f.start(t, airdrop, "tg:2", "")
	f.choose(t, airdrop, "tg:2", "has_wallet", "no")
	f.say(t, airdrop, "tg:2", "bob@example.com")
	f.say(t, airdrop, "tg:2", "bob")
	f.choose(t, airdrop, "tg:2", "region", "na")

	submit := entity.OptionAction("confirm", flow.SubmitValue)
	_, err := engine.Advance(context.Background(), usecase.AdvanceInput{
		Flow: airdrop, IdentityID: "tg:2", ChatID: "chat-tg:2", Option: &submit,
	})
	require.Error(t, err)
	assert.Equal(t, 1, completer.calls)

	sess, ok := f.session("tg:2", airdrop)
	require.True(t, ok)
	assert.Equal(t, "confirm", sess.Step)
	assert.Equal(t, "na", sess.Answers["region"])
}

func TestSessionEngine_UnknownFlow(t *testing.T) {
	f := createTestSessionEngine(t)

	_, err := f.engine.Start(context.Background(), usecase.StartInput{Flow: "survey", IdentityID: "tg:1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
