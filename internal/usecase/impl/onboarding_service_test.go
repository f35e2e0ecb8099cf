package impl

import (
	"context"
	"sync"
	"testing"

	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onboardingFixture struct {
	completer usecase.FlowCompleter
	ledger    usecase.LedgerUsecase
	store     *testStore
	messenger *recordingMessenger
	publisher *recordingPublisher
}

func createTestOnboardingService(t *testing.T) *onboardingFixture {
	t.Helper()

	cfg := newTestConfig()
	store := newTestStore(t)
	messenger := newRecordingMessenger()
	publisher := &recordingPublisher{}
	logger := newDiscardLogger()

	ledger := NewLedgerService(LedgerServiceParams{
		TxManager:    store.txManager,
		IdentityRepo: store.identityRepo,
		LedgerRepo:   store.ledgerRepo,
		ReferralRepo: store.referralRepo,
		Config:       cfg,
		Logger:       logger,
	})
	moderation := NewModerationService(ModerationServiceParams{
		TxManager:    store.txManager,
		IdentityRepo: store.identityRepo,
		Messenger:    messenger,
		Publisher:    publisher,
		Flows:        flow.DefaultRegistry(),
		Config:       cfg,
		Logger:       logger,
	})
	completer := NewOnboardingService(OnboardingServiceParams{
		TxManager:  store.txManager,
		Ledger:     ledger,
		Moderation: moderation,
		Publisher:  publisher,
		Config:     cfg,
		Logger:     logger,
	})

	return &onboardingFixture{
		completer: completer,
		ledger:    ledger,
		store:     store,
		messenger: messenger,
		publisher: publisher,
	}
}

func TestOnboardingService_SubmitApplication(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:5")

	answers := map[string]string{"business_type": "retail", entity.ProfileMonthlyVolume: string(entity.VolumeUnder10K)}
	result, err := f.completer.Complete(ctx, entity.FlowMerchant, "tg:5", answers, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, result.Identity.Status)
	assert.NotNil(t, result.Identity.SubmittedAt)
	assert.Equal(t, "retail", result.Identity.Profile["business_type"])

	assert.Len(t, f.messenger.SentTo(testReviewerChatID), 1)
	assert.Equal(t, []string{constants.EventIdentitySubmitted}, f.publisher.Types())

	_, err = f.completer.Complete(ctx, entity.FlowMerchant, "tg:5", answers, "")
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSubmission)
	assert.Len(t, f.messenger.SentTo(testReviewerChatID), 1)
}

func TestOnboardingService_Register(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	f.store.identity(t, "tg:2")

	result, err := f.completer.Complete(ctx, entity.FlowAirdrop, "tg:2", map[string]string{"email": "b@example.com"}, "code-tg:1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), result.Awarded)
	assert.NotNil(t, result.Identity.RegisteredAt)
	require.NotNil(t, result.Referral)
	assert.Equal(t, "tg:1", result.Referral.Edge.ReferrerID)

	assert.Equal(t, int64(125), f.store.balance(t, entity.IdentityOwner("tg:2")))
	assert.Equal(t, int64(50), f.store.balance(t, entity.IdentityOwner("tg:1")))
	assert.Equal(t, []string{constants.EventIdentityRegistered}, f.publisher.Types())

	_, err = f.completer.Complete(ctx, entity.FlowAirdrop, "tg:2", map[string]string{"email": "b@example.com"}, "code-tg:1")
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSubmission)
	assert.Equal(t, int64(125), f.store.balance(t, entity.IdentityOwner("tg:2")))
}

func TestOnboardingService_Register_BadReferralKeepsRegistration(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:2")

	for _, code := range []string{"missing-code", "code-tg:2"} {
		t.Run(code, func(t *testing.T) {
			_, _ = f.completer.Complete(ctx, entity.FlowAirdrop, "tg:2", nil, code)

			identity, err := f.store.identityRepo.FindByID(ctx, "tg:2")
			require.NoError(t, err)
			assert.NotNil(t, identity.RegisteredAt)
			assert.Equal(t, int64(100), f.store.balance(t, entity.IdentityOwner("tg:2")))
		})
	}
}

func TestOnboardingService_ConcurrentRegistrationCreditsOnce(t *testing.T) {
	f := createTestOnboardingService(t)
	f.store.identity(t, "tg:2")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.completer.Complete(context.Background(), entity.FlowAirdrop, "tg:2", map[string]string{"region": "na"}, "")
			if err == nil {
				mu.Lock()
				completed++
				mu.Unlock()

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrDuplicateSubmission)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, completed)
	assert.Equal(t, int64(100), f.store.balance(t, entity.IdentityOwner("tg:2")))
}

func TestOnboardingService_ProfilesMergeAcrossFlows(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:3")

	_, err := f.completer.Complete(ctx, entity.FlowAirdrop, "tg:3", map[string]string{"x_handle": "alice", "region": "apac"}, "")
	require.NoError(t, err)

	result, err := f.completer.Complete(ctx, entity.FlowMerchant, "tg:3", map[string]string{"business_type": "services", "region": "emea"}, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"x_handle":      "alice",
		"business_type": "services",
		"region":        "emea",
	}, result.Identity.Profile)
}

func TestOnboardingService_UnknownIdentityOrFlow(t *testing.T) {
	f := createTestOnboardingService(t)

	_, err := f.completer.Complete(context.Background(), entity.FlowAirdrop, "tg:404", nil, "")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)

	_, err = f.completer.Complete(context.Background(), entity.FlowKind("survey"), "tg:404", nil, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
