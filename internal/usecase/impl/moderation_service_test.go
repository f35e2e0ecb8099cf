package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"blip/config"
	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/domain/repository"
	"blip/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moderationFixture struct {
	svc       *moderationService
	store     *testStore
	messenger *recordingMessenger
	publisher *recordingPublisher
}

func createTestModerationService(t *testing.T, cfg *config.Config) *moderationFixture {
	t.Helper()

	store := newTestStore(t)
	messenger := newRecordingMessenger()
	publisher := &recordingPublisher{}

	svc := NewModerationService(ModerationServiceParams{
		TxManager:    store.txManager,
		IdentityRepo: store.identityRepo,
		Messenger:    messenger,
		Publisher:    publisher,
		Flows:        flow.DefaultRegistry(),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*moderationService)
	svc.now = newFixedClock().Now

	return &moderationFixture{svc: svc, store: store, messenger: messenger, publisher: publisher}
}

func (f *moderationFixture) applicant(t *testing.T, id string, bracket entity.VolumeBracket) *entity.Identity {
	t.Helper()

	f.store.identity(t, id)
	ok, err := f.store.identityRepo.MarkSubmitted(context.Background(), id, map[string]string{
		"business_type":             "retail",
		entity.ProfileMonthlyVolume: string(bracket),
	}, f.svc.now())
	require.NoError(t, err)
	require.True(t, ok)

	identity, err := f.store.identityRepo.FindByID(context.Background(), id)
	require.NoError(t, err)

	return identity
}

func promptRef() *entity.MessageRef {
	return &entity.MessageRef{
		ChatRef:   entity.ChatRef{Bot: entity.FlowMerchant, ChatID: testReviewerChatID},
		MessageID: "77",
	}
}

func TestModerationService_Enqueue(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	identity := f.applicant(t, "tg:5", entity.Volume100KTo1M)

	require.NoError(t, f.svc.Enqueue(context.Background(), identity))

	prompts := f.messenger.SentTo(testReviewerChatID)
	require.Len(t, prompts, 1)
	assert.Equal(t, entity.FlowMerchant, prompts[0].To.Bot)
	assert.Contains(t, prompts[0].View.Text, "Business type: Retail")
	assert.Contains(t, prompts[0].View.Text, "Tier: scale")

	buttons := prompts[0].View.Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, entity.ModerateAction(entity.DecisionApprove, "tg:5"), buttons[0][0].Action)
	assert.Equal(t, entity.ModerateAction(entity.DecisionReject, "tg:5"), buttons[0][1].Action)
	assert.Equal(t, entity.ModerateAction(entity.DecisionFlag, "tg:5"), buttons[1][0].Action)
}

func TestModerationService_Enqueue_WithoutReviewerChat(t *testing.T) {
	cfg := newTestConfig()
	cfg.Moderation.ReviewerChatID = ""
	f := createTestModerationService(t, cfg)
	identity := f.applicant(t, "tg:5", entity.VolumeUnder10K)

	require.NoError(t, f.svc.Enqueue(context.Background(), identity))
	assert.Empty(t, f.messenger.Sent())
}

func TestModerationService_Decide_UnauthorizedBeforeLookup(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	f.applicant(t, "tg:5", entity.VolumeUnder10K)

	tests := []struct {
		name       string
		identityID string
		reviewerID string
	}{
		{name: "applicant decides own application", identityID: "tg:5", reviewerID: "tg:5"},
		{name: "unknown identity", identityID: "tg:404", reviewerID: "tg:6"},
		{name: "empty reviewer", identityID: "tg:5", reviewerID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Decide(context.Background(), usecase.DecideInput{
				IdentityID: tt.identityID,
				Decision:   entity.DecisionApprove,
				ReviewerID: tt.reviewerID,
			})
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}

	identity, err := f.store.identityRepo.FindByID(context.Background(), "tg:5")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, identity.Status)
}

func TestModerationService_Decide_ApproveCreditsTier(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	ctx := context.Background()
	f.applicant(t, "tg:5", entity.Volume10KTo100K)

	ack, err := f.svc.Decide(ctx, usecase.DecideInput{
		IdentityID: "tg:5",
		Decision:   entity.DecisionApprove,
		ReviewerID: testReviewerID,
		Prompt:     promptRef(),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.AckApproved, ack.Outcome)
	assert.Equal(t, entity.StatusApproved, ack.Identity.Status)
	assert.Equal(t, testReviewerID, ack.Identity.DecidedBy)
	assert.Equal(t, int64(1500), f.store.balance(t, entity.IdentityOwner("tg:5")))

	edits := f.messenger.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, *promptRef(), edits[0].Ref)
	require.Len(t, edits[0].View.Buttons, 1)
	assert.Equal(t, "Approved", edits[0].View.Buttons[0][0].Label)
	assert.Equal(t, entity.DecidedAction("tg:5"), edits[0].View.Buttons[0][0].Action)

	notices := f.messenger.SentTo("chat-tg:5")
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0].View.Text, "approved")
	assert.Equal(t, []string{constants.EventIdentityDecided}, f.publisher.Types())
}

func TestModerationService_Decide_SecondDecisionIsAcknowledged(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	ctx := context.Background()
	f.applicant(t, "tg:5", entity.VolumeOver1M)

	input := usecase.DecideInput{IdentityID: "tg:5", Decision: entity.DecisionReject, ReviewerID: testReviewerID}
	ack, err := f.svc.Decide(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.AckRejected, ack.Outcome)

	input.Decision = entity.DecisionApprove
	ack, err = f.svc.Decide(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.AckAlreadyDecided, ack.Outcome)
	assert.Equal(t, entity.StatusRejected, ack.Identity.Status)
	assert.Equal(t, "Already rejected.", ack.Text)

	assert.Zero(t, f.store.balance(t, entity.IdentityOwner("tg:5")))
	assert.Len(t, f.messenger.SentTo("chat-tg:5"), 1)
	assert.Len(t, f.publisher.Types(), 1)
}

// lostDecisionRepository records a competing decision inside the transaction and reports its own as lost.
type lostDecisionRepository struct {
	repository.IdentityRepository
	winner entity.ApplicationStatus
}

func (r *lostDecisionRepository) Decide(ctx context.Context, id string, _ entity.ApplicationStatus, reviewer string, at time.Time) (bool, error) {
	if _, err := r.IdentityRepository.Decide(ctx, id, r.winner, reviewer, at); err != nil {
		return false, err
	}

	return false, nil
}

type lostDecisionFactory struct {
	repository.RepositoryFactory
	winner entity.ApplicationStatus
}

func (f *lostDecisionFactory) NewIdentityRepository() repository.IdentityRepository {
	return &lostDecisionRepository{IdentityRepository: f.RepositoryFactory.NewIdentityRepository(), winner: f.winner}
}

type lostDecisionTxManager struct {
	inner  repository.TransactionManager
	winner entity.ApplicationStatus
}

func (m *lostDecisionTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.inner.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(&lostDecisionFactory{RepositoryFactory: factory, winner: m.winner})
	})
}

func TestModerationService_Decide_LostRaceReportsWinningStatus(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	f.applicant(t, "tg:5", entity.Volume10KTo100K)
	f.svc.txManager = &lostDecisionTxManager{inner: f.store.txManager, winner: entity.StatusRejected}

	ack, err := f.svc.Decide(context.Background(), usecase.DecideInput{
		IdentityID: "tg:5",
		Decision:   entity.DecisionApprove,
		ReviewerID: testReviewerID,
		Prompt:     promptRef(),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.AckAlreadyDecided, ack.Outcome)
	assert.Equal(t, entity.StatusRejected, ack.Identity.Status)
	assert.Equal(t, "Already rejected.", ack.Text)
	assert.Zero(t, f.store.balance(t, entity.IdentityOwner("tg:5")))

	edits := f.messenger.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, "Rejected", edits[0].View.Buttons[0][0].Label)
}

func TestModerationService_Decide_ConcurrentDecisionsApplyOnce(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	f.applicant(t, "tg:5", entity.Volume10KTo100K)

	decisions := []entity.Decision{entity.DecisionApprove, entity.DecisionReject, entity.DecisionApprove, entity.DecisionReject}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for _, decision := range decisions {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ack, err := f.svc.Decide(context.Background(), usecase.DecideInput{
				IdentityID: "tg:5",
				Decision:   decision,
				ReviewerID: testReviewerID,
			})
			if !assert.NoError(t, err) {
				return
			}
			if ack.Outcome != usecase.AckAlreadyDecided {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	assert.Len(t, f.publisher.Types(), 1)
}

func TestModerationService_Decide_NotPending(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	f.store.identity(t, "tg:5")

	_, err := f.svc.Decide(context.Background(), usecase.DecideInput{
		IdentityID: "tg:5",
		Decision:   entity.DecisionApprove,
		ReviewerID: testReviewerID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotPending)

	_, err = f.svc.Decide(context.Background(), usecase.DecideInput{
		IdentityID: "tg:404",
		Decision:   entity.DecisionApprove,
		ReviewerID: testReviewerID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}

func TestModerationService_Flag_KeepsPromptActionable(t *testing.T) {
	f := createTestModerationService(t, newTestConfig())
	ctx := context.Background()
	f.applicant(t, "tg:5", entity.VolumeUnder10K)

	ack, err := f.svc.Decide(ctx, usecase.DecideInput{
		IdentityID: "tg:5",
		Decision:   entity.DecisionFlag,
		ReviewerID: testReviewerID,
		Prompt:     promptRef(),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.AckFlagged, ack.Outcome)
	assert.True(t, ack.Identity.Flagged)
	assert.Equal(t, entity.StatusPending, ack.Identity.Status)

	edits := f.messenger.Edits()
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0].View.Text, "Flagged")
	assert.Len(t, edits[0].View.Buttons, 2)

	ack, err = f.svc.Decide(ctx, usecase.DecideInput{
		IdentityID: "tg:5",
		Decision:   entity.DecisionApprove,
		ReviewerID: testReviewerID,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.AckApproved, ack.Outcome)
	assert.True(t, ack.Identity.Flagged)
}
