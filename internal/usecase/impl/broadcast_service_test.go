package impl

import (
	"context"
	"testing"
	"time"

	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/domain/flow"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	mockSvc "blip/internal/mocks/service"
	"blip/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type broadcastFixture struct {
	svc       usecase.BroadcastUsecase
	store     *testStore
	messenger *recordingMessenger
	publisher *mockSvc.MockEventPublisher
}

func createTestBroadcastService(t *testing.T, interval time.Duration, lc fx.Lifecycle) *broadcastFixture {
	t.Helper()

	cfg := newTestConfig()
	cfg.Broadcast.Interval = interval
	store := newTestStore(t)
	messenger := newRecordingMessenger()
	publisher := mockSvc.NewMockEventPublisher(t)

	moderation := NewModerationService(ModerationServiceParams{
		TxManager:    store.txManager,
		IdentityRepo: store.identityRepo,
		Messenger:    messenger,
		Publisher:    publisher,
		Flows:        flow.DefaultRegistry(),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	svc := NewBroadcastService(BroadcastServiceParams{
		Lc:           lc,
		IdentityRepo: store.identityRepo,
		Messenger:    messenger,
		Publisher:    publisher,
		Moderation:   moderation,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return &broadcastFixture{svc: svc, store: store, messenger: messenger, publisher: publisher}
}

// audience creates tg:1..tg:5 with chats, tg:6 without one, and makes chat-tg:3 unreachable.
func (f *broadcastFixture) audience(t *testing.T) {
	t.Helper()

	for _, id := range []string{"tg:1", "tg:2", "tg:3", "tg:4", "tg:5"} {
		f.store.identity(t, id)
	}
	_, err := f.store.identityRepo.Ensure(context.Background(), &entity.Identity{ID: "tg:6", ReferralCode: "code-tg:6"})
	require.NoError(t, err)

	f.messenger.unreachable["chat-tg:3"] = true
}

func TestBroadcastService_Run_CountsFailures(t *testing.T) {
	f := createTestBroadcastService(t, time.Millisecond, nil)
	f.audience(t)

	summary, err := f.svc.Run(context.Background(), entity.FlowAirdrop, repository.IdentityFilter{}, "gm")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Sent)
	assert.Equal(t, 2, summary.Failed)

	sent := f.messenger.Sent()
	require.Len(t, sent, 4)
	for _, msg := range sent {
		assert.Equal(t, entity.FlowAirdrop, msg.To.Bot)
		assert.Equal(t, "gm", msg.View.Text)
	}
}

func TestBroadcastService_Run_Filter(t *testing.T) {
	f := createTestBroadcastService(t, time.Millisecond, nil)
	f.audience(t)
	_, err := f.store.identityRepo.MarkRegistered(context.Background(), "tg:2", nil, time.Now().UTC())
	require.NoError(t, err)

	filter, err := usecase.ParseBroadcastFilter("registered")
	require.NoError(t, err)

	summary, err := f.svc.Run(context.Background(), entity.FlowAirdrop, filter, "gm")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Zero(t, summary.Failed)
	assert.Len(t, f.messenger.SentTo("chat-tg:2"), 1)
}

func TestBroadcastService_Run_StopsWhenCancelled(t *testing.T) {
	f := createTestBroadcastService(t, time.Hour, nil)
	f.audience(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summary, err := f.svc.Run(ctx, entity.FlowAirdrop, repository.IdentityFilter{}, "gm")
	require.Error(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Sent)
}

func TestBroadcastService_Dispatch_Authorization(t *testing.T) {
	f := createTestBroadcastService(t, time.Millisecond, nil)

	_, err := f.svc.Dispatch(context.Background(), usecase.DispatchInput{InitiatorID: "tg:1", Message: "gm"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = f.svc.Dispatch(context.Background(), usecase.DispatchInput{InitiatorID: testReviewerID, Message: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	assert.Empty(t, f.messenger.Sent())
}

func TestBroadcastService_Dispatch_ReportsToInitiator(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	f := createTestBroadcastService(t, time.Millisecond, lc)
	f.audience(t)
	lc.RequireStart()

	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == constants.EventBroadcastCompleted &&
				event.Attributes["sent"] == "4" &&
				event.Attributes["failed"] == "2"
		})).
		Return(nil).
		Once()

	initiator := entity.ChatRef{Bot: entity.FlowMerchant, ChatID: testReviewerChatID}
	jobID, err := f.svc.Dispatch(context.Background(), usecase.DispatchInput{
		InitiatorID: testReviewerID,
		Initiator:   initiator,
		Message:     "new tiers are live",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, jobID.String())

	// Stopping the app drains the detached run.
	lc.RequireStop()

	reports := f.messenger.SentTo(testReviewerChatID)
	require.Len(t, reports, 1)
	assert.Equal(t, "Broadcast finished: 4 sent, 2 failed.", reports[0].View.Text)
	assert.Equal(t, entity.FlowMerchant, reports[0].To.Bot)
	assert.Len(t, f.messenger.SentTo("chat-tg:1"), 1)
}

func TestBroadcastService_Wait_CancelsOnDeadline(t *testing.T) {
	f := createTestBroadcastService(t, time.Hour, nil)
	f.audience(t)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.Dispatch(context.Background(), usecase.DispatchInput{
		InitiatorID: testReviewerID,
		Initiator:   entity.ChatRef{Bot: entity.FlowMerchant, ChatID: testReviewerChatID},
		Message:     "gm",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = f.svc.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	reports := f.messenger.SentTo(testReviewerChatID)
	require.Len(t, reports, 1)
	assert.Equal(t, "Broadcast stopped early: 1 sent, 0 failed.", reports[0].View.Text)
}
