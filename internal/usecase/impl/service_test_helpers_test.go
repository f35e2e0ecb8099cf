package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"blip/config"
	"blip/internal/domain/entity"
	"blip/internal/domain/repository"
	"blip/internal/domain/service"
	"blip/internal/infra/persistence/postgres"
	"blip/internal/testutil/dbtest"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testReviewerID     = "tg:admin"
	testReviewerChatID = "admin-chat"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Link: &config.LinkConfig{
			BaseURL: "https://app.example.com/link",
			OTPCost: bcrypt.MinCost,
		},
		Rewards: &config.RewardsConfig{
			Registration: 100,
			Referrer:     50,
			Referred:     25,
		},
		Tasks: []config.TaskConfig{
			{ID: "join_channel", Points: 20},
			{ID: "follow_x", Points: 30, Verify: true},
		},
		Moderation: &config.ModerationConfig{
			ReviewerID:     testReviewerID,
			ReviewerChatID: testReviewerChatID,
		},
		Broadcast: &config.BroadcastConfig{
			Interval:  time.Millisecond,
			BatchSize: 2,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// testStore bundles the sqlite-backed repositories a service test needs.
type testStore struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	accountRepo  repository.AccountRepository
	tokenRepo    repository.LinkTokenRepository
	ledgerRepo   repository.LedgerRepository
	referralRepo repository.ReferralRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db := dbtest.Open(t)

	return &testStore{
		txManager:    postgres.NewTransactionManager(db),
		identityRepo: postgres.NewIdentityRepository(db),
		accountRepo:  postgres.NewAccountRepository(db),
		tokenRepo:    postgres.NewLinkTokenRepository(db),
		ledgerRepo:   postgres.NewLedgerRepository(db),
		referralRepo: postgres.NewReferralRepository(db),
	}
}

func (s *testStore) identity(t *testing.T, id string) *entity.Identity {
	t.Helper()

	identity, err := s.identityRepo.Ensure(context.Background(), &entity.Identity{
		ID:           id,
		Handle:       "user_" + id[len(id)-1:],
		ChatID:       "chat-" + id,
		ReferralCode: "code-" + id,
	})
	require.NoError(t, err)

	return identity
}

func (s *testStore) balance(t *testing.T, owner entity.Owner) int64 {
	t.Helper()

	balance, err := s.ledgerRepo.Balance(context.Background(), owner)
	require.NoError(t, err)

	return balance
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type sentMessage struct {
	To   entity.ChatRef
	View service.View
}

type editedMessage struct {
	Ref  entity.MessageRef
	View service.View
}

// recordingMessenger keeps every render in memory. Chats listed in unreachable
// fail with ErrRecipientUnreachable.
type recordingMessenger struct {
	mu          sync.Mutex
	seq         int
	sent        []sentMessage
	edits       []editedMessage
	photos      int
	unreachable map[string]bool
	failEdits   bool
}

func newRecordingMessenger() *recordingMessenger {
	return &recordingMessenger{unreachable: map[string]bool{}}
}

func (m *recordingMessenger) Send(_ context.Context, to entity.ChatRef, view service.View) (entity.MessageRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unreachable[to.ChatID] {
		return entity.MessageRef{}, service.ErrRecipientUnreachable
	}
	m.seq++
	m.sent = append(m.sent, sentMessage{To: to, View: view})

	return entity.MessageRef{ChatRef: to, MessageID: fmt.Sprint(m.seq)}, nil
}

func (m *recordingMessenger) Edit(_ context.Context, ref entity.MessageRef, view service.View) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failEdits {
		return service.ErrRecipientUnreachable
	}
	m.edits = append(m.edits, editedMessage{Ref: ref, View: view})

	return nil
}

func (m *recordingMessenger) SendPhoto(_ context.Context, to entity.ChatRef, _ []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unreachable[to.ChatID] {
		return service.ErrRecipientUnreachable
	}
	m.photos++

	return nil
}

func (m *recordingMessenger) Sent() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]sentMessage(nil), m.sent...)
}

func (m *recordingMessenger) Edits() []editedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]editedMessage(nil), m.edits...)
}

func (m *recordingMessenger) SentTo(chatID string) []sentMessage {
	var out []sentMessage
	for _, msg := range m.Sent() {
		if msg.To.ChatID == chatID {
			out = append(out, msg)
		}
	}

	return out
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}
