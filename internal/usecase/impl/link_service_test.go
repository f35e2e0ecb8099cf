package impl

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"blip/internal/domain/constants"
	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"
	"blip/internal/infra/auth"
	mockSvc "blip/internal/mocks/service"
	"blip/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sequenceGenerator hands out predictable secrets: OTP 111111 with token
// token-1, then 222222 with token-2, and so on.
type sequenceGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceGenerator) Generate() (string, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	digit := g.n % 10

	return fmt.Sprintf("%d%d%d%d%d%d", digit, digit, digit, digit, digit, digit), fmt.Sprintf("token-%d", g.n), nil
}

type linkFixture struct {
	svc       *linkService
	store     *testStore
	clock     *fixedClock
	messenger *recordingMessenger
	publisher *recordingPublisher
}

func createTestLinkService(t *testing.T) *linkFixture {
	t.Helper()

	cfg := newTestConfig()
	store := newTestStore(t)
	clock := newFixedClock()
	messenger := newRecordingMessenger()
	publisher := &recordingPublisher{}

	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().Encode(mock.Anything).Return([]byte("png"), nil).Maybe()

	svc := NewLinkService(LinkServiceParams{
		TxManager: store.txManager,
		TokenRepo: store.tokenRepo,
		Hasher:    auth.NewBcryptHasher(cfg),
		Generator: &sequenceGenerator{},
		QRCode:    qr,
		Messenger: messenger,
		Publisher: publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*linkService)
	svc.now = clock.Now

	return &linkFixture{svc: svc, store: store, clock: clock, messenger: messenger, publisher: publisher}
}

func (f *linkFixture) account(t *testing.T, email string) uuid.UUID {
	t.Helper()

	account, err := f.store.accountRepo.Ensure(context.Background(), &entity.Account{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: f.clock.Now(),
		UpdatedAt: f.clock.Now(),
	})
	require.NoError(t, err)

	return account.ID
}

func (f *linkFixture) issue(t *testing.T, identityID string, role entity.Role) *usecase.IssueOutput {
	t.Helper()

	out, err := f.svc.Issue(context.Background(), identityID, role)
	require.NoError(t, err)

	return out
}

func TestLinkService_Issue(t *testing.T) {
	f := createTestLinkService(t)
	f.store.identity(t, "tg:1")

	out := f.issue(t, "tg:1", entity.RoleMerchant)
	assert.Equal(t, "111111", out.OTP)
	assert.Equal(t, "token-1", out.OpaqueToken)
	assert.Equal(t, entity.RoleMerchant, out.Role)
	assert.Equal(t, f.clock.Now().Add(10*time.Minute), out.ExpiresAt)
	assert.Equal(t, []byte("png"), out.QRCode)

	u, err := url.Parse(out.URL)
	require.NoError(t, err)
	assert.Equal(t, "token-1", u.Query().Get("token"))
	assert.Empty(t, u.Query().Get("role"))

	grants, err := f.store.tokenRepo.ListByIdentity(context.Background(), "tg:1", 10)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.NotEqual(t, "111111", grants[0].OTPHash)
	assert.NotEqual(t, "token-1", grants[0].TokenHash)
}

func TestLinkService_Issue_Errors(t *testing.T) {
	f := createTestLinkService(t)

	_, err := f.svc.Issue(context.Background(), "tg:404", entity.RoleUser)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)

	f.store.identity(t, "tg:1")
	_, err = f.svc.Issue(context.Background(), "tg:1", entity.Role("admin"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestLinkService_NewGrantSupersedesOld(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")

	first := f.issue(t, "tg:1", entity.RoleUser)
	second := f.issue(t, "tg:1", entity.RoleUser)

	_, err := f.svc.RedeemByToken(ctx, first.OpaqueToken, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenConsumed)

	// The superseded OTP is recognised but refused.
	_, err = f.svc.RedeemByOTP(ctx, "tg:1", first.OTP, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenConsumed)

	result, err := f.svc.RedeemByToken(ctx, second.OpaqueToken, accountID)
	require.NoError(t, err)
	assert.Equal(t, "tg:1", result.IdentityID)
	assert.Equal(t, accountID, result.AccountID)
}

func TestLinkService_ConcurrentIssueLeavesOneActiveGrant(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Issue(ctx, "tg:1", entity.RoleUser)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	grants, err := f.store.tokenRepo.ListByIdentity(ctx, "tg:1", workers*2)
	require.NoError(t, err)
	assert.Len(t, grants, workers)

	active := 0
	for _, grant := range grants {
		if !grant.IsConsumed() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestLinkService_RedeemByToken_CombinesBalances(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")

	_, err := appendAward(ctx, f.store.ledgerRepo, usecase.AwardInput{
		Owner: entity.IdentityOwner("tg:1"), Kind: entity.EventRegistrationBonus, Amount: 100,
	}, f.clock.Now())
	require.NoError(t, err)
	_, err = appendAward(ctx, f.store.ledgerRepo, usecase.AwardInput{
		Owner: entity.AccountOwner(accountID), Kind: entity.EventAdjustment, Amount: 10,
	}, f.clock.Now())
	require.NoError(t, err)

	out := f.issue(t, "tg:1", entity.RoleMerchant)
	result, err := f.svc.RedeemByToken(ctx, out.OpaqueToken, accountID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMerchant, result.Role)
	assert.Equal(t, int64(10), result.AccountBalance)
	assert.Equal(t, int64(100), result.IdentityBalance)
	assert.Equal(t, int64(110), result.CombinedBalance)

	account, err := f.store.accountRepo.FindByID(ctx, accountID)
	require.NoError(t, err)
	require.True(t, account.IsLinked())
	assert.Equal(t, "tg:1", *account.IdentityID)

	notices := f.messenger.SentTo("chat-tg:1")
	require.Len(t, notices, 1)
	assert.Equal(t, entity.FlowMerchant, notices[0].To.Bot)
	assert.Contains(t, notices[0].View.Text, "110")
	assert.Equal(t, []string{constants.EventAccountLinked}, f.publisher.Types())
}

func TestLinkService_RedeemByToken_Errors(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")

	_, err := f.svc.RedeemByToken(ctx, "token-unknown", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)

	out := f.issue(t, "tg:1", entity.RoleUser)
	_, err = f.svc.RedeemByToken(ctx, out.OpaqueToken, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	_, err = f.svc.RedeemByToken(ctx, out.OpaqueToken, accountID)
	require.NoError(t, err)

	_, err = f.svc.RedeemByToken(ctx, out.OpaqueToken, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenConsumed)
}

func TestLinkService_RedeemByToken_ExpiresAtHardCutoff(t *testing.T) {
	f := createTestLinkService(t)
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")
	out := f.issue(t, "tg:1", entity.RoleUser)

	f.clock.Advance(10 * time.Minute)

	_, err := f.svc.RedeemByToken(context.Background(), out.OpaqueToken, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestLinkService_RedeemByOTP_AttemptsExceededOnSixthTry(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")
	out := f.issue(t, "tg:1", entity.RoleUser)

	for attempt := 1; attempt <= 5; attempt++ {
		_, err := f.svc.RedeemByOTP(ctx, "tg:1", "000000", accountID)
		require.ErrorIs(t, err, domainerrors.ErrInvalidOTP, "attempt %d", attempt)
	}

	_, err := f.svc.RedeemByOTP(ctx, "tg:1", "000000", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrAttemptsExceeded)

	// The grant is burned: even the right code is refused now.
	_, err = f.svc.RedeemByOTP(ctx, "tg:1", out.OTP, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrAttemptsExceeded)

	_, err = f.svc.RedeemByToken(ctx, out.OpaqueToken, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrAttemptsExceeded)

	// A fresh grant starts over.
	fresh := f.issue(t, "tg:1", entity.RoleUser)
	_, err = f.svc.RedeemByOTP(ctx, "tg:1", fresh.OTP, accountID)
	assert.NoError(t, err)
}

func TestLinkService_RedeemByOTP_CorrectCodeOnFifthAttempt(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")
	out := f.issue(t, "tg:1", entity.RoleUser)

	for range 4 {
		_, err := f.svc.RedeemByOTP(ctx, "tg:1", "000000", accountID)
		require.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	}

	result, err := f.svc.RedeemByOTP(ctx, "tg:1", out.OTP, accountID)
	require.NoError(t, err)
	assert.Equal(t, "tg:1", result.IdentityID)

	_, err = f.svc.RedeemByOTP(ctx, "tg:1", out.OTP, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenConsumed)
}

func TestLinkService_RedeemByOTP_Rejections(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	f.store.identity(t, "tg:2")
	accountID := f.account(t, "a@example.com")

	_, err := f.svc.RedeemByOTP(ctx, "tg:1", "12ab56", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = f.svc.RedeemByOTP(ctx, "tg:2", "123456", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)

	_, err = f.svc.RedeemByOTP(ctx, "tg:404", "123456", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)

	out := f.issue(t, "tg:1", entity.RoleUser)
	f.clock.Advance(11 * time.Minute)

	_, err = f.svc.RedeemByOTP(ctx, "tg:1", "000000", accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	_, err = f.svc.RedeemByOTP(ctx, "tg:1", out.OTP, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)

	grants, err := f.store.tokenRepo.ListByIdentity(ctx, "tg:1", 10)
	require.NoError(t, err)
	assert.Zero(t, grants[0].Attempts)
}

func TestLinkService_AccountAndIdentityLinkOnce(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	f.store.identity(t, "tg:2")
	first := f.account(t, "a@example.com")
	second := f.account(t, "b@example.com")

	out := f.issue(t, "tg:1", entity.RoleUser)
	_, err := f.svc.RedeemByToken(ctx, out.OpaqueToken, first)
	require.NoError(t, err)

	other := f.issue(t, "tg:2", entity.RoleUser)
	_, err = f.svc.RedeemByToken(ctx, other.OpaqueToken, first)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyLinked)

	again := f.issue(t, "tg:1", entity.RoleUser)
	_, err = f.svc.RedeemByToken(ctx, again.OpaqueToken, second)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyLinked)

	// Failed redemptions leave the grant usable.
	grants, err := f.store.tokenRepo.ListByIdentity(ctx, "tg:2", 10)
	require.NoError(t, err)
	assert.False(t, grants[0].IsConsumed())
}

func TestLinkService_ConcurrentRedeemLinksOnce(t *testing.T) {
	f := createTestLinkService(t)
	f.store.identity(t, "tg:1")
	accountID := f.account(t, "a@example.com")
	out := f.issue(t, "tg:1", entity.RoleUser)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := f.svc.RedeemByToken(context.Background(), out.OpaqueToken, accountID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestLinkService_PurgeExpired(t *testing.T) {
	f := createTestLinkService(t)
	ctx := context.Background()
	f.store.identity(t, "tg:1")
	f.store.identity(t, "tg:2")

	f.issue(t, "tg:1", entity.RoleUser)
	f.issue(t, "tg:1", entity.RoleUser)
	f.clock.Advance(time.Hour)
	f.issue(t, "tg:2", entity.RoleUser)

	purged, err := f.svc.PurgeExpired(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	grants, err := f.store.tokenRepo.ListByIdentity(ctx, "tg:2", 10)
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}
