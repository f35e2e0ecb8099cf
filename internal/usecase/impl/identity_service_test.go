package impl

import (
	"context"
	"regexp"
	"testing"

	domainerrors "blip/internal/domain/errors"
	"blip/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestIdentityService(t *testing.T) (*identityService, *testStore) {
	t.Helper()

	store := newTestStore(t)
	svc := NewIdentityService(IdentityServiceParams{
		IdentityRepo: store.identityRepo,
		Logger:       newDiscardLogger(),
	}).(*identityService)

	return svc, store
}

func TestIdentityService_Ensure(t *testing.T) {
	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	identity, err := svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:1", Handle: "@Alice", ChatID: "100"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", identity.Handle)
	assert.Regexp(t, regexp.MustCompile(`^alice-[a-z2-9]{6}$`), identity.ReferralCode)

	// A renamed user keeps their referral code.
	renamed, err := svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:1", Handle: "alice_v2", ChatID: "101"})
	require.NoError(t, err)
	assert.Equal(t, "alice_v2", renamed.Handle)
	assert.Equal(t, "101", renamed.ChatID)
	assert.Equal(t, identity.ReferralCode, renamed.ReferralCode)

	_, err = svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestIdentityService_Ensure_RetriesReferralCodeCollision(t *testing.T) {
	svc, _ := createTestIdentityService(t)
	ctx := context.Background()

	codes := []string{"taken", "taken", "fresh"}
	svc.newCode = func(string) string {
		code := codes[0]
		codes = codes[1:]

		return code
	}

	_, err := svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:1", Handle: "a"})
	require.NoError(t, err)

	identity, err := svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:2", Handle: "b"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", identity.ReferralCode)
}

func TestIdentityService_Ensure_GivesUpAfterRetries(t *testing.T) {
	svc, _ := createTestIdentityService(t)
	svc.newCode = func(string) string { return "taken" }
	ctx := context.Background()

	_, err := svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:1"})
	require.NoError(t, err)

	_, err = svc.Ensure(ctx, usecase.EnsureIdentityInput{ID: "tg:2"})
	assert.Error(t, err)
}

func TestNewReferralCode(t *testing.T) {
	tests := []struct {
		handle string
		prefix string
	}{
		{handle: "Bob", prefix: "bob-"},
		{handle: "", prefix: "ref-"},
		{handle: "a very long handle name", prefix: "a-very-long-"},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			code := newReferralCode(tt.handle)
			assert.Len(t, code, len(tt.prefix)+referralSuffixLen)
			assert.Equal(t, tt.prefix, code[:len(tt.prefix)])
		})
	}
}
