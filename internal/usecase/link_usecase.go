package usecase

import (
	"context"
	"time"

	"blip/internal/domain/entity"

	"github.com/google/uuid"
)

// IssueOutput holds the plaintext secrets of a fresh grant. They are never stored.
type IssueOutput struct {
	OTP         string
	OpaqueToken string
	// URL embeds only the opaque token.
	URL       string
	QRCode    []byte
	Role      entity.Role
	ExpiresAt time.Time
}

// LinkResult is returned after a successful redemption.
type LinkResult struct {
	AccountID       uuid.UUID
	IdentityID      string
	Role            entity.Role
	AccountBalance  int64
	IdentityBalance int64
	CombinedBalance int64
}

// LinkUsecase binds chat identities to web accounts with one-time grants.
type LinkUsecase interface {
	// Issue supersedes every unconsumed grant of the identity and creates a new one.
	Issue(ctx context.Context, identityID string, role entity.Role) (*IssueOutput, error)

	RedeemByToken(ctx context.Context, token string, accountID uuid.UUID) (*LinkResult, error)

	// RedeemByOTP counts failed attempts against the identity's active grant.
	RedeemByOTP(ctx context.Context, identityID, otp string, accountID uuid.UUID) (*LinkResult, error)

	// PurgeExpired deletes grants that expired or were consumed before olderThan.
	PurgeExpired(ctx context.Context, olderThan time.Time) (int64, error)
}
