package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsumeReason records why a link token stopped being redeemable.
type ConsumeReason string

const (
	ConsumeRedeemed   ConsumeReason = "redeemed"
	ConsumeSuperseded ConsumeReason = "superseded"
	ConsumeBurned     ConsumeReason = "burned"
)

// LinkToken is a one-time grant that lets a web account claim a chat identity.
// Only hashes of the OTP and the opaque token are stored.
type LinkToken struct {
	ID             uuid.UUID
	IdentityID     string
	Role           Role
	OTPHash        string
	TokenHash      string
	Attempts       int
	ExpiresAt      time.Time
	ConsumedAt     *time.Time
	ConsumedReason ConsumeReason
	ConsumedBy     *uuid.UUID
	CreatedAt      time.Time
}

// IsConsumed reports whether the grant was redeemed, superseded or burned.
func (t *LinkToken) IsConsumed() bool {
	return t.ConsumedAt != nil
}

// IsExpired uses a hard cut-off: a token is expired at exactly ExpiresAt.
func (t *LinkToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
