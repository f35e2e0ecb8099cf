package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerKind distinguishes the two kinds of point holders.
type OwnerKind string

const (
	OwnerIdentity OwnerKind = "identity"
	OwnerAccount  OwnerKind = "account"
)

// Owner identifies whose balance a ledger entry counts towards.
type Owner struct {
	Kind OwnerKind
	ID   string
}

// IdentityOwner returns the ledger owner for a chat identity.
func IdentityOwner(identityID string) Owner {
	return Owner{Kind: OwnerIdentity, ID: identityID}
}

// AccountOwner returns the ledger owner for a web account.
func AccountOwner(accountID uuid.UUID) Owner {
	return Owner{Kind: OwnerAccount, ID: accountID.String()}
}

// IsValid checks the owner kind and that an id is present.
func (o Owner) IsValid() bool {
	return (o.Kind == OwnerIdentity || o.Kind == OwnerAccount) && o.ID != ""
}

func (o Owner) String() string {
	return string(o.Kind) + ":" + o.ID
}

// EventKind is the closed set of reasons points can be credited for.
type EventKind string

const (
	EventRegistrationBonus  EventKind = "registration_bonus"
	EventTaskCompletion     EventKind = "task_completion"
	EventReferralReferrer   EventKind = "referral_referrer"
	EventReferralReferred   EventKind = "referral_referred"
	EventModerationApproval EventKind = "moderation_approval"
	EventAdjustment         EventKind = "adjustment"
)

// IsValid checks if the kind belongs to the closed set.
func (k EventKind) IsValid() bool {
	switch k {
	case EventRegistrationBonus, EventTaskCompletion, EventReferralReferrer,
		EventReferralReferred, EventModerationApproval, EventAdjustment:
		return true
	default:
		return false
	}
}

// IsRepeatable reports whether the kind may be credited any number of times.
func (k EventKind) IsRepeatable() bool {
	return k == EventAdjustment
}

// RequiresReference reports whether the dedupe scope includes the reference.
func (k EventKind) RequiresReference() bool {
	return k == EventTaskCompletion || k == EventReferralReferrer
}

// DedupeKey returns the value that, together with owner and kind, makes a one-time
// entry unique. Repeatable kinds get a fresh key so they are never deduplicated.
func (k EventKind) DedupeKey(reference string) string {
	switch {
	case k.IsRepeatable():
		return uuid.NewString()
	case k.RequiresReference():
		return reference
	default:
		return ""
	}
}

// LedgerEntry is an immutable, append-only credit.
type LedgerEntry struct {
	ID        uuid.UUID
	Owner     Owner
	Kind      EventKind
	Amount    int64
	DedupeKey string
	Reference string
	CreatedAt time.Time
}

// ReferralEdge records that one identity referred another. Each identity is referred at most once.
type ReferralEdge struct {
	ID         uuid.UUID
	ReferrerID string
	ReferredID string
	Code       string
	Amount     int64
	CreatedAt  time.Time
}
