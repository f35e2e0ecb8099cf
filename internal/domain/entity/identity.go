package entity

import "time"

// ApplicationStatus tracks a merchant application through moderation.
// General users keep the empty status forever.
type ApplicationStatus string

const (
	StatusNone     ApplicationStatus = ""
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the status is terminal.
func (s ApplicationStatus) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Identity is a chat-platform user, keyed by a platform-scoped id such as "tg:42".
type Identity struct {
	ID           string
	Handle       string
	ChatID       string
	Profile      map[string]string
	Status       ApplicationStatus
	Flagged      bool
	ReferralCode string
	RegisteredAt *time.Time
	SubmittedAt  *time.Time
	DecidedAt    *time.Time
	DecidedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompleted reports whether the identity already finished the given flow.
func (i *Identity) HasCompleted(flow FlowKind) bool {
	switch flow {
	case FlowMerchant:
		return i.Status != StatusNone
	case FlowAirdrop:
		return i.RegisteredAt != nil
	default:
		return false
	}
}

// Tier derives the merchant tier from the stored monthly volume answer.
func (i *Identity) Tier() (Tier, bool) {
	if i.Profile == nil {
		return Tier{}, false
	}

	return TierForBracket(VolumeBracket(i.Profile[ProfileMonthlyVolume]))
}

// DisplayName returns the handle when known, the id otherwise.
func (i *Identity) DisplayName() string {
	if i.Handle != "" {
		return "@" + i.Handle
	}

	return i.ID
}
