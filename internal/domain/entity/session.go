package entity

import (
	"maps"
	"time"
)

// FlowKind names a conversational flow; each flow is fronted by its own bot.
type FlowKind string

const (
	FlowMerchant FlowKind = "merchant"
	FlowAirdrop  FlowKind = "airdrop"
)

// IsValid checks if the flow is a known value.
func (f FlowKind) IsValid() bool {
	return f == FlowMerchant || f == FlowAirdrop
}

// ChatRef addresses a chat through a specific bot.
type ChatRef struct {
	Bot    FlowKind
	ChatID string
}

// MessageRef addresses a single rendered message.
type MessageRef struct {
	ChatRef
	MessageID string
}

// SessionKey scopes a session to one identity within one flow.
type SessionKey struct {
	Flow       FlowKind
	IdentityID string
}

func (k SessionKey) String() string {
	return string(k.Flow) + "/" + k.IdentityID
}

// Session is the in-memory progress of an identity through a flow.
type Session struct {
	Key          SessionKey
	Step         string
	Answers      map[string]string
	Anchor       *MessageRef
	ReferralCode string
	StartedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy so callers can mutate it without touching stored state.
func (s *Session) Clone() *Session {
	cloned := *s
	cloned.Answers = maps.Clone(s.Answers)
	if cloned.Answers == nil {
		cloned.Answers = make(map[string]string)
	}
	if s.Anchor != nil {
		anchor := *s.Anchor
		cloned.Anchor = &anchor
	}

	return &cloned
}
