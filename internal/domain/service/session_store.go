package service

import (
	"time"

	"blip/internal/domain/entity"
)

// SessionStore keeps conversation sessions. All access to one key must happen
// between Lock and the returned unlock.
type SessionStore interface {
	// Lock serializes work on a session key.
	Lock(key entity.SessionKey) (unlock func())

	// Get returns a copy of the live session; idle sessions are treated as absent.
	Get(key entity.SessionKey) (*entity.Session, bool)

	Put(session *entity.Session)

	Delete(key entity.SessionKey)

	// Sweep evicts sessions idle since before now minus the TTL and returns how many.
	Sweep(now time.Time) int
}
