// Package session keeps conversation sessions in process memory.
package session

import (
	"sync"
	"time"

	"blip/config"
	"blip/internal/domain/entity"
	"blip/internal/domain/service"
)

// keyLock is a per-key mutex that lives only while someone holds or waits on it.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

type memoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[entity.SessionKey]*entity.Session
	locks    map[entity.SessionKey]*keyLock
}

// NewMemoryStore creates an in-memory session store with idle TTL eviction.
func NewMemoryStore(cfg *config.Config) service.SessionStore {
	return newMemoryStore(cfg.Session.IdleTTL, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		ttl:      ttl,
		now:      now,
		sessions: make(map[entity.SessionKey]*entity.Session),
		locks:    make(map[entity.SessionKey]*keyLock),
	}
}

func (s *memoryStore) Lock(key entity.SessionKey) func() {
	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &keyLock{}
		s.locks[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()

	var once sync.Once

	return func() {
		once.Do(func() {
			lock.mu.Unlock()

			s.mu.Lock()
			lock.refs--
			if lock.refs == 0 {
				delete(s.locks, key)
			}
			s.mu.Unlock()
		})
	}
}

func (s *memoryStore) Get(key entity.SessionKey) (*entity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	if s.idle(sess, s.now()) {
		delete(s.sessions, key)

		return nil, false
	}

	return sess.Clone(), true
}

func (s *memoryStore) Put(sess *entity.Session) {
	stored := sess.Clone()
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = s.now()
	}

	s.mu.Lock()
	s.sessions[stored.Key] = stored
	s.mu.Unlock()
}

func (s *memoryStore) Delete(key entity.SessionKey) {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()
}

// Sweep skips keys that are currently locked; their holder decides their fate.
func (s *memoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, sess := range s.sessions {
		if _, busy := s.locks[key]; busy {
			continue
		}
		if s.idle(sess, now) {
			delete(s.sessions, key)
			evicted++
		}
	}

	return evicted
}

func (s *memoryStore) idle(sess *entity.Session, now time.Time) bool {
	return s.ttl > 0 && !now.Before(sess.UpdatedAt.Add(s.ttl))
}
