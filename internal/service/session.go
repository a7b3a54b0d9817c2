package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rlwai/shop-api/internal/config"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/util"
)

// Identity is the authenticated caller carried through a request.
type Identity struct {
	UserID      int64
	Login       string
	DisplayName string
	ExpiresAt   time.Time
}

// SessionStore maps opaque bearer tokens to identities with a fixed TTL.
type SessionStore interface {
	Issue(userID int64, login, displayName string) (string, error)
	Authenticate(token string) (*Identity, error)
	SweepExpired() int
}

type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]Identity
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return NewMemorySessionStoreWithClock(config.SessionTokenTTL, time.Now)
}

func NewMemorySessionStoreWithClock(ttl time.Duration, now func() time.Time) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Identity),
		ttl:      ttl,
		now:      now,
	}
}

func (s *MemorySessionStore) Issue(userID int64, login, displayName string) (string, error) {
	token, err := util.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.mu.Lock()
	s.sessions[token] = Identity{
		UserID:      userID,
		Login:       login,
		DisplayName: displayName,
		ExpiresAt:   s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

// Authenticate never extends the expiry. An expired entry is removed the
// first time it is seen, so later lookups report INVALID_TOKEN.
func (s *MemorySessionStore) Authenticate(token string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.InvalidToken()
	}

	if !s.now().Before(identity.ExpiresAt) {
		delete(s.sessions, token)
		return nil, apperrors.TokenExpired()
	}

	return &identity, nil
}

func (s *MemorySessionStore) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, identity := range s.sessions {
		if !now.Before(identity.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	if removed > 0 {
		log.Debug().Int("removed", removed).Int("active", len(s.sessions)).Msg("expired sessions swept")
	}
	return removed
}

func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
