package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore persists live dashboard sessions so tokens can be revoked
// server-side.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore backs sessions with Redis; keys expire with the session.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, session.Email, ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	count, err := s.client.Exists(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewMemorySessionStore keeps sessions in process memory. Used in tests and
// when Redis is not configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Time)}
}

func (s *memorySessionStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.ExpiresAt
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expires, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expires), nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
