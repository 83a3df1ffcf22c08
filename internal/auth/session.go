package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

// SessionManager issues and verifies dashboard session tokens. Tokens are
// signed JWTs carrying a server-side session id; verification checks the
// signature, expiry, and session store membership, never mere cookie presence.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
}

// NewSessionManager builds a new manager. A nil store degrades verification
// to signature and expiry checks only.
func NewSessionManager(secret string, ttl time.Duration, store SessionStore) *SessionManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl, store: store}
}

// Claims describes the session JWT payload.
type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a session, persists it, and returns the signed token.
func (m *SessionManager) Issue(ctx context.Context, email string) (string, *domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := &Claims{
		SessionID: session.ID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}

	if m.store != nil {
		if err := m.store.Save(ctx, session); err != nil {
			return "", nil, err
		}
	}
	return signed, session, nil
}

// Verify validates a token and confirms the session is still live. When the
// session store is unreachable the check degrades to the token alone.
func (m *SessionManager) Verify(ctx context.Context, tokenStr string) (*domain.Session, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session claims")
	}

	session := &domain.Session{
		ID:    claims.SessionID,
		Email: claims.Email,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if m.store != nil {
		live, err := m.store.Exists(ctx, claims.SessionID)
		if err == nil && !live {
			return nil, errors.New("session revoked or expired")
		}
	}
	return session, nil
}

// Revoke deletes the server-side session referenced by the token.
func (m *SessionManager) Revoke(ctx context.Context, tokenStr string) error {
	session, err := m.Verify(ctx, tokenStr)
	if err != nil {
		return err
	}
	if m.store == nil {
		return nil
	}
	return m.store.Delete(ctx, session.ID)
}
