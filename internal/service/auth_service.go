package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/spec-kit/lead-intake-service/internal/auth"
	"github.com/spec-kit/lead-intake-service/internal/config"
	"github.com/spec-kit/lead-intake-service/internal/domain"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

// AuthService coordinates operator login and logout flows.
type AuthService struct {
	operator domain.Operator
	sessions *auth.SessionManager
}

// NewAuthService builds the service. The single operator account comes from
// configuration; an empty password hash disables login entirely.
func NewAuthService(cfg config.AuthConfig, sessions *auth.SessionManager) *AuthService {
	return &AuthService{
		operator: domain.Operator{
			Email:        cfg.OperatorEmail,
			PasswordHash: cfg.OperatorPassHash,
		},
		sessions: sessions,
	}
}

// Login authenticates the operator and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if s.operator.PasswordHash == "" {
		return "", nil, apperrors.NewUnauthorized("operator login disabled")
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.operator.Email)) == 1
	if err := auth.ComparePassword(s.operator.PasswordHash, password); err != nil || !emailMatch {
		return "", nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.sessions.Issue(ctx, s.operator.Email)
}

// Logout revokes the session carried by the token. Unknown or already
// expired tokens are treated as logged out.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_ = s.sessions.Revoke(ctx, token)
	return nil
}

// SessionManager exposes the manager for middleware wiring.
func (s *AuthService) SessionManager() *auth.SessionManager {
	return s.sessions
}

// SessionTTL reports the configured session lifetime for cookie expiry.
func (s *AuthService) SessionTTL(session *domain.Session) time.Duration {
	return time.Until(session.ExpiresAt)
}
