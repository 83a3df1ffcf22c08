package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-intake-service/internal/domain"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

const sessionLocalKey = "auth_session"

// Gate restricts operator-only surfaces. Dashboard pages get a redirect to
// the login page; data endpoints get a 401.
type Gate struct {
	sessions   *SessionManager
	cookieName string
	loginPath  string
}

// NewGate constructs the gate middleware factory.
func NewGate(sessions *SessionManager, cookieName string) *Gate {
	return &Gate{sessions: sessions, cookieName: cookieName, loginPath: "/login"}
}

// Dashboard guards dashboard page routes, redirecting unauthenticated
// requests to the login page.
func (g *Gate) Dashboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := g.verifyCookie(c)
		if err != nil {
			return c.Redirect(g.loginPath, fiber.StatusFound)
		}
		c.Locals(sessionLocalKey, session)
		return c.Next()
	}
}

// API guards operator data endpoints with a JSON 401 on failure.
func (g *Gate) API() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := g.verifyCookie(c)
		if err != nil {
			return apperrors.NewUnauthorized("operator session required")
		}
		c.Locals(sessionLocalKey, session)
		return c.Next()
	}
}

func (g *Gate) verifyCookie(c *fiber.Ctx) (*domain.Session, error) {
	token := c.Cookies(g.cookieName)
	if token == "" {
		return nil, fiber.ErrUnauthorized
	}
	return g.sessions.Verify(c.UserContext(), token)
}

// SessionFromContext retrieves the verified session, if any.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionLocalKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
