package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-intake-service/internal/api/dto"
	"github.com/spec-kit/lead-intake-service/internal/service"
	apperrors "github.com/spec-kit/lead-intake-service/pkg/util"
)

// SessionHandler manages operator login and logout.
type SessionHandler struct {
	auth       *service.AuthService
	cookieName string
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService, cookieName string) *SessionHandler {
	return &SessionHandler{auth: authService, cookieName: cookieName}
}

// Login POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewMalformedRequest("invalid payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	token, session, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.LoginResponse{Success: true, ExpiresAt: session.ExpiresAt})
}

// Logout POST /auth/logout. Revokes the server-side session and clears the cookie.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	c.ClearCookie(h.cookieName)
	return c.JSON(fiber.Map{"success": true})
}
