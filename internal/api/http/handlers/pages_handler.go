package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-intake-service/internal/auth"
)

// PagesHandler serves the minimal operator-facing pages. The real form and
// dashboard UI live in a separate frontend; these routes exist so the access
// gate has a surface to protect.
type PagesHandler struct{}

// NewPagesHandler returns a new handler instance.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Dashboard GET /dashboard. Only reachable through the gate.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	email := ""
	if session != nil {
		email = session.Email
	}
	c.Type("html")
	return c.SendString(`<!doctype html><html><head><title>Leads Dashboard</title></head>` +
		`<body><h1>Leads Dashboard</h1><p>Signed in as ` + email + `</p>` +
		`<div id="leads" data-endpoint="/leads"></div></body></html>`)
}

// Login GET /login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(`<!doctype html><html><head><title>Operator Login</title></head>` +
		`<body><h1>Operator Login</h1><form method="post" action="/auth/login">` +
		`<input name="email" type="email"><input name="password" type="password">` +
		`<button type="submit">Sign in</button></form></body></html>`)
}
