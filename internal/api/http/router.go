package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-intake-service/internal/api/http/handlers"
	"github.com/spec-kit/lead-intake-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Leads   *handlers.LeadsHandler
	Session *handlers.SessionHandler
	Pages   *handlers.PagesHandler
	Gate    *auth.Gate
}

// RegisterRoutes wires HTTP routes. The public intake form posts to /leads;
// listing and status updates sit behind the operator gate, as does the
// dashboard page itself.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Session.Login)
	app.Post("/auth/logout", cfg.Session.Logout)

	app.Post("/leads", cfg.Leads.Create)
	app.Get("/leads", cfg.Gate.API(), cfg.Leads.List)
	app.Patch("/leads", cfg.Gate.API(), cfg.Leads.UpdateStatus)

	app.Get("/login", cfg.Pages.Login)
	dashboard := app.Group("/dashboard", cfg.Gate.Dashboard())
	dashboard.Get("/", cfg.Pages.Dashboard)
	dashboard.Get("", cfg.Pages.Dashboard)
}
