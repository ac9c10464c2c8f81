package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/http/handlers"
	"github.com/spec-kit/attendance-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Staff          *handlers.StaffHandler
	Leaderboard    *handlers.LeaderboardHandler
	Quota          *handlers.QuotaHandler
	Strikes        *handlers.StrikesHandler
	Tracking       *handlers.TrackingHandler
	Avatar         *handlers.AvatarHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Read endpoints and the game-server
// webhook are public; mutations require an admin token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api")

	api.Get("/dashboard/stats", cfg.Dashboard.Stats)
	api.Get("/weekly-activity", cfg.Dashboard.WeeklyActivity)
	api.Get("/staff", cfg.Staff.List)
	api.Get("/staff/:id", cfg.Staff.Get)
	api.Get("/staff/:id/strikes", cfg.Strikes.List)
	api.Get("/leaderboard/:period", cfg.Leaderboard.Get)
	api.Get("/quota-status", cfg.Quota.Completion)
	api.Get("/quota-settings", cfg.Quota.GetSettings)
	api.Get("/avatar/:userId", cfg.Avatar.Get)

	// The game servers authenticate at the network layer, not with tokens.
	api.Post("/track-time", cfg.Tracking.TrackTime)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/staff/:id/adjust-time", cfg.Tracking.AdjustTime)
	protected.Patch("/staff/:id", cfg.Staff.Edit)
	protected.Post("/staff/:id/demote", cfg.Staff.Demote)
	protected.Post("/staff/:id/strikes", cfg.Strikes.Create)
	protected.Delete("/strikes/:id", cfg.Strikes.Delete)
	protected.Post("/mass-strike", cfg.Strikes.Mass)
	protected.Put("/quota-settings", cfg.Quota.UpdateSettings)
	protected.Post("/sync-staff", cfg.Staff.Sync)
}
