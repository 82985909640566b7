package routes

import (
	"github.com/go-chi/chi/v5"

	"skylogger/dronelog/internal/api"
	"skylogger/dronelog/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		// Credential endpoints are public but rate limited.
		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/auth/register", handlers.RegisterUser())
			public.Post("/auth/login", handlers.Login())
		})

		// Everything else requires a live session.
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Token, deps.Services.Session))

			authed.Post("/auth/logout", handlers.Logout())
			authed.Get("/user/profile", handlers.GetProfile())
			authed.Put("/user/profile", handlers.UpdateProfile())

			authed.Get("/aircraft", handlers.ListAircraft())
			authed.Post("/aircraft", handlers.RegisterAircraft())
			authed.Get("/aircraft/{registration}", handlers.GetAircraft())

			authed.Get("/flights", handlers.ListFlightRecords())
			authed.Post("/flights", handlers.CreateFlightRecord())
			authed.Delete("/flights", handlers.ClearFlightRecords())
			authed.Get("/flights/export", handlers.ExportFlightRecords())

			authed.Get("/stats", handlers.GetStats())
			authed.Get("/dashboard", handlers.GetDashboard())
			authed.Get("/checklist", handlers.GetChecklist())
		})
	})
}
