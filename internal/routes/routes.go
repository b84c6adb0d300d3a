package routes

import (
	"github.com/calebmorton/hireboard/internal/auth"
	"github.com/calebmorton/hireboard/internal/handlers"
	"github.com/calebmorton/hireboard/internal/middleware"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the API under /api
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	jobHandler *handlers.JobHandler,
	contactHandler *handlers.ContactHandler,
	tokenManager *auth.TokenManager,
	accounts auth.AccountLoader,
) {
	rateLimitConfig := middleware.DefaultAuthRateLimit()

	router.Route("/api", func(api chi.Router) {
		// Public routes - no authentication required
		api.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/auth/register", authHandler.Register)
		api.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/auth/login", authHandler.Login)

		api.Post("/contact", contactHandler.Submit)
		api.Get("/jobs", jobHandler.List)

		// Protected routes - authentication required
		api.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(tokenManager, accounts))

			r.Get("/auth/me", authHandler.Me)
			r.Put("/auth/profile", authHandler.UpdateAccount)
			r.Put("/auth/change-password", authHandler.ChangePassword)
			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/profile", profileHandler.Get)
			r.Post("/profile", profileHandler.Update)
			r.Put("/profile", profileHandler.Update)
			r.Get("/profile/{userId}", profileHandler.GetByUserID)

			// Fixed job paths are registered before the {id} wildcard
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(models.RoleAdmin))
				r.Get("/jobs/all", jobHandler.ListAll)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(models.RoleEmployer, models.RoleAdmin))
				r.Get("/jobs/employer", jobHandler.ListMine)
				r.Post("/jobs", jobHandler.Create)
			})

			r.Put("/jobs/{id}/status", jobHandler.UpdateStatus)
		})

		// Public job detail goes last so it never shadows the fixed paths
		api.Get("/jobs/{id}", jobHandler.Get)
	})
}
