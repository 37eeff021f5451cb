package api

import (
	"net/http"

	"github.com/collabmatch/backend/internal/api/handlers"
	"github.com/collabmatch/backend/internal/api/middleware"
	"github.com/collabmatch/backend/internal/config"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services, maintenance *middleware.Maintenance, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: cfg.CORSOrigin != "*",
		MaxAge:           300,
	}))

	// Health check stays reachable during maintenance
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User, services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	wishlistHandler := handlers.NewWishlistHandler(services.Wishlist)
	adminHandler := handlers.NewAdminHandler(maintenance)

	authLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Route("/api/v1", func(r chi.Router) {
		// Admin surface sits outside the maintenance gate so the mode
		// can be switched back off.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireRole(domain.RoleAdmin))
			r.Post("/admin/maintenance", adminHandler.SetMaintenance)
		})

		r.Group(func(r chi.Router) {
			r.Use(maintenance.Handler)

			// Public auth routes, rate limited
			r.Route("/auth", func(r chi.Router) {
				r.Use(authLimiter.Handler)
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
				r.Post("/forgot-password", authHandler.ForgotPassword)
				r.Post("/reset-password/{token}", authHandler.ResetPassword)
			})

			// User routes
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/", userHandler.List)
				r.Get("/{userID}", userHandler.Get)
				r.Put("/{userID}", userHandler.Update)
				r.Delete("/{userID}", userHandler.Delete)
				r.Patch("/{userID}/password", userHandler.ChangePassword)
				r.Post("/{userID}/deactivate", userHandler.Deactivate)
			})

			// Profile routes: reads are public, mutations need a token
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", profileHandler.List)
				r.Get("/search", profileHandler.Search)
				r.Get("/user/{userID}", profileHandler.ListByUser)
				r.Get("/{profileID}", profileHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Auth(services.Auth))
					r.Post("/", profileHandler.Create)
					r.Put("/{profileID}", profileHandler.Update)
					r.Delete("/{profileID}", profileHandler.Delete)
				})
			})

			// Wishlist routes, always scoped to the caller
			r.Route("/wishlist", func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", wishlistHandler.Add)
				r.Get("/", wishlistHandler.List)
				r.Get("/count", wishlistHandler.Count)
				r.Get("/{profileID}/contains", wishlistHandler.Contains)
				r.Delete("/{profileID}", wishlistHandler.Remove)
				r.Delete("/", wishlistHandler.Clear)
			})
		})
	})

	return r
}
