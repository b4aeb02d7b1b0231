package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shopkit/shopkit/internal/middleware"
)

// RouterConfig holds everything needed to assemble the route table.
type RouterConfig struct {
	Logger   *slog.Logger
	Verifier middleware.TokenVerifier

	Base     *Handler
	Users    *UserHandler
	Products *ProductHandler
	Health   *HealthHandler

	// RateLimit guards the signup/signin endpoints. Leave Cache nil to
	// run without rate limiting (tests, local development).
	RateLimit middleware.RateLimitConfig

	// CORS is applied when at least one origin is configured.
	CORS middleware.CORSConfig
}

// NewRouter configures the chi router with all routes and middleware.
//
// GET /api/products is public. POST /api/products and GET /api/users/me
// require a bearer token.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORS))
	}

	// Health endpoints (no auth required)
	r.Get("/healthz", cfg.Health.Healthz)
	r.Get("/readyz", cfg.Health.Readyz)

	// Root info endpoint
	r.Get("/", cfg.Base.Hello)

	authCfg := middleware.AuthConfig{
		Logger:   cfg.Logger,
		Verifier: cfg.Verifier,
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			limited := r
			if cfg.RateLimit.Cache != nil {
				limited = r.With(middleware.RateLimitAuth(cfg.RateLimit))
			}
			limited.Post("/signup", cfg.Users.Signup)
			limited.Post("/signin", cfg.Users.Signin)

			r.With(middleware.Auth(authCfg)).Get("/me", cfg.Users.Me)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Products.List)
			r.With(middleware.Auth(authCfg)).Post("/", cfg.Products.Create)
		})
	})

	// 404 and 405 handlers
	r.NotFound(cfg.Base.NotFound)
	r.MethodNotAllowed(cfg.Base.MethodNotAllowed)

	return r
}
