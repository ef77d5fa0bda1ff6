// Copyright (c) 2026 CineHub. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
  - The route access policy lives here as a single ordered table, evaluated
    by the guard middleware before routing.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/cinehub/api/internal/auth"
	"github.com/cinehub/api/internal/catalog"
	"github.com/cinehub/api/internal/platform/config"
	"github.com/cinehub/api/internal/platform/constants"
	"github.com/cinehub/api/internal/platform/middleware"
	"github.com/cinehub/api/internal/platform/sec"
	"github.com/cinehub/api/internal/review"
	"github.com/cinehub/api/internal/user"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration and login.
	Auth *auth.Handler

	// Catalog handles movie browsing and admin catalog maintenance.
	Catalog *catalog.Handler

	// Review handles review posting, deletion, and listings.
	Review *review.Handler

	// User handles public profiles and watch-later lists.
	User *user.Handler
}

// # Route Access Policy

// accessPolicy is the ordered route-to-admission mapping enforced by the
// guard middleware. First match wins; anything unmatched is Public — all
// read-only catalog and review browsing is public by design.
func accessPolicy() middleware.Table {
	return middleware.Table{
		// Catalog maintenance is admin-only.
		{Methods: []string{http.MethodPost}, Pattern: "/api/v1/movies", Access: middleware.AccessRole, Role: sec.RoleAdmin},
		{Methods: []string{http.MethodPut, http.MethodDelete}, Pattern: "/api/v1/movies/*", Access: middleware.AccessRole, Role: sec.RoleAdmin},

		// Posting reviews requires identity; deletion is owner-or-admin,
		// decided in the service once identity is attached.
		{Methods: []string{http.MethodPost}, Pattern: "/api/v1/reviews", Access: middleware.AccessAuthenticated},
		{Methods: []string{http.MethodDelete}, Pattern: "/api/v1/reviews/*", Access: middleware.AccessAuthenticated},

		// The personal watch-later surface always requires identity.
		{Pattern: "/api/v1/users/me/**", Access: middleware.AccessAuthenticated},
	}
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	// CleanPath must precede the guard: the access decision and the router
	// dispatch have to see the same canonical path.
	r.Use(chimw.CleanPath)
	r.Use(middleware.Guard(verifier, accessPolicy()))
	r.Use(middleware.CORS(cfg))

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/movies", h.Catalog.Routes())
		api.Mount("/reviews", h.Review.Routes())
		api.Mount("/users", h.User.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
