// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/middletrust/escrow-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; authMiddleware guards
// only the /api/v1 subtree, leaving the health endpoints open.
func NewRouter(
	escrowHandler *handlers.EscrowHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix, unauthenticated).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/escrows", escrowHandler.Create)
		r.Get("/escrows", escrowHandler.List)
		r.Get("/escrows/{id}", escrowHandler.Get)
		r.Post("/escrows/{id}/accept", escrowHandler.Accept)
		r.Post("/escrows/{id}/decline", escrowHandler.Decline)
	})

	return r
}
