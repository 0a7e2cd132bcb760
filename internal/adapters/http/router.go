// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/dto"
	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/construction-stages/internal/domain"
)

const stagesPath = "/construction-stages"

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	stageHandler *handlers.StageHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("route %s: %w", r.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1"+stagesPath, func(r chi.Router) {
		r.Get("/", stageHandler.ListStages)
		r.Post("/", stageHandler.CreateStage)
		r.Get("/{id}", stageHandler.GetStage)
		r.Patch("/{id}", stageHandler.UpdateStage)
		r.Delete("/{id}", stageHandler.DeleteStage)
	})

	return r
}
