package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adkpi/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the report use case and a logger for structured logging. Every
// endpoint is a read-only GET answering with JSON.
type Handler struct {
	svc    port.ReportUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. A dataset and a
// period expose the same report endpoints; periods add the sales funnel.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/datasets", h.handleListDatasets)
		r.Route("/datasets/{dataset}", h.scopeRoutes)
		r.Route("/periods/{period}", func(r chi.Router) {
			h.scopeRoutes(r)
			r.Get("/funnel", h.handleFunnel)
		})
		r.Get("/compare", h.handleCompare)
	})
	h.router = r
	return h
}

func (h *Handler) scopeRoutes(r chi.Router) {
	r.Get("/overview", h.handleOverview)
	r.Get("/countries", h.handleCountries)
	r.Get("/groups", h.handleGroups)
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
