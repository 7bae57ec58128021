package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"popforge/internal/core/port"
)

// contextKey scopes values this package stores on request contexts.
type contextKey string

// ownerKey holds the authenticated owner id.
const ownerKey contextKey = "owner_id"

// OwnerHeader carries the owner id established by the auth front. The auth
// flow itself lives outside this service; the header is the collaborator
// boundary.
const OwnerHeader = "X-User-ID"

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a Dashboard service to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.Dashboard
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// Dashboard implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.Dashboard, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireOwner)

		r.Put("/credentials", h.handleSaveCredentials)
		r.Get("/credentials", h.handleGetCredentials)
		r.Post("/credentials/validate", h.handleValidateKey)

		r.Post("/campaigns/refresh", h.handleRefreshCampaigns)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Put("/campaigns/selection", h.handleUpdateSelection)
		r.Get("/campaigns/summary", h.handleSummary)

		r.Post("/scripts/generate", h.handleGenerateScripts)
		r.Post("/scripts", h.handleSaveScript)
		r.Get("/scripts", h.handleListScripts)
		r.Get("/scripts/{id}/download", h.handleDownloadScript)
		r.Delete("/scripts/{id}", h.handleDeleteScript)

		r.Put("/profile", h.handleSaveProfile)
		r.Get("/profile", h.handleGetProfile)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requireOwner rejects requests without an owner id and stores it on the
// context for the endpoint handlers.
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(OwnerHeader)
		if owner == "" {
			http.Error(w, "missing "+OwnerHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
	})
}

// owner returns the owner id stored by requireOwner.
func owner(r *http.Request) string {
	id, _ := r.Context().Value(ownerKey).(string)
	return id
}

// writeJSON encodes v with the JSON content type. Encoding should rarely
// fail; failures are logged and the response left as-is.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
