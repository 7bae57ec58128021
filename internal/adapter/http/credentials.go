package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"popforge/internal/core/domain"
)

// handleSaveCredentials stores a new credential set for the caller,
// deactivating any previous set. Invalid JSON produces HTTP 400; missing
// required fields produce HTTP 422; repository failures produce HTTP 500.
func (h *Handler) handleSaveCredentials(w http.ResponseWriter, r *http.Request) {
	var creds domain.APICredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if creds.APIKey == "" || creds.PublisherID == "" {
		http.Error(w, "apiKey and publisherId are required", http.StatusUnprocessableEntity)
		return
	}
	if err := h.svc.SaveCredentials(r.Context(), owner(r), creds); err != nil {
		h.logger.Error("save credentials error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetCredentials returns the caller's active credential set with the
// key decoded, or HTTP 404 when none is stored.
func (h *Handler) handleGetCredentials(w http.ResponseWriter, r *http.Request) {
	creds, err := h.svc.LoadCredentials(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("load credentials error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if creds == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, creds)
}

// handleValidateKey checks an API key against the network's validation
// endpoint, degrading to the permissive heuristic when unreachable. The
// result is always HTTP 200 with a {"valid": bool} body.
func (h *Handler) handleValidateKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, map[string]bool{"valid": h.svc.ValidateKey(r.Context(), req.APIKey)})
}
