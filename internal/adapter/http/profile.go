package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"popforge/internal/adapter/usecase"
	"popforge/internal/core/domain"
)

// handleSaveProfile mirrors the caller's display data. The profile id is
// taken from the owner header, not the body.
func (h *Handler) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.SaveProfile(r.Context(), owner(r), profile)
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Error("save profile error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetProfile returns the caller's profile, HTTP 404 when none exists.
func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("get profile error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, profile)
}
