package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"popforge/internal/adapter/usecase"
)

// handleRefreshCampaigns fetches the campaign list with the caller's stored
// credentials and replaces the persisted snapshot. Missing credentials
// produce HTTP 412; an overlapping refresh produces HTTP 409. On success it
// returns the new list, active campaigns pre-selected.
func (h *Handler) handleRefreshCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.RefreshCampaigns(r.Context(), owner(r))
	switch {
	case errors.Is(err, usecase.ErrNoCredentials):
		http.Error(w, "no active api credentials", http.StatusPreconditionFailed)
		return
	case errors.Is(err, usecase.ErrRefreshInFlight):
		http.Error(w, "refresh already in progress", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("refresh campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, list)
}

// handleListCampaigns returns the stored snapshot, CPM descending.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, list)
}

// handleUpdateSelection replaces the selected campaign subset with the ids
// in the request body.
func (h *Handler) handleUpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.UpdateSelection(r.Context(), owner(r), req.IDs); err != nil {
		h.logger.Error("update selection error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSummary returns aggregated metrics over the selected campaigns.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("summary error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, sum)
}
