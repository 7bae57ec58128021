package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"popforge/internal/adapter/usecase"
	"popforge/internal/core/domain"
	"popforge/internal/core/port"
)

// handleGenerateScripts renders production and preview snippets for the
// current selection without persisting anything. An invalid config produces
// HTTP 422, an empty selection HTTP 409.
func (h *Handler) handleGenerateScripts(w http.ResponseWriter, r *http.Request) {
	var cfg domain.PopunderConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	pair, err := h.svc.GenerateScripts(r.Context(), owner(r), cfg)
	switch {
	case errors.Is(err, usecase.ErrNoCampaignsSelected):
		http.Error(w, "no campaigns selected", http.StatusConflict)
		return
	case errors.Is(err, usecase.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Error("generate scripts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, pair)
}

// handleSaveScript generates the requested variant and persists it as a
// named artifact.
func (h *Handler) handleSaveScript(w http.ResponseWriter, r *http.Request) {
	var req port.SaveScriptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	script, err := h.svc.SaveScript(r.Context(), owner(r), req)
	switch {
	case errors.Is(err, usecase.ErrNoCampaignsSelected):
		http.Error(w, "no campaigns selected", http.StatusConflict)
		return
	case errors.Is(err, usecase.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Error("save script error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	h.writeJSON(w, script)
}

// handleListScripts returns saved scripts newest first.
func (h *Handler) handleListScripts(w http.ResponseWriter, r *http.Request) {
	scripts, err := h.svc.ListScripts(r.Context(), owner(r))
	if err != nil {
		h.logger.Error("list scripts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, scripts)
}

// handleDownloadScript serves one script's code as a JavaScript attachment.
// The filename derives from the script name.
func (h *Handler) handleDownloadScript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	script, err := h.svc.GetScript(r.Context(), owner(r), id)
	if err != nil {
		h.logger.Error("get script error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if script == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/javascript")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", script.DownloadFilename()))
	_, _ = w.Write([]byte(script.Code))
}

// handleDeleteScript removes one saved script. Unknown ids produce HTTP 404.
func (h *Handler) handleDeleteScript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.svc.DeleteScript(r.Context(), owner(r), id)
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.Error("delete script error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
