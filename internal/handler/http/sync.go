package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.sync.GetSyncStatus(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.getSyncStatus", "error getting sync status", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	pushed, err := h.sync.Push(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.push", "error pushing snapshot", err)
		return
	}

	utils.WriteJSON(w, models.PushResponse{Pushed: pushed}, http.StatusOK)
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.Pull(r.Context()); err != nil {
		h.fail(w, r, "*Handler.pull", "error pulling snapshot", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	result, err := h.sync.Merge(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.merge", "error merging with remote", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getConflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := h.sync.GetConflicts(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.getConflicts", "error listing conflicts", err)
		return
	}

	utils.WriteJSON(w, models.ConflictsResponse{Conflicts: conflicts, Length: len(conflicts)}, http.StatusOK)
}

func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflict").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resolution, err := models.ParseResolution(string(req.Resolution))
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflict").Msg("invalid resolution")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pushed, err := h.sync.ResolveConflict(r.Context(), req.Conflict, resolution)
	if err != nil {
		h.fail(w, r, "*Handler.resolveConflict", "error resolving conflict", err)
		return
	}

	utils.WriteJSON(w, models.ResolveResponse{Pushed: pushed}, http.StatusOK)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, fn, msg string, err error) {
	logger.FromRequest(r).Err(err).Str("func", fn).Msg(msg)
	utils.WriteError(w, err.Error(), statusFromError(err))
}
