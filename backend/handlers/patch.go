// ABOUTME: HTTP handlers for scoped campus patches
// ABOUTME: No-op patches leave the stored tree untouched and report changed=false

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// ProfilePatchRequest selects halls by scope and overrides profile fields
type ProfilePatchRequest struct {
	Scope models.PatchScope       `json:"scope"`
	Patch models.RackProfilePatch `json:"patch"`
}

// PatchResponse reports whether the patch changed anything and the model of
// the campus afterwards.
type PatchResponse struct {
	Changed bool                `json:"changed"`
	Campus  *models.Campus      `json:"campus"`
	Model   *models.CampusModel `json:"model"`
}

// PatchProfile applies a rack profile patch to the stored campus.
func (h *Handler) PatchProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ProfilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}

	patched := models.ApplyProfilePatch(campus, req.Scope, req.Patch)
	changed := patched != campus
	if changed && !h.swapCampus(campus, patched) {
		h.writeError(w, "Campus changed concurrently, retry", http.StatusConflict)
		return
	}

	h.writeJSON(w, http.StatusOK, PatchResponse{
		Changed: changed,
		Campus:  patched,
		Model:   h.modelBuilder.Compute(patched, h.fallbackParams()),
	})
}

// PatchProperties applies campus-level property overrides to the stored campus.
func (h *Handler) PatchProperties(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var patch models.PropertyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}

	patched := models.ApplyPropertyPatch(campus, patch)
	changed := patched != campus
	if changed && !h.swapCampus(campus, patched) {
		h.writeError(w, "Campus changed concurrently, retry", http.StatusConflict)
		return
	}

	h.writeJSON(w, http.StatusOK, PatchResponse{
		Changed: changed,
		Campus:  patched,
		Model:   h.modelBuilder.Compute(patched, h.fallbackParams()),
	})
}
