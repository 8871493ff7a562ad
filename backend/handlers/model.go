// ABOUTME: HTTP handlers for the campus engine: reconcile, validate, derive, model
// ABOUTME: Stateless POST variants operate on the request body; GET uses the stored campus

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// CampusEnvelope is the request body for stateless engine endpoints.
// Fallback overrides the configured derivation defaults when present.
type CampusEnvelope struct {
	Campus   *models.Campus `json:"campus"`
	Fallback *models.Params `json:"fallback,omitempty"`
}

// decodeCampusEnvelope reads a CampusEnvelope from the body, also accepting a
// bare campus object for convenience. Returns false after writing an error.
func (h *Handler) decodeCampusEnvelope(w http.ResponseWriter, r *http.Request) (CampusEnvelope, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return CampusEnvelope{}, false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return CampusEnvelope{}, false
	}

	var env CampusEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Campus != nil {
		return env, true
	}

	var campus models.Campus
	if err := json.Unmarshal(raw, &campus); err != nil {
		h.writeError(w, "Invalid campus document", http.StatusBadRequest)
		return CampusEnvelope{}, false
	}
	return CampusEnvelope{Campus: &campus}, true
}

// envelopeFallback picks the request override or the configured defaults
func (h *Handler) envelopeFallback(env CampusEnvelope) models.Params {
	if env.Fallback != nil {
		return *env.Fallback
	}
	return h.fallbackParams()
}

// ReconcileCampus normalizes the posted campus tree and returns it. Stateless.
func (h *Handler) ReconcileCampus(w http.ResponseWriter, r *http.Request) {
	env, ok := h.decodeCampusEnvelope(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.reconciler.Reconcile(env.Campus))
}

// ValidateCampus reports structural issues in the posted campus tree as
// given, without reconciling it. Stateless.
func (h *Handler) ValidateCampus(w http.ResponseWriter, r *http.Request) {
	env, ok := h.decodeCampusEnvelope(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.validator.Result(env.Campus))
}

// DeriveParams reconciles the posted campus and derives its headline
// parameters. Stateless.
func (h *Handler) DeriveParams(w http.ResponseWriter, r *http.Request) {
	env, ok := h.decodeCampusEnvelope(w, r)
	if !ok {
		return
	}
	params := h.paramsCalc.ReconcileAndDerive(env.Campus, h.envelopeFallback(env))
	h.writeJSON(w, http.StatusOK, params)
}

// ComputeModel builds the aggregated model for the posted campus. Stateless.
func (h *Handler) ComputeModel(w http.ResponseWriter, r *http.Request) {
	env, ok := h.decodeCampusEnvelope(w, r)
	if !ok {
		return
	}
	model := h.modelBuilder.Compute(env.Campus, h.envelopeFallback(env))
	h.writeJSON(w, http.StatusOK, model)
}

// GetModel returns the aggregated model of the stored campus, memoized per
// tree and parameter key.
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}
	model := h.modelBuilder.Compute(campus, h.fallbackParams())
	h.writeJSON(w, http.StatusOK, model)
}

// GetExplorer returns the navigation-tree projection of the stored campus.
func (h *Handler) GetExplorer(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}
	model := h.modelBuilder.Compute(campus, h.fallbackParams())
	h.writeJSON(w, http.StatusOK, model.Explorer)
}

// GetSpecs returns the detail-panel projection of the stored campus, either
// the whole map or a single entry selected with ?id=.
func (h *Handler) GetSpecs(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}
	model := h.modelBuilder.Compute(campus, h.fallbackParams())

	if id := r.URL.Query().Get("id"); id != "" {
		entry, ok := model.Specs[id]
		if !ok {
			h.writeError(w, "Unknown entity id", http.StatusNotFound)
			return
		}
		h.writeJSON(w, http.StatusOK, entry)
		return
	}

	h.writeJSON(w, http.StatusOK, model.Specs)
}
