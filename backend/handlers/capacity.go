// ABOUTME: HTTP handlers for the params-only capacity path and shared limits
// ABOUTME: Computes geometry and placement straight from headline parameters

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// ComputeCapacity sizes a campus from raw parameters without a campus tree.
// Out-of-range inputs are clamped, not rejected.
func (h *Handler) ComputeCapacity(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var params models.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.capacityCalc.Compute(params))
}

// LimitsResponse bundles the parameter limits with the categorical
// vocabularies so clients can build forms from one call.
type LimitsResponse struct {
	Limits       models.ParamLimits `json:"limits"`
	Redundancies []string           `json:"redundancies"`
	CoolingTypes []string           `json:"cooling_types"`
	Containments []string           `json:"containments"`
}

// GetLimits returns the shared parameter limits table.
func (h *Handler) GetLimits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, LimitsResponse{
		Limits:       models.CampusLimits,
		Redundancies: models.Redundancies,
		CoolingTypes: models.CoolingTypes,
		Containments: models.Containments,
	})
}
