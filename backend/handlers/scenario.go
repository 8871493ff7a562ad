// ABOUTME: HTTP handler for scenario comparison endpoint
// ABOUTME: Provides what-if analysis comparing current vs patched campuses

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// CompareScenario compares the stored campus against a patched variant.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) CompareScenario(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent DOS attacks
	// MaxBytesReader only triggers on read, so decode body FIRST before state check
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var input models.WhatIfInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
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

	comparison := h.whatifCalc.Compare(campus, input, h.fallbackParams())

	h.writeJSON(w, http.StatusOK, comparison)
}
