// ABOUTME: HTTP handlers for constraint analysis and advisory endpoints
// ABOUTME: Ranks power against space and suggests changes with the most impact

package handlers

import (
	"net/http"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// AnalyzeConstraint returns the power-versus-space pressure ranking for the
// stored campus.
func (h *Handler) AnalyzeConstraint(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}

	model := h.modelBuilder.Compute(campus, h.fallbackParams())
	analysis := models.AnalyzeConstraint(model)

	h.writeJSON(w, http.StatusOK, analysis)
}

// GetAdvisories returns prioritized change suggestions for the stored campus.
func (h *Handler) GetAdvisories(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}

	model := h.modelBuilder.Compute(campus, h.fallbackParams())
	issues := h.validator.Validate(campus)
	analysis := models.AnalyzeConstraint(model)

	response := models.AdvisoriesResponse{
		Advisories:           models.GenerateAdvisories(model, issues),
		ConstrainingResource: analysis.ConstrainingResource,
	}

	h.writeJSON(w, http.StatusOK, response)
}
