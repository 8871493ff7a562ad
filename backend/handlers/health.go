// ABOUTME: HTTP handlers for health and dashboard endpoints
// ABOUTME: Provides API status and the current-campus summary

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// Health returns API health status including campus, vSphere, and cache state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	campus, source := h.currentCampus()

	resp := map[string]interface{}{
		"status":      "ok",
		"has_campus":  campus != nil,
		"vsphere":     "not_configured",
		"cache_items": 0,
	}
	if h.vsphereClient != nil {
		resp["vsphere"] = "configured"
	}
	if h.cache != nil {
		resp["cache_items"] = h.cache.Len()
	}
	if campus != nil {
		resp["campus"] = campus.Label()
		resp["campus_source"] = source
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Dashboard returns the one-call summary of the current campus: rollups,
// profile mix, constraint analysis, and advisories.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	campus, source := h.currentCampus()

	if campus == nil {
		h.writeJSON(w, http.StatusOK, models.DashboardResponse{
			HasCampus: false,
			Params:    h.fallbackParams(),
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
		})
		return
	}

	// Cache key is tied to the exact stored tree, so replacing or patching
	// the campus never serves a stale summary.
	cacheKey := fmt.Sprintf("dashboard:%p", campus)
	if cached, found := h.cache.Get(cacheKey); found {
		slog.Debug("Dashboard cache hit")
		resp := cached.(models.DashboardResponse)
		resp.Metadata.Cached = true
		h.writeJSON(w, http.StatusOK, resp)
		return
	}

	model := h.modelBuilder.Compute(campus, h.fallbackParams())
	issues := h.validator.Validate(campus)

	resp := models.DashboardResponse{
		HasCampus:  true,
		CampusID:   model.CampusID,
		CampusName: model.Name,
		Params:     model.Params,
		Totals:     model.Totals,
		Zones:      model.Zones,
		Mix:        model.Mix,
		Constraint: models.AnalyzeConstraint(model),
		Advisories: models.GenerateAdvisories(model, issues),
		Valid:      len(issues) == 0,
		IssueCount: len(issues),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Source:    source,
		},
	}

	h.cache.SetWithTTL(cacheKey, resp, 30*time.Second)

	h.writeJSON(w, http.StatusOK, resp)
}
