// ABOUTME: HTTP handlers for campus lifecycle: load, build, fetch, import
// ABOUTME: The stored campus is reconciled on ingest and replaced wholesale

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/services"
)

// GetCampus returns the currently stored campus tree.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) GetCampus(w http.ResponseWriter, r *http.Request) {
	campus, _ := h.currentCampus()
	if campus == nil {
		h.writeError(w, "No campus loaded. Set one via PUT /api/v1/campus first.", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, campus)
}

// SetCampus replaces the stored campus with the request body, reconciled.
func (h *Handler) SetCampus(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent DOS attacks
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var campus models.Campus
	if err := json.NewDecoder(r.Body).Decode(&campus); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	rc := h.reconciler.Reconcile(&campus)
	h.setCampus(rc, "api")
	h.writeJSON(w, http.StatusOK, rc)
}

// NewCampusRequest names a campus and optionally overrides the sizing params
type NewCampusRequest struct {
	Name   string         `json:"name"`
	Params *models.Params `json:"params,omitempty"`
}

// NewCampus scaffolds a campus from headline parameters and stores it.
func (h *Handler) NewCampus(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req NewCampusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		req.Name = "New Campus"
	}
	if err := services.ValidateDisplayName(req.Name); err != nil {
		h.writeError(w, "Invalid campus name: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := h.fallbackParams()
	if req.Params != nil {
		params = *req.Params
	}

	campus := h.builder.BuildCampus(req.Name, params)
	h.setCampus(campus, "builder")
	h.writeJSON(w, http.StatusOK, campus)
}

// LoadCampusFile reads a campus document from disk and stores it.
// Used at startup when CAMPUS_FILE is set.
func (h *Handler) LoadCampusFile(path string) error {
	if h.docStore == nil {
		return errors.New("document store not configured")
	}
	campus, err := h.docStore.Load(path)
	if err != nil {
		return err
	}
	h.setCampus(h.reconciler.Reconcile(campus), "file")
	return nil
}

// FetchCampusRequest points at a remote campus document
type FetchCampusRequest struct {
	URL string `json:"url"`
}

// FetchCampus retrieves a campus document over HTTP(S) and stores it.
func (h *Handler) FetchCampus(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req FetchCampusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		h.writeError(w, "Missing url", http.StatusBadRequest)
		return
	}
	if h.docStore == nil {
		h.writeError(w, "Document fetching not configured", http.StatusServiceUnavailable)
		return
	}

	campus, err := h.docStore.Fetch(r.Context(), req.URL)
	if err != nil {
		slog.Error("Campus fetch failed", "url", req.URL, "error", err)
		h.writeError(w, "Failed to fetch campus document", http.StatusBadGateway)
		return
	}

	rc := h.reconciler.Reconcile(campus)
	h.setCampus(rc, "fetch")
	h.writeJSON(w, http.StatusOK, rc)
}

// ImportVSphere drafts a campus from vCenter inventory and stores it.
func (h *Handler) ImportVSphere(w http.ResponseWriter, r *http.Request) {
	if h.vsphereClient == nil {
		h.writeError(w, "vSphere not configured. Set VSPHERE_HOST, VSPHERE_USERNAME, VSPHERE_PASSWORD, and VSPHERE_DATACENTER environment variables.", http.StatusServiceUnavailable)
		return
	}

	// Check cache first
	cacheKey := "vsphere:draft"
	if cached, found := h.cache.Get(cacheKey); found {
		slog.Debug("vSphere draft cache hit")
		draft := cached.(*models.Campus)
		rc := h.reconciler.Reconcile(draft)
		h.setCampus(rc, "vsphere")
		h.writeJSON(w, http.StatusOK, rc)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.vsphereClient.Connect(ctx); err != nil {
		slog.Error("vSphere connection failed", "error", err)
		h.writeError(w, "Infrastructure service temporarily unavailable", http.StatusServiceUnavailable)
		return
	}
	defer h.vsphereClient.Disconnect(ctx)

	draft, err := h.vsphereClient.DraftCampus(ctx, h.fallbackParams())
	if err != nil {
		slog.Error("vSphere campus draft failed", "error", err)
		h.writeError(w, "Failed to draft campus from vSphere inventory", http.StatusInternalServerError)
		return
	}

	ttl := 300
	if h.cfg != nil {
		ttl = h.cfg.VSphereCacheTTL
	}
	h.cache.SetWithTTL(cacheKey, draft, time.Duration(ttl)*time.Second)

	rc := h.reconciler.Reconcile(draft)
	h.setCampus(rc, "vsphere")
	h.writeJSON(w, http.StatusOK, rc)
}
