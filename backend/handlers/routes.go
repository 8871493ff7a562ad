// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
// Method matching is left to the Go 1.22+ router patterns.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/dashboard", Handler: h.Dashboard},
		{Method: http.MethodGet, Path: "/api/v1/limits", Handler: h.GetLimits},

		// Stateless engine
		{Method: http.MethodPost, Path: "/api/v1/campus/reconcile", Handler: h.ReconcileCampus},
		{Method: http.MethodPost, Path: "/api/v1/campus/validate", Handler: h.ValidateCampus},
		{Method: http.MethodPost, Path: "/api/v1/campus/derive", Handler: h.DeriveParams},
		{Method: http.MethodPost, Path: "/api/v1/campus/model", Handler: h.ComputeModel},
		{Method: http.MethodPost, Path: "/api/v1/capacity", Handler: h.ComputeCapacity},

		// Campus lifecycle
		{Method: http.MethodGet, Path: "/api/v1/campus", Handler: h.GetCampus},
		{Method: http.MethodPut, Path: "/api/v1/campus", Handler: h.SetCampus},
		{Method: http.MethodPost, Path: "/api/v1/campus/new", Handler: h.NewCampus},
		{Method: http.MethodPost, Path: "/api/v1/campus/fetch", Handler: h.FetchCampus},
		{Method: http.MethodPost, Path: "/api/v1/campus/import/vsphere", Handler: h.ImportVSphere},

		// Stored-campus projections
		{Method: http.MethodGet, Path: "/api/v1/campus/model", Handler: h.GetModel},
		{Method: http.MethodGet, Path: "/api/v1/campus/explorer", Handler: h.GetExplorer},
		{Method: http.MethodGet, Path: "/api/v1/campus/specs", Handler: h.GetSpecs},

		// Patches
		{Method: http.MethodPost, Path: "/api/v1/campus/patch/profile", Handler: h.PatchProfile},
		{Method: http.MethodPost, Path: "/api/v1/campus/patch/properties", Handler: h.PatchProperties},

		// Scenario & analysis
		{Method: http.MethodPost, Path: "/api/v1/scenario/compare", Handler: h.CompareScenario},
		{Method: http.MethodGet, Path: "/api/v1/constraints", Handler: h.AnalyzeConstraint},
		{Method: http.MethodGet, Path: "/api/v1/advisories", Handler: h.GetAdvisories},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
