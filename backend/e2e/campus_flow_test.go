// ABOUTME: End-to-end tests for the campus workflow over a live HTTP server
// ABOUTME: Drives load, model, compare, patch, and advisory flows through the full stack

package e2e

import (
	"net/http"
	"testing"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// TestCampusLifecycle_E2E walks the primary workflow end to end: load a
// campus, read it back, model it, compare a what-if, apply the patch, and
// confirm the dashboard and advisories reflect the new state.
func TestCampusLifecycle_E2E(t *testing.T) {
	server := newTestServer(t, []string{"*"})

	// Before any campus is loaded, reads fail with a pointer to the load route
	resp := doJSON(t, "GET", server.URL+"/api/v1/campus", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 before loading a campus, got %d", resp.StatusCode)
	}
	var errResp models.ErrorResponse
	decodeInto(t, resp, &errResp)
	if errResp.Error != "No campus loaded. Set one via PUT /api/v1/campus first." {
		t.Errorf("Unexpected no-campus error: %q", errResp.Error)
	}

	// Load the fixture; the response is the reconciled tree
	resp = doJSON(t, "PUT", server.URL+"/api/v1/campus", sampleCampus())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 loading campus, got %d", resp.StatusCode)
	}
	var stored models.Campus
	decodeInto(t, resp, &stored)
	if stored.ID != "campus-1" {
		t.Errorf("Expected campus-1, got %s", stored.ID)
	}
	if len(stored.Zones) != 1 || len(stored.Zones[0].Halls) != 2 {
		t.Fatalf("Expected 1 zone with 2 halls, got %+v", stored.Zones)
	}
	hall2 := stored.Zones[0].Halls[1]
	if hall2.Index != 2 {
		t.Errorf("Expected hall-2 index 2 after reconcile, got %d", hall2.Index)
	}
	if hall2.RackStartIndex != 11 || hall2.RackEndIndex != 20 {
		t.Errorf("Expected hall-2 rack span 11-20, got %d-%d", hall2.RackStartIndex, hall2.RackEndIndex)
	}

	// Read back
	resp = doJSON(t, "GET", server.URL+"/api/v1/campus", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 reading campus, got %d", resp.StatusCode)
	}
	var fetched models.Campus
	decodeInto(t, resp, &fetched)
	if fetched.Name != "East Campus" {
		t.Errorf("Expected East Campus, got %s", fetched.Name)
	}

	// Aggregated model
	resp = doJSON(t, "GET", server.URL+"/api/v1/campus/model", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from model, got %d", resp.StatusCode)
	}
	var model models.CampusModel
	decodeInto(t, resp, &model)
	if model.Totals.RackCount != 20 {
		t.Errorf("Expected 20 racks placed, got %d", model.Totals.RackCount)
	}
	if model.Totals.RackCapacity != 248 {
		t.Errorf("Expected rack capacity 248, got %d", model.Totals.RackCapacity)
	}
	if model.Totals.UtilizationPct != 8.1 {
		t.Errorf("Expected utilization 8.1, got %v", model.Totals.UtilizationPct)
	}
	if model.Mix.DominantRedundancy != models.RedundancyN1 {
		t.Errorf("Expected dominant redundancy N+1, got %s", model.Mix.DominantRedundancy)
	}

	// What-if at 12 kW: compare only, stored campus stays at 10 kW
	input := models.WhatIfInput{
		Scope:   models.PatchScope{Level: models.ScopeCampus},
		Profile: &models.RackProfilePatch{RackDensityKW: fptr(12)},
	}
	resp = doJSON(t, "POST", server.URL+"/api/v1/scenario/compare", input)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from compare, got %d", resp.StatusCode)
	}
	var cmp models.WhatIfComparison
	decodeInto(t, resp, &cmp)
	if !cmp.Changed {
		t.Error("Expected comparison to report a change")
	}
	if cmp.Current.CriticalKW != 200 {
		t.Errorf("Expected current critical 200 kW, got %v", cmp.Current.CriticalKW)
	}
	if cmp.Proposed.CriticalKW != 240 {
		t.Errorf("Expected proposed critical 240 kW, got %v", cmp.Proposed.CriticalKW)
	}
	if cmp.Delta.CriticalKWChange != 40 {
		t.Errorf("Expected critical delta 40 kW, got %v", cmp.Delta.CriticalKWChange)
	}
	if cmp.Delta.RackCountChange != 0 {
		t.Errorf("Expected no rack count change, got %d", cmp.Delta.RackCountChange)
	}

	// Dashboard still shows the unpatched campus and caches the second read
	resp = doJSON(t, "GET", server.URL+"/api/v1/dashboard", nil)
	var dash models.DashboardResponse
	decodeInto(t, resp, &dash)
	if !dash.HasCampus {
		t.Fatal("Expected dashboard to report a campus")
	}
	if dash.Params.RackDensityKW != 10 {
		t.Errorf("Expected density 10 before patch, got %v", dash.Params.RackDensityKW)
	}
	if dash.Metadata.Cached {
		t.Error("Expected first dashboard read to be uncached")
	}

	resp = doJSON(t, "GET", server.URL+"/api/v1/dashboard", nil)
	decodeInto(t, resp, &dash)
	if !dash.Metadata.Cached {
		t.Error("Expected second dashboard read to be cached")
	}

	// Apply the patch for real
	patch := map[string]interface{}{
		"scope": models.PatchScope{Level: models.ScopeCampus},
		"patch": models.RackProfilePatch{RackDensityKW: fptr(12)},
	}
	resp = doJSON(t, "POST", server.URL+"/api/v1/campus/patch/profile", patch)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from patch, got %d", resp.StatusCode)
	}
	var patched struct {
		Changed bool                `json:"changed"`
		Model   *models.CampusModel `json:"model"`
	}
	decodeInto(t, resp, &patched)
	if !patched.Changed {
		t.Error("Expected patch to report a change")
	}
	if patched.Model.Params.RackDensityKW != 12 {
		t.Errorf("Expected patched model density 12, got %v", patched.Model.Params.RackDensityKW)
	}

	// Patch invalidated the dashboard cache; the fresh read shows 12 kW
	resp = doJSON(t, "GET", server.URL+"/api/v1/dashboard", nil)
	decodeInto(t, resp, &dash)
	if dash.Metadata.Cached {
		t.Error("Expected fresh dashboard after patch")
	}
	if dash.Params.RackDensityKW != 12 {
		t.Errorf("Expected density 12 after patch, got %v", dash.Params.RackDensityKW)
	}
	if dash.Constraint.ConstrainingResource != "Power" {
		t.Errorf("Expected Power constraint, got %s", dash.Constraint.ConstrainingResource)
	}

	// Advisories follow the patched campus
	resp = doJSON(t, "GET", server.URL+"/api/v1/advisories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from advisories, got %d", resp.StatusCode)
	}
	var adv models.AdvisoriesResponse
	decodeInto(t, resp, &adv)
	if adv.ConstrainingResource != "Power" {
		t.Errorf("Expected Power as constraining resource, got %s", adv.ConstrainingResource)
	}
	foundDensity := false
	for _, a := range adv.Advisories {
		if a.Type == models.AdvisoryRaiseDensity {
			foundDensity = true
		}
	}
	if !foundDensity {
		t.Errorf("Expected a raise_density advisory, got %+v", adv.Advisories)
	}

	// Entity drill-down
	resp = doJSON(t, "GET", server.URL+"/api/v1/campus/specs?id=hall-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from specs, got %d", resp.StatusCode)
	}
	var hallSpec models.SpecsSummary
	decodeInto(t, resp, &hallSpec)
	if hallSpec.Kind != "hall" || hallSpec.RackCount != 10 {
		t.Errorf("Expected hall-1 with 10 racks, got kind=%s racks=%d", hallSpec.Kind, hallSpec.RackCount)
	}
}

// TestStatelessEngine_E2E exercises the parameters-only endpoints that do
// not touch the stored campus.
func TestStatelessEngine_E2E(t *testing.T) {
	server := newTestServer(t, []string{"*"})

	params := models.Params{
		HallCount:          2,
		CriticalLoadMW:     1.0,
		RackDensityKW:      10,
		TargetPUE:          1.5,
		WhitespaceRatio:    0.5,
		WhitespaceAreaSqFt: 10000,
	}
	resp := doJSON(t, "POST", server.URL+"/api/v1/capacity", params)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from capacity, got %d", resp.StatusCode)
	}
	var capModel models.CapacityModel
	decodeInto(t, resp, &capModel)
	if capModel.RackCountFromPower != 100 {
		t.Errorf("Expected 100 racks from power, got %d", capModel.RackCountFromPower)
	}
	if capModel.RackCount != 100 {
		t.Errorf("Expected 100 racks placed, got %d", capModel.RackCount)
	}
	if len(capModel.Halls) != 2 {
		t.Fatalf("Expected 2 halls, got %d", len(capModel.Halls))
	}
	if capModel.Halls[0].RackCount != 50 || capModel.Halls[1].RackCount != 50 {
		t.Errorf("Expected 50 racks per hall, got %d and %d",
			capModel.Halls[0].RackCount, capModel.Halls[1].RackCount)
	}

	// Validation reports the tree as given, no clamping
	bad := sampleCampus()
	bad.TargetPUE = 3.0
	resp = doJSON(t, "POST", server.URL+"/api/v1/campus/validate", bad)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from validate, got %d", resp.StatusCode)
	}
	var report models.ValidationResult
	decodeInto(t, resp, &report)
	if report.Valid {
		t.Error("Expected PUE 3.0 campus to be invalid")
	}
	if len(report.Issues) != 1 {
		t.Errorf("Expected 1 issue, got %d", len(report.Issues))
	}

	// Derivation returns the flat parameter set
	resp = doJSON(t, "POST", server.URL+"/api/v1/campus/derive", sampleCampus())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from derive, got %d", resp.StatusCode)
	}
	var derived models.Params
	decodeInto(t, resp, &derived)
	if derived.HallCount != 2 {
		t.Errorf("Expected hall count 2, got %d", derived.HallCount)
	}
	if derived.TotalRacks != 20 {
		t.Errorf("Expected 20 total racks, got %d", derived.TotalRacks)
	}
	if derived.RackDensityKW != 10 {
		t.Errorf("Expected density 10, got %v", derived.RackDensityKW)
	}
}

// TestExplorerProjection_E2E reads the navigation tree through the live server.
func TestExplorerProjection_E2E(t *testing.T) {
	server := newTestServer(t, nil)
	loadSampleCampus(t, server.URL)

	resp := doJSON(t, "GET", server.URL+"/api/v1/campus/explorer", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from explorer, got %d", resp.StatusCode)
	}
	var root models.ExplorerNode
	decodeInto(t, resp, &root)
	if root.Kind != "campus" || root.RackCount != 20 {
		t.Errorf("Expected campus root with 20 racks, got kind=%s racks=%d", root.Kind, root.RackCount)
	}
	if len(root.Children) != 1 || len(root.Children[0].Children) != 2 {
		t.Fatalf("Expected 1 zone with 2 halls in the tree, got %+v", root.Children)
	}
	if root.Children[0].Children[0].Name != "Hall 1" {
		t.Errorf("Expected first hall named Hall 1, got %s", root.Children[0].Children[0].Name)
	}
}

// TestNoOpPatch_E2E confirms no-op patches leave the stored campus untouched.
func TestNoOpPatch_E2E(t *testing.T) {
	server := newTestServer(t, nil)
	loadSampleCampus(t, server.URL)

	patch := map[string]interface{}{
		"scope": models.PatchScope{Level: models.ScopeCampus},
		"patch": models.RackProfilePatch{},
	}
	resp := doJSON(t, "POST", server.URL+"/api/v1/campus/patch/profile", patch)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from empty patch, got %d", resp.StatusCode)
	}
	var patched struct {
		Changed bool `json:"changed"`
	}
	decodeInto(t, resp, &patched)
	if patched.Changed {
		t.Error("Expected empty profile patch to be a no-op")
	}

	// A property patch matching the current value is also a no-op
	resp = doJSON(t, "POST", server.URL+"/api/v1/campus/patch/properties",
		models.PropertyPatch{TargetPUE: fptr(1.45)})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from property patch, got %d", resp.StatusCode)
	}
	decodeInto(t, resp, &patched)
	if patched.Changed {
		t.Error("Expected matching property patch to be a no-op")
	}
}

// TestMethodNotAllowed_E2E confirms the router rejects wrong methods on a
// registered path instead of falling through to a handler.
func TestMethodNotAllowed_E2E(t *testing.T) {
	server := newTestServer(t, nil)

	resp := doJSON(t, "DELETE", server.URL+"/api/v1/campus", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for DELETE on campus, got %d", resp.StatusCode)
	}
}

func fptr(f float64) *float64 { return &f }
