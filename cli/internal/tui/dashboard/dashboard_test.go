// ABOUTME: Tests for dashboard component
// ABOUTME: Validates campus metrics display with visual widgets

package dashboard

import (
	"strings"
	"testing"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

func testResponse() *models.DashboardResponse {
	return &models.DashboardResponse{
		HasCampus:  true,
		CampusID:   "campus-1",
		CampusName: "Sunrise Campus",
		Params: models.Params{
			HallCount:     4,
			TotalRacks:    480,
			RackDensityKW: 12,
			TargetPUE:     1.4,
		},
		Totals: models.CampusTotals{
			ZoneCount:       2,
			HallCount:       4,
			RackCount:       480,
			RackCapacity:    640,
			UtilizationPct:  75.0,
			CriticalKW:      5760,
			CriticalITMW:    5.76,
			TotalFacilityMW: 8.06,
			WhitespaceSqFt:  48000,
			GrossSqFt:       96000,
		},
		Mix: models.ProfileMix{
			DominantRedundancy:  "N+1",
			DominantCoolingType: "Air-Cooled",
			DominantContainment: "Hot Aisle",
		},
		Constraint: models.ConstraintAnalysis{
			Resources: []models.ResourcePressure{
				{Name: "Power", UsedPercent: 96.0, UsedCapacity: 480, TotalCapacity: 500, Unit: "racks", IsConstraining: true},
				{Name: "Space", UsedPercent: 75.0, UsedCapacity: 480, TotalCapacity: 640, Unit: "racks"},
			},
			ConstrainingResource: "Power",
			Summary:              "Power is the constraining resource at 96.0% (480 of 500 racks)",
		},
		Valid: true,
	}
}

func TestDashboardView(t *testing.T) {
	d := New(testResponse(), 58, 24)
	view := d.View()

	if view == "" {
		t.Error("expected non-empty view")
	}

	tests := []string{
		"Sunrise Campus",   // Campus name
		"Zones",            // Count block title
		"Halls",            // Count block title
		"75%",              // Utilization percentage
		"480 / 640 racks",  // Utilization details
		"5.76 MW",          // Critical IT power
		"PUE 1.40",         // Facility subtitle
		"N+1",              // Dominant redundancy
		"Power*",           // Constraining resource marker
	}
	for _, expected := range tests {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestDashboardNilResponse(t *testing.T) {
	d := New(nil, 58, 24)
	view := d.View()

	if !strings.Contains(view, "Loading") {
		t.Error("expected loading message when response is nil")
	}
}

func TestDashboardNoCampus(t *testing.T) {
	d := New(&models.DashboardResponse{HasCampus: false}, 58, 24)
	view := d.View()

	if !strings.Contains(view, "No campus configured") {
		t.Errorf("expected no-campus message\nView:\n%s", view)
	}
}

func TestDashboardUpdate(t *testing.T) {
	d := New(nil, 58, 24)

	// Initial state should show loading
	view := d.View()
	if !strings.Contains(view, "Loading") {
		t.Error("expected loading message initially")
	}

	d.Update(testResponse())

	view = d.View()
	if strings.Contains(view, "Loading") {
		t.Error("should not show loading after update")
	}
	if !strings.Contains(view, "Sunrise Campus") {
		t.Errorf("expected campus name after update\nView:\n%s", view)
	}
}

func TestDashboardSetSize(t *testing.T) {
	d := New(nil, 58, 24)

	d.SetSize(120, 40)

	if d.width != 120 {
		t.Errorf("expected width 120, got %d", d.width)
	}
	if d.height != 40 {
		t.Errorf("expected height 40, got %d", d.height)
	}
}

func TestDashboardValidationIssues(t *testing.T) {
	resp := testResponse()
	resp.Valid = false
	resp.IssueCount = 3

	d := New(resp, 58, 24)
	view := d.View()

	if !strings.Contains(view, "3 validation issue(s)") {
		t.Errorf("expected validation issue count\nView:\n%s", view)
	}
}

func TestDashboardAdvisories(t *testing.T) {
	resp := testResponse()
	resp.Advisories = []models.Advisory{
		{Title: "Rack capacity nearly exhausted", ImpactLevel: "high"},
		{Title: "Consider DLC for high density", ImpactLevel: "medium"},
		{Title: "Improve PUE", ImpactLevel: "low"},
	}

	d := New(resp, 58, 24)
	view := d.View()

	if !strings.Contains(view, "Advisories") {
		t.Error("expected advisories section")
	}
	if !strings.Contains(view, "Rack capacity nearly exhausted") {
		t.Error("expected first advisory title")
	}
	// Only the top two are shown, the rest collapse into a counter
	if strings.Contains(view, "Improve PUE") {
		t.Error("expected third advisory to be collapsed")
	}
	if !strings.Contains(view, "1 more") {
		t.Errorf("expected overflow counter\nView:\n%s", view)
	}
}

func TestDashboardHistoryTracking(t *testing.T) {
	resp := testResponse()
	d := New(resp, 58, 24)

	// Initial history should have one entry
	if len(d.historyUtil) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(d.historyUtil))
	}

	// Update multiple times
	for i := 0; i < 10; i++ {
		resp.Totals.UtilizationPct = 50.0 + float64(i)
		d.Update(resp)
	}

	// History should be capped
	if len(d.historyUtil) != historyLimit {
		t.Errorf("expected %d history entries (capped), got %d", historyLimit, len(d.historyUtil))
	}

	// Trend line appears once there is more than one sample
	if !strings.Contains(d.View(), "Trend") {
		t.Error("expected trend line with history present")
	}
}

func TestDashboardNoCampusSkipsHistory(t *testing.T) {
	d := New(&models.DashboardResponse{HasCampus: false}, 58, 24)

	if len(d.historyUtil) != 0 {
		t.Errorf("expected no history without a campus, got %d", len(d.historyUtil))
	}
}
