// ABOUTME: Tests for the status command
// ABOUTME: Verifies dashboard summary output formatting and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

func statusFixture() *models.DashboardResponse {
	return &models.DashboardResponse{
		HasCampus:  true,
		CampusID:   "campus-1",
		CampusName: "East Campus",
		Params: models.Params{
			TargetPUE: 1.45,
		},
		Totals: models.CampusTotals{
			ZoneCount:       1,
			HallCount:       2,
			RackCount:       20,
			RackCapacity:    248,
			UtilizationPct:  8.1,
			CriticalKW:      200,
			CriticalITMW:    0.2,
			TotalFacilityMW: 0.29,
		},
		Constraint: models.ConstraintAnalysis{
			ConstrainingResource: "Power",
		},
		Advisories: []models.Advisory{
			{Type: models.AdvisoryRaiseDensity, ImpactLevel: "low", Title: "Raise rack density"},
		},
		Valid: true,
	}
}

func TestFormatStatusHuman_WithCampus(t *testing.T) {
	output := formatStatusHuman(statusFixture())

	// Check key elements are present
	checks := []string{
		"East Campus",
		"2",     // halls
		"20",    // racks placed
		"248",   // rack capacity
		"8.1",   // utilization
		"Power", // constraining resource
		"Raise rack density",
	}
	for _, check := range checks {
		if !bytes.Contains([]byte(output), []byte(check)) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
}

func TestFormatStatusHuman_NoCampus(t *testing.T) {
	resp := &models.DashboardResponse{HasCampus: false}

	output := formatStatusHuman(resp)

	if !bytes.Contains([]byte(output), []byte("No campus loaded")) {
		t.Error("expected message about no campus")
	}
}

func TestFormatStatusHuman_Issues(t *testing.T) {
	resp := statusFixture()
	resp.Valid = false
	resp.IssueCount = 3

	output := formatStatusHuman(resp)

	if !bytes.Contains([]byte(output), []byte("3 issue(s)")) {
		t.Error("expected issue count in output")
	}
}

func TestFormatStatusJSON(t *testing.T) {
	output := formatStatusJSON(statusFixture())

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["campus_name"] != "East Campus" {
		t.Errorf("expected campus name in JSON, got %v", parsed["campus_name"])
	}
}

func TestStatusCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statusFixture())
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runStatus(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("East Campus")) {
		t.Error("expected campus name in output")
	}
}

func TestStatusCommand_NoCampus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DashboardResponse{HasCampus: false})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runStatus(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2 for no campus, got %d", exitCode)
	}
}

func TestStatusCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:99999"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runStatus(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}

func TestCapacityStatus(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
	}{
		{70.0, "ok"},
		{85.0, "warning"},
		{95.0, "critical"},
	}

	for _, tt := range tests {
		result := capacityStatus(tt.percent, 80, 90)
		if result != tt.expected {
			t.Errorf("capacityStatus(%.1f) = %s, expected %s", tt.percent, result, tt.expected)
		}
	}
}
