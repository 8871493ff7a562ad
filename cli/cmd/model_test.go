// ABOUTME: Tests for the model command
// ABOUTME: Verifies model summary output, file handling, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

func modelFixture() *models.CampusModel {
	return &models.CampusModel{
		CampusID: "campus-1",
		Name:     "East Campus",
		Params: models.Params{
			HallCount:     2,
			RackDensityKW: 10,
			TargetPUE:     1.45,
		},
		Halls: []models.HallModel{
			{
				Name:           "Hall 1",
				AssignedRacks:  10,
				RackStartIndex: 1,
				RackEndIndex:   10,
				Profile:        models.RackProfile{RackDensityKW: 10},
			},
			{
				Name:           "Hall 2",
				AssignedRacks:  10,
				RackStartIndex: 11,
				RackEndIndex:   20,
				Profile:        models.RackProfile{RackDensityKW: 10},
			},
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
			WhitespaceSqFt:  4500,
			GrossSqFt:       10000,
		},
		Mix: models.ProfileMix{
			DominantRedundancy:  models.RedundancyN1,
			DominantCoolingType: models.CoolingAir,
			DominantContainment: models.ContainmentHotAisle,
		},
	}
}

func TestModelCommand_ServerModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET for stored model, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(modelFixture())
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runModel(context.Background(), &buf, nil)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("East Campus")) {
		t.Error("expected campus name in output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("20 / 248")) {
		t.Error("expected rack totals in output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("R0011-R0020")) {
		t.Error("expected hall rack span in output")
	}
}

func TestModelCommand_FileArgument(t *testing.T) {
	var received models.Campus
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST for file model, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/campus/model" {
			t.Errorf("expected stateless model path, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(modelFixture())
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "campus.yaml")
	doc := "id: campus-9\nname: File Campus\ntarget_pue: 1.4\nwhitespace_ratio: 0.45\nzones: []\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write campus file: %v", err)
	}

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runModel(context.Background(), &buf, []string{path})

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if received.Name != "File Campus" {
		t.Errorf("expected file campus to reach the model endpoint, got %q", received.Name)
	}
}

func TestModelCommand_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(modelFixture())
	}))
	defer server.Close()

	apiURL = server.URL
	jsonOutput = true
	defer func() {
		apiURL = ""
		jsonOutput = false
	}()

	var buf bytes.Buffer
	exitCode := runModel(context.Background(), &buf, nil)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}

	var parsed models.CampusModel
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Totals.RackCapacity != 248 {
		t.Errorf("expected full model in JSON output, got capacity %d", parsed.Totals.RackCapacity)
	}
}

func TestModelCommand_NoCampus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "No campus loaded. Set one via PUT /api/v1/campus first.",
			Code:  http.StatusBadRequest,
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runModel(context.Background(), &buf, nil)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("No campus loaded")) {
		t.Error("expected backend message in output")
	}
}

func TestFormatModelHuman(t *testing.T) {
	output := formatModelHuman(modelFixture())

	checks := []string{
		"East Campus",
		"20 / 248 capacity (8.1%)",
		"0.29 MW (PUE 1.45)",
		"N+1 / Air-Cooled / Hot Aisle",
		"Hall 1",
		"R0001-R0010",
	}
	for _, check := range checks {
		if !bytes.Contains([]byte(output), []byte(check)) {
			t.Errorf("expected output to contain '%s'", check)
		}
	}
}
