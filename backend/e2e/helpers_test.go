// ABOUTME: Shared harness for end-to-end API tests
// ABOUTME: Spins up the full route table behind the same middleware chain main.go builds

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/cache"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/handlers"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/middleware"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// newTestServer starts the API over the full route table, wrapped in the
// same logging and CORS chain main.go assembles. Extra middleware lands
// after CORS, which is where rate limiting sits in production. The OPTIONS
// preflight handler is registered outside the extra chain, also as in
// main.go.
func newTestServer(t *testing.T, allowedOrigins []string, extra ...func(http.HandlerFunc) http.HandlerFunc) *httptest.Server {
	t.Helper()

	h := handlers.NewHandler(nil, cache.New(time.Minute))
	corsMW := middleware.CORS(allowedOrigins)
	chain := []func(http.HandlerFunc) http.HandlerFunc{middleware.LogRequest, corsMW}
	chain = append(chain, extra...)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
	}
	mux.HandleFunc("OPTIONS /api/v1/", corsMW(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// sampleCampus returns a two-hall campus that reconciles without clamping:
// one zone, 20 racks at 10 kW.
func sampleCampus() *models.Campus {
	profile := models.RackProfile{
		RackDensityKW: 10,
		Redundancy:    models.RedundancyN1,
		CoolingType:   models.CoolingAir,
		Containment:   models.ContainmentHotAisle,
	}
	return &models.Campus{
		ID:              "campus-1",
		Name:            "East Campus",
		TargetPUE:       1.45,
		WhitespaceRatio: 0.45,
		Zones: []*models.Zone{
			{
				ID:           "zone-1",
				Name:         "Zone 1",
				HallDefaults: profile,
				RackRules: models.RackRules{
					MinRackCount:     1,
					MaxRackCount:     100,
					DefaultRackCount: 10,
					Step:             1,
				},
				Halls: []*models.Hall{
					{ID: "hall-1", Name: "Hall 1", RackCount: 10, Profile: profile},
					{ID: "hall-2", Name: "Hall 2", RackCount: 10, Profile: profile},
				},
			},
		},
	}
}

// doJSON sends a request against the live server, marshaling v as the JSON
// body when non-nil, and returns the raw response.
func doJSON(t *testing.T, method, url string, v interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to build %s %s: %v", method, url, err)
	}
	if v != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, url, err)
	}
	return resp
}

// decodeInto decodes the response body into v and closes the body.
func decodeInto(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

// loadSampleCampus PUTs the fixture campus and fails the test on any
// non-200 response.
func loadSampleCampus(t *testing.T, baseURL string) {
	t.Helper()
	resp := doJSON(t, "PUT", baseURL+"/api/v1/campus", sampleCampus())
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Failed to load sample campus: status %d, body %s", resp.StatusCode, body)
	}
}
