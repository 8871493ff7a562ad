// ABOUTME: HTTP client for the campus modeling API
// ABOUTME: Wraps API calls with friendly error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

const apiPrefix = "/api/v1"

// Client is the API client for the campus modeling backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend address this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status       string `json:"status"`
	HasCampus    bool   `json:"has_campus"`
	VSphere      string `json:"vsphere"`
	CacheItems   int    `json:"cache_items"`
	Campus       string `json:"campus,omitempty"`
	CampusSource string `json:"campus_source,omitempty"`
}

// NewCampusRequest names a campus and optionally overrides the sizing params
type NewCampusRequest struct {
	Name   string         `json:"name"`
	Params *models.Params `json:"params,omitempty"`
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Dashboard calls GET /api/v1/dashboard
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	var dash models.DashboardResponse
	if err := c.get(ctx, "/dashboard", &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// GetCampus calls GET /api/v1/campus
func (c *Client) GetCampus(ctx context.Context) (*models.Campus, error) {
	var campus models.Campus
	if err := c.get(ctx, "/campus", &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// SetCampus calls PUT /api/v1/campus and returns the reconciled tree
func (c *Client) SetCampus(ctx context.Context, campus *models.Campus) (*models.Campus, error) {
	var stored models.Campus
	if err := c.send(ctx, http.MethodPut, "/campus", campus, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// NewCampus calls POST /api/v1/campus/new to scaffold and store a campus
func (c *Client) NewCampus(ctx context.Context, name string, params *models.Params) (*models.Campus, error) {
	var campus models.Campus
	req := NewCampusRequest{Name: name, Params: params}
	if err := c.send(ctx, http.MethodPost, "/campus/new", req, &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// GetModel calls GET /api/v1/campus/model for the stored campus
func (c *Client) GetModel(ctx context.Context) (*models.CampusModel, error) {
	var model models.CampusModel
	if err := c.get(ctx, "/campus/model", &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// ComputeModel calls POST /api/v1/campus/model with a local document.
// The server builds the model without touching its stored campus.
func (c *Client) ComputeModel(ctx context.Context, campus *models.Campus) (*models.CampusModel, error) {
	var model models.CampusModel
	if err := c.send(ctx, http.MethodPost, "/campus/model", campus, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// ValidateCampus calls POST /api/v1/campus/validate with a local document
func (c *Client) ValidateCampus(ctx context.Context, campus *models.Campus) (*models.ValidationResult, error) {
	var result models.ValidationResult
	if err := c.send(ctx, http.MethodPost, "/campus/validate", campus, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompareScenario calls POST /api/v1/scenario/compare
func (c *Client) CompareScenario(ctx context.Context, input *models.WhatIfInput) (*models.WhatIfComparison, error) {
	var comparison models.WhatIfComparison
	if err := c.send(ctx, http.MethodPost, "/scenario/compare", input, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// ImportVSphere calls POST /api/v1/campus/import/vsphere. The backend
// drafts a campus from live inventory and stores the reconciled result.
func (c *Client) ImportVSphere(ctx context.Context) (*models.Campus, error) {
	var campus models.Campus
	if err := c.send(ctx, http.MethodPost, "/campus/import/vsphere", nil, &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// GetAdvisories calls GET /api/v1/advisories
func (c *Client) GetAdvisories(ctx context.Context) (*models.AdvisoriesResponse, error) {
	var advisories models.AdvisoriesResponse
	if err := c.get(ctx, "/advisories", &advisories); err != nil {
		return nil, err
	}
	return &advisories, nil
}

// get performs a GET request and decodes the response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

// send performs a request with an optional JSON body and decodes the
// response into out
func (c *Client) send(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
