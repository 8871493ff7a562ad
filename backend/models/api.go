// ABOUTME: API envelope types shared by handlers and clients
// ABOUTME: Error responses and the dashboard summary payload

package models

import "time"

// ErrorResponse is the JSON error envelope for all API failures
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// DashboardResponse is the one-call summary for dashboards: the loaded
// campus rolled up with its constraint analysis and advisories.
type DashboardResponse struct {
	HasCampus  bool               `json:"has_campus"`
	CampusID   string             `json:"campus_id,omitempty"`
	CampusName string             `json:"campus_name,omitempty"`
	Params     Params             `json:"params"`
	Totals     CampusTotals       `json:"totals"`
	Zones      []ZoneModel        `json:"zones"`
	Mix        ProfileMix         `json:"mix"`
	Constraint ConstraintAnalysis `json:"constraint"`
	Advisories []Advisory         `json:"advisories"`
	Valid      bool               `json:"valid"`
	IssueCount int                `json:"issue_count"`
	Metadata   Metadata           `json:"metadata"`
}

// Metadata carries response provenance
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached"`
	Source    string    `json:"source,omitempty"`
}
