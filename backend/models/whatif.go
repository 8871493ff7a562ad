// ABOUTME: Data models for what-if input, summaries, and comparison
// ABOUTME: Supports capacity planning with proposed profile and property changes

package models

// WhatIfInput represents proposed changes for what-if analysis. Either patch
// may be nil; the scope defaults to the whole campus.
type WhatIfInput struct {
	Scope      PatchScope        `json:"scope"`
	Profile    *RackProfilePatch `json:"profile,omitempty"`
	Properties *PropertyPatch    `json:"properties,omitempty"`
}

// WhatIfSummary represents the headline metrics of one computed model
type WhatIfSummary struct {
	RackCount       int     `json:"rack_count"`
	RackCapacity    int     `json:"rack_capacity"`
	UtilizationPct  float64 `json:"utilization_pct"`
	CriticalKW      float64 `json:"critical_kw"`
	TotalFacilityMW float64 `json:"total_facility_mw"`
	GrossSqFt       float64 `json:"gross_sqft"`
	TargetPUE       float64 `json:"target_pue"`
	AvgDensityKW    float64 `json:"avg_density_kw"`
}

// WhatIfWarning represents a tradeoff warning
type WhatIfWarning struct {
	Severity string `json:"severity"` // "info", "warning", "critical"
	Message  string `json:"message"`
}

// WhatIfDelta represents changes between current and proposed
type WhatIfDelta struct {
	RackCountChange      int     `json:"rack_count_change"`
	UtilizationChangePct float64 `json:"utilization_change_pct"`
	CriticalKWChange     float64 `json:"critical_kw_change"`
	FacilityMWChange     float64 `json:"facility_mw_change"`
	AreaChangeSqFt       float64 `json:"area_change_sqft"`
}

// WhatIfComparison represents the full comparison response. Changed is false
// when the proposed patches resolved to a no-op.
type WhatIfComparison struct {
	Changed  bool            `json:"changed"`
	Current  WhatIfSummary   `json:"current"`
	Proposed WhatIfSummary   `json:"proposed"`
	Delta    WhatIfDelta     `json:"delta"`
	Warnings []WhatIfWarning `json:"warnings"`
}
