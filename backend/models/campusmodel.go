// ABOUTME: Aggregated campus model: per-hall/zone/campus summaries and projections
// ABOUTME: Output of the campus-aware path consumed by explorers and detail panels

package models

// HallModel is the per-hall summary in the aggregated campus model.
// AssignedRacks is authoritative up to the hall's physical capacity; the
// requested count is kept alongside so clipping is visible.
type HallModel struct {
	ID             string      `json:"id"`
	ZoneID         string      `json:"zone_id"`
	Name           string      `json:"name"`
	Index          int         `json:"index"`
	RequestedRacks int         `json:"requested_racks"`
	AssignedRacks  int         `json:"assigned_racks"`
	Capacity       int         `json:"capacity"`
	UtilizationPct float64     `json:"utilization_pct"`
	CriticalKW     float64     `json:"critical_kw"`
	FacilityKW     float64     `json:"facility_kw"`
	AreaSqFt       float64     `json:"area_sqft"`
	RackStartIndex int         `json:"rack_start_index"`
	RackEndIndex   int         `json:"rack_end_index"`
	RowCount       int         `json:"row_count"`
	RacksPerRow    []int       `json:"racks_per_row"`
	Profile        RackProfile `json:"profile"`
}

// ZoneModel is the per-zone rollup.
type ZoneModel struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Index          int     `json:"index"`
	HallCount      int     `json:"hall_count"`
	RackCount      int     `json:"rack_count"`
	Capacity       int     `json:"capacity"`
	UtilizationPct float64 `json:"utilization_pct"`
	CriticalKW     float64 `json:"critical_kw"`
	FacilityKW     float64 `json:"facility_kw"`
	AreaSqFt       float64 `json:"area_sqft"`
}

// CampusTotals is the campus-wide rollup.
type CampusTotals struct {
	ZoneCount       int     `json:"zone_count"`
	HallCount       int     `json:"hall_count"`
	RackCount       int     `json:"rack_count"`
	RackCapacity    int     `json:"rack_capacity"`
	UtilizationPct  float64 `json:"utilization_pct"`
	CriticalKW      float64 `json:"critical_kw"`
	CriticalITMW    float64 `json:"critical_it_mw"`
	TotalFacilityMW float64 `json:"total_facility_mw"`
	WhitespaceSqFt  float64 `json:"whitespace_sqft"`
	GrossSqFt       float64 `json:"gross_sqft"`
}

// ProfileShare counts the halls and racks carrying one categorical value.
type ProfileShare struct {
	Value     string `json:"value"`
	HallCount int    `json:"hall_count"`
	RackCount int    `json:"rack_count"`
}

// ProfileMix summarizes the spread of profile values across the campus,
// one share list per categorical field plus the dominant value of each.
type ProfileMix struct {
	Redundancy          []ProfileShare `json:"redundancy"`
	CoolingType         []ProfileShare `json:"cooling_type"`
	Containment         []ProfileShare `json:"containment"`
	DominantRedundancy  string         `json:"dominant_redundancy"`
	DominantCoolingType string         `json:"dominant_cooling_type"`
	DominantContainment string         `json:"dominant_containment"`
}

// ExplorerNode is one node of the navigation-tree projection.
type ExplorerNode struct {
	ID             string         `json:"id"`
	Kind           string         `json:"kind"` // "campus", "zone", "hall"
	Name           string         `json:"name"`
	Index          int            `json:"index"`
	RackCount      int            `json:"rack_count"`
	UtilizationPct float64        `json:"utilization_pct"`
	Children       []ExplorerNode `json:"children,omitempty"`
}

// SpecsSummary is the detail-panel projection for one entity, keyed by id.
type SpecsSummary struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	Index          int     `json:"index"`
	HallCount      int     `json:"hall_count,omitempty"`
	RackCount      int     `json:"rack_count"`
	Capacity       int     `json:"capacity"`
	UtilizationPct float64 `json:"utilization_pct"`
	CriticalKW     float64 `json:"critical_kw"`
	FacilityKW     float64 `json:"facility_kw"`
	AreaSqFt       float64 `json:"area_sqft"`
	RackDensityKW  float64 `json:"rack_density_kw,omitempty"`
	Redundancy     string  `json:"redundancy,omitempty"`
	CoolingType    string  `json:"cooling_type,omitempty"`
	Containment    string  `json:"containment,omitempty"`
	TargetPUE      float64 `json:"target_pue,omitempty"`
}

// CampusModel is the aggregated model: the flat capacity projection plus
// per-hall/zone/campus summaries, profile mix, and navigation projections.
type CampusModel struct {
	CampusID string                  `json:"campus_id"`
	Name     string                  `json:"name"`
	Params   Params                  `json:"params"`
	Capacity CapacityModel           `json:"capacity"`
	Halls    []HallModel             `json:"halls"`
	Zones    []ZoneModel             `json:"zones"`
	Totals   CampusTotals            `json:"totals"`
	Mix      ProfileMix              `json:"mix"`
	Explorer ExplorerNode            `json:"explorer"`
	Specs    map[string]SpecsSummary `json:"specs"`
}
