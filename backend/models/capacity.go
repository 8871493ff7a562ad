// ABOUTME: Capacity/geometry model output types for the parameters-only path
// ABOUTME: Hall footprints, row packing, and facility power totals

package models

// HallCapacity is the computed geometry and rack allocation for one hall.
type HallCapacity struct {
	Index          int     `json:"index"`
	WhitespaceSqFt float64 `json:"whitespace_sqft"`
	GrossSqFt      float64 `json:"gross_sqft"`
	WidthFt        float64 `json:"width_ft"`
	LengthFt       float64 `json:"length_ft"`
	UsableWidthFt  float64 `json:"usable_width_ft"`
	UsableLengthFt float64 `json:"usable_length_ft"`
	MaxRows        int     `json:"max_rows"`
	MaxRacksPerRow int     `json:"max_racks_per_row"`
	Capacity       int     `json:"capacity"`
	RackCount      int     `json:"rack_count"`
	RackStartIndex int     `json:"rack_start_index"`
	RackEndIndex   int     `json:"rack_end_index"`
	RowCount       int     `json:"row_count"`
	RacksPerRow    []int   `json:"racks_per_row"`
}

// CapacityModel is the fully dimensioned facility model computed from a flat
// parameter set.
type CapacityModel struct {
	CriticalITMW        float64        `json:"critical_it_mw"`
	TotalFacilityMW     float64        `json:"total_facility_mw"`
	NonITOverheadMW     float64        `json:"non_it_overhead_mw"`
	WhitespaceSqFt      float64        `json:"whitespace_sqft"`
	GrossFacilitySqFt   float64        `json:"gross_facility_sqft"`
	HallCount           int            `json:"hall_count"`
	RackCountFromPower  int            `json:"rack_count_from_power"`
	RackCapacityBySpace int            `json:"rack_capacity_by_space"`
	RackCount           int            `json:"rack_count"`
	RackDensityKW       float64        `json:"rack_density_kw"`
	TargetPUE           float64        `json:"target_pue"`
	Halls               []HallCapacity `json:"halls"`
}
