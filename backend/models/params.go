// ABOUTME: Flat facility parameter set derived from (or substituted for) a campus
// ABOUTME: Consumed by the capacity model and used as the fallback baseline

package models

import "fmt"

// Params is the flat facility profile. It is both the output of parameter
// derivation and the fallback record supplied by callers for campuses with
// missing data.
type Params struct {
	HallCount          int     `json:"hall_count" yaml:"hall_count"`
	TotalRacks         int     `json:"total_racks" yaml:"total_racks"`
	CriticalLoadMW     float64 `json:"critical_load_mw" yaml:"critical_load_mw"`
	RackDensityKW      float64 `json:"rack_density_kw" yaml:"rack_density_kw"`
	TargetPUE          float64 `json:"target_pue" yaml:"target_pue"`
	WhitespaceRatio    float64 `json:"whitespace_ratio" yaml:"whitespace_ratio"`
	WhitespaceAreaSqFt float64 `json:"whitespace_area_sqft" yaml:"whitespace_area_sqft"`
	Redundancy         string  `json:"redundancy" yaml:"redundancy"`
	CoolingType        string  `json:"cooling_type" yaml:"cooling_type"`
	Containment        string  `json:"containment" yaml:"containment"`
}

// CanonicalKey renders the params at fixed precision. Value-equal params
// always produce the same key, which makes it usable as a cache key.
func (p Params) CanonicalKey() string {
	return fmt.Sprintf("h%d|r%d|cl%.2f|d%.2f|pue%.2f|wr%.2f|wa%.0f|%s|%s|%s",
		p.HallCount, p.TotalRacks, p.CriticalLoadMW, p.RackDensityKW,
		p.TargetPUE, p.WhitespaceRatio, p.WhitespaceAreaSqFt,
		p.Redundancy, p.CoolingType, p.Containment)
}
