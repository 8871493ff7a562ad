// ABOUTME: Shared numeric limits for campus parameters
// ABOUTME: Single source of truth for engine clamping and client-side sliders

package models

// Limit is an inclusive numeric range.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ParamLimits groups the clamping ranges for every tunable campus parameter.
type ParamLimits struct {
	TargetPUE          Limit `json:"target_pue"`
	WhitespaceRatio    Limit `json:"whitespace_ratio"`
	RackDensityKW      Limit `json:"rack_density_kw"`
	CriticalLoadMW     Limit `json:"critical_load_mw"`
	WhitespaceAreaSqFt Limit `json:"whitespace_area_sqft"`
}

// CampusLimits is the canonical limits table. The engine clamps against these
// ranges and the API serves them so clients can clamp before submitting.
var CampusLimits = ParamLimits{
	TargetPUE:          Limit{Min: 1.05, Max: 2.00},
	WhitespaceRatio:    Limit{Min: 0.25, Max: 0.65},
	RackDensityKW:      Limit{Min: 3, Max: 80},
	CriticalLoadMW:     Limit{Min: 0.5, Max: 1000},
	WhitespaceAreaSqFt: Limit{Min: 5000, Max: 1000000},
}

// ClampTargetPUE clamps v into the PUE range, rounded to two decimals.
func ClampTargetPUE(v float64) float64 {
	return Round2(Clamp(v, CampusLimits.TargetPUE.Min, CampusLimits.TargetPUE.Max))
}

// ClampWhitespaceRatio clamps v into the whitespace ratio range, rounded to two decimals.
func ClampWhitespaceRatio(v float64) float64 {
	return Round2(Clamp(v, CampusLimits.WhitespaceRatio.Min, CampusLimits.WhitespaceRatio.Max))
}

// ClampRackDensity clamps v into the rack density range, rounded to two decimals.
func ClampRackDensity(v float64) float64 {
	return Round2(Clamp(v, CampusLimits.RackDensityKW.Min, CampusLimits.RackDensityKW.Max))
}

// ClampCriticalLoadMW clamps v into the critical load range, rounded to two decimals.
func ClampCriticalLoadMW(v float64) float64 {
	return Round2(Clamp(v, CampusLimits.CriticalLoadMW.Min, CampusLimits.CriticalLoadMW.Max))
}

// ClampWhitespaceArea clamps v into the whitespace area range.
func ClampWhitespaceArea(v float64) float64 {
	return Clamp(v, CampusLimits.WhitespaceAreaSqFt.Min, CampusLimits.WhitespaceAreaSqFt.Max)
}
