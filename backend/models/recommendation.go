// ABOUTME: Prioritized advisories for a computed campus model
// ABOUTME: Generates actionable follow-ups from constraints, utilization, and validation

package models

import (
	"fmt"
	"sort"
)

// AdvisoryType defines the kind of follow-up being suggested
type AdvisoryType string

const (
	AdvisoryFixValidation    AdvisoryType = "fix_validation"
	AdvisoryExpandWhitespace AdvisoryType = "expand_whitespace"
	AdvisoryAddHall          AdvisoryType = "add_hall"
	AdvisoryRaiseDensity     AdvisoryType = "raise_density"
	AdvisoryImprovePUE       AdvisoryType = "improve_pue"
)

// Advisory represents one actionable follow-up
type Advisory struct {
	Type        AdvisoryType `json:"type"`
	Priority    int          `json:"priority"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Impact      string       `json:"impact"`
	ImpactLevel string       `json:"impact_level"`
	Resource    string       `json:"resource,omitempty"`
}

// AdvisoriesResponse wraps the advisory list with constraint context
type AdvisoriesResponse struct {
	Advisories           []Advisory `json:"advisories"`
	ConstrainingResource string     `json:"constraining_resource"`
}

// pueImprovementTarget is the PUE above which an efficiency advisory fires.
const pueImprovementTarget = 1.45

// generateValidationAdvisory surfaces outstanding validation issues first.
func generateValidationAdvisory(issues []Issue) *Advisory {
	if len(issues) == 0 {
		return nil
	}

	return &Advisory{
		Type:        AdvisoryFixValidation,
		Priority:    1,
		Title:       "Resolve Validation Issues",
		Description: fmt.Sprintf("The campus has %d outstanding validation issue(s); first: %s", len(issues), issues[0].Message),
		Impact:      "Derived parameters are computed from clamped values until the tree is fixed",
		ImpactLevel: "high",
	}
}

// generateSpaceAdvisory suggests more whitespace when power demand is clipped
// by physical capacity.
func generateSpaceAdvisory(m *CampusModel) *Advisory {
	demand := m.Capacity.RackCountFromPower
	capacity := m.Capacity.RackCapacityBySpace
	if demand <= capacity {
		return nil
	}

	// 36 sqft per rack mirrors the derivation constant.
	clipped := demand - capacity
	neededSqFt := clipped * 36

	return &Advisory{
		Type:        AdvisoryExpandWhitespace,
		Priority:    2,
		Title:       "Expand Whitespace",
		Description: fmt.Sprintf("Power budget calls for %d racks but the floor holds %d; %d racks have no home", demand, capacity, clipped),
		Impact:      fmt.Sprintf("Roughly %d sqft of additional whitespace would place the remaining racks", neededSqFt),
		ImpactLevel: "high",
		Resource:    "Space",
	}
}

// generateHallAdvisory suggests another hall once utilization runs hot.
func generateHallAdvisory(m *CampusModel) *Advisory {
	if m.Totals.UtilizationPct <= 90 || m.Totals.HallCount == 0 {
		return nil
	}

	perHall := m.Totals.RackCapacity / m.Totals.HallCount
	if perHall < 1 {
		perHall = 1
	}

	return &Advisory{
		Type:        AdvisoryAddHall,
		Priority:    2,
		Title:       "Add a Data Hall",
		Description: fmt.Sprintf("Campus utilization is %.1f%%; an additional hall adds headroom", m.Totals.UtilizationPct),
		Impact:      fmt.Sprintf("Adds roughly %d racks of capacity at current geometry", perHall),
		ImpactLevel: "medium",
		Resource:    "Space",
	}
}

// generateDensityAdvisory suggests raising rack density when space idles
// because the power envelope binds first.
func generateDensityAdvisory(m *CampusModel) *Advisory {
	demand := m.Capacity.RackCountFromPower
	capacity := m.Capacity.RackCapacityBySpace
	if demand >= capacity {
		return nil
	}
	if m.Params.RackDensityKW >= CampusLimits.RackDensityKW.Max {
		return nil
	}

	idle := capacity - m.Capacity.RackCount

	return &Advisory{
		Type:        AdvisoryRaiseDensity,
		Priority:    3,
		Title:       "Raise Rack Density",
		Description: fmt.Sprintf("The power envelope binds before the floor does; %d rack positions sit idle", idle),
		Impact:      fmt.Sprintf("Raising density above %.1f kW/rack converts idle positions into IT load", m.Params.RackDensityKW),
		ImpactLevel: "medium",
		Resource:    "Power",
	}
}

// generatePUEAdvisory suggests efficiency work when PUE is above target.
func generatePUEAdvisory(m *CampusModel) *Advisory {
	if m.Params.TargetPUE <= pueImprovementTarget {
		return nil
	}

	savedMW := m.Capacity.CriticalITMW * (m.Params.TargetPUE - pueImprovementTarget)

	return &Advisory{
		Type:        AdvisoryImprovePUE,
		Priority:    4,
		Title:       "Improve PUE",
		Description: fmt.Sprintf("Target PUE %.2f is above the %.2f efficiency target", m.Params.TargetPUE, pueImprovementTarget),
		Impact:      fmt.Sprintf("Reaching %.2f would free %.2f MW of facility power", pueImprovementTarget, Round2(savedMW)),
		ImpactLevel: "low",
		Resource:    "Power",
	}
}

// GenerateAdvisories creates a prioritized advisory list for a campus model.
// Validation problems come first, then whichever capacity lever applies.
func GenerateAdvisories(m *CampusModel, issues []Issue) []Advisory {
	var advisories []Advisory

	if adv := generateValidationAdvisory(issues); adv != nil {
		advisories = append(advisories, *adv)
	}
	if adv := generateSpaceAdvisory(m); adv != nil {
		advisories = append(advisories, *adv)
	}
	if adv := generateHallAdvisory(m); adv != nil {
		advisories = append(advisories, *adv)
	}
	if adv := generateDensityAdvisory(m); adv != nil {
		advisories = append(advisories, *adv)
	}
	if adv := generatePUEAdvisory(m); adv != nil {
		advisories = append(advisories, *adv)
	}

	sort.SliceStable(advisories, func(i, j int) bool {
		return advisories[i].Priority < advisories[j].Priority
	})

	return advisories
}
