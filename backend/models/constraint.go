// ABOUTME: Binding-constraint analysis for a computed campus model
// ABOUTME: Ranks power budget vs floor space and identifies which limits the build-out

package models

import (
	"fmt"
	"sort"
)

// ResourcePressure represents how close one facility resource is to its bound.
type ResourcePressure struct {
	Name           string  `json:"name"`
	UsedPercent    float64 `json:"used_percent"`
	TotalCapacity  int     `json:"total_capacity"`
	UsedCapacity   int     `json:"used_capacity"`
	Unit           string  `json:"unit"`
	IsConstraining bool    `json:"is_constraining"`
}

// ConstraintAnalysis is the complete binding-constraint result.
type ConstraintAnalysis struct {
	Resources            []ResourcePressure `json:"resources"`
	ConstrainingResource string             `json:"constraining_resource"`
	Summary              string             `json:"summary"`
}

// RankResourcesByPressure sorts resources by used percentage descending and
// marks the tightest one as constraining. Stable sort, so equal pressures
// keep their build order (power budget is listed before floor space).
func RankResourcesByPressure(resources []ResourcePressure) []ResourcePressure {
	if len(resources) == 0 {
		return resources
	}

	ranked := make([]ResourcePressure, len(resources))
	copy(ranked, resources)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UsedPercent > ranked[j].UsedPercent
	})

	for i := range ranked {
		ranked[i].IsConstraining = (i == 0)
	}

	return ranked
}

// AnalyzeConstraint determines whether the power envelope or the physical
// floor space limits the campus build-out. The placed rack count is
// min(power-driven demand, space capacity), so whichever bound the placed
// count sits against is the constraining resource.
func AnalyzeConstraint(m *CampusModel) ConstraintAnalysis {
	resources := buildPressureList(m)
	ranked := RankResourcesByPressure(resources)

	analysis := ConstraintAnalysis{
		Resources: ranked,
	}

	if len(ranked) > 0 {
		analysis.ConstrainingResource = ranked[0].Name
		analysis.Summary = buildConstraintSummary(ranked)
	}

	return analysis
}

func buildPressureList(m *CampusModel) []ResourcePressure {
	var resources []ResourcePressure

	placed := m.Capacity.RackCount

	// Power budget: how much of the power-driven rack target is placed.
	if m.Capacity.RackCountFromPower > 0 {
		pct := float64(placed) / float64(m.Capacity.RackCountFromPower) * 100.0
		resources = append(resources, ResourcePressure{
			Name:          "Power",
			UsedPercent:   pct,
			TotalCapacity: m.Capacity.RackCountFromPower,
			UsedCapacity:  placed,
			Unit:          "racks",
		})
	}

	// Floor space: how much of the physical rack capacity is placed.
	if m.Capacity.RackCapacityBySpace > 0 {
		pct := float64(placed) / float64(m.Capacity.RackCapacityBySpace) * 100.0
		resources = append(resources, ResourcePressure{
			Name:          "Space",
			UsedPercent:   pct,
			TotalCapacity: m.Capacity.RackCapacityBySpace,
			UsedCapacity:  placed,
			Unit:          "racks",
		})
	}

	return resources
}

func buildConstraintSummary(ranked []ResourcePressure) string {
	if len(ranked) == 0 {
		return ""
	}

	top := ranked[0]
	summary := fmt.Sprintf("%s is the constraining resource at %.1f%% (%d of %d %s)",
		top.Name, top.UsedPercent, top.UsedCapacity, top.TotalCapacity, top.Unit)

	if len(ranked) > 1 {
		next := ranked[1]
		summary += fmt.Sprintf("; %s has %.1f%% headroom",
			next.Name, 100.0-next.UsedPercent)
	}

	return summary
}
