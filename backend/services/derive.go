// ABOUTME: Parameter derivation folding a reconciled campus into a flat facility profile
// ABOUTME: Weighted averages for numerics, mode-by-hall-count for categoricals

package services

import (
	"math"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// rackAreaSqFt models whitespace area from rack count: a rack plus its share
// of aisle and service clearance.
const rackAreaSqFt = 36.0

// ParamsCalculator derives the flat parameter set from a campus tree.
type ParamsCalculator struct {
	reconciler *Reconciler
}

// NewParamsCalculator creates a parameter derivation calculator.
func NewParamsCalculator() *ParamsCalculator {
	return &ParamsCalculator{reconciler: NewReconciler()}
}

// Derive folds an already-reconciled campus into a flat parameter set.
// Callers holding a raw tree should use ReconcileAndDerive; both entry
// points produce identical output for the same logical tree.
func (pc *ParamsCalculator) Derive(c *models.Campus, fallback models.Params) models.Params {
	totalHalls := c.TotalHalls()
	hallCount := totalHalls
	if hallCount < 1 {
		hallCount = 1
	}

	totalRacks := 0
	criticalKW := 0.0
	for _, z := range c.Zones {
		for _, h := range z.Halls {
			totalRacks += h.RackCount
			criticalKW += float64(h.RackCount) * h.Profile.RackDensityKW
		}
	}

	avgDensity := fallback.RackDensityKW
	if totalRacks > 0 {
		avgDensity = criticalKW / float64(totalRacks)
	}

	return models.Params{
		HallCount:          hallCount,
		TotalRacks:         totalRacks,
		CriticalLoadMW:     models.ClampCriticalLoadMW(criticalKW / 1000),
		RackDensityKW:      avgDensity,
		TargetPUE:          models.ClampTargetPUE(c.TargetPUE),
		WhitespaceRatio:    models.ClampWhitespaceRatio(c.WhitespaceRatio),
		WhitespaceAreaSqFt: models.ClampWhitespaceArea(math.Round(float64(totalRacks) * rackAreaSqFt)),
		Redundancy:         modeByHallCount(c, models.Redundancies, func(h *models.Hall) string { return h.Profile.Redundancy }, fallback.Redundancy),
		CoolingType:        modeByHallCount(c, models.CoolingTypes, func(h *models.Hall) string { return h.Profile.CoolingType }, fallback.CoolingType),
		Containment:        modeByHallCount(c, models.Containments, func(h *models.Hall) string { return h.Profile.Containment }, fallback.Containment),
	}
}

// ReconcileAndDerive reconciles the campus first, then derives. Convenience
// for callers holding a raw tree; reconciled trees should go through Derive
// to avoid duplicate work.
func (pc *ParamsCalculator) ReconcileAndDerive(c *models.Campus, fallback models.Params) models.Params {
	return pc.Derive(pc.reconciler.Reconcile(c), fallback)
}

// modeByHallCount tallies a categorical field across all halls and returns
// the most frequent canonical value. Ties break toward the value scanned
// first in canonical order; values outside the canon never win. When nothing
// tallies (no halls, or none carrying a canonical value), the fallback wins.
func modeByHallCount(c *models.Campus, canon []string, pick func(*models.Hall) string, fallback string) string {
	counts := make(map[string]int, len(canon))
	for _, z := range c.Zones {
		for _, h := range z.Halls {
			counts[pick(h)]++
		}
	}

	best := ""
	bestCount := 0
	for _, v := range canon {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	if bestCount == 0 {
		return fallback
	}
	return best
}
