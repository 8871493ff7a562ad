// ABOUTME: Campus reconciler normalizing raw trees into ones satisfying the structural invariants
// ABOUTME: Sanitizes rack rules, aligns rack groups, clamps densities, renumbers halls and racks

package services

import (
	"fmt"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// Reconciler normalizes a possibly-invalid campus tree. Every operation
// clamps to the nearest legal value instead of rejecting, so reconciliation
// always succeeds and is idempotent. The input tree is never mutated.
type Reconciler struct{}

// NewReconciler creates a campus reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile returns a new campus tree satisfying the structural invariants:
// sane per-zone rack rules, hall rack counts inside the zone guardrails,
// group sums realigned to the clamped totals, densities inside limits, and
// contiguous global hall/rack numbering in zone-then-hall order.
func (r *Reconciler) Reconcile(c *models.Campus) *models.Campus {
	if c == nil {
		return nil
	}

	out := *c
	out.TargetPUE = models.ClampTargetPUE(c.TargetPUE)
	out.WhitespaceRatio = models.ClampWhitespaceRatio(c.WhitespaceRatio)
	out.Zones = make([]*models.Zone, len(c.Zones))

	hallIndex := 0
	rackCursor := 1

	for zi, z := range c.Zones {
		nz := *z
		nz.Index = zi + 1
		nz.RackRules = sanitizeRackRules(z.RackRules)
		nz.Halls = make([]*models.Hall, len(z.Halls))

		for hi, h := range z.Halls {
			nh := reconcileHall(h, nz.RackRules)

			hallIndex++
			nh.Index = hallIndex

			// Zero-rack halls contribute no rack span and leave the cursor
			// untouched.
			if nh.RackCount > 0 {
				nh.RackStartIndex = rackCursor
				nh.RackEndIndex = rackCursor + nh.RackCount - 1
				rackCursor = nh.RackEndIndex + 1
			} else {
				nh.RackStartIndex = 0
				nh.RackEndIndex = 0
			}

			nh.Racks = regenerateRacks(nh)
			nz.Halls[hi] = nh
		}

		out.Zones[zi] = &nz
	}

	return &out
}

// sanitizeRackRules coerces zone guardrails into a usable shape:
// min >= 1, max >= min, step >= 1, default inside [min, max].
func sanitizeRackRules(rules models.RackRules) models.RackRules {
	min := rules.MinRackCount
	if min < 1 {
		min = 1
	}
	max := rules.MaxRackCount
	if max < min {
		max = min
	}
	step := rules.Step
	if step < 1 {
		step = 1
	}
	return models.RackRules{
		MinRackCount:     min,
		MaxRackCount:     max,
		DefaultRackCount: models.ClampInt(rules.DefaultRackCount, min, max),
		Step:             step,
	}
}

// reconcileHall normalizes one hall against its zone's sanitized rules.
func reconcileHall(h *models.Hall, rules models.RackRules) *models.Hall {
	nh := *h
	nh.Profile.RackDensityKW = models.ClampRackDensity(h.Profile.RackDensityKW)

	if len(h.RackGroups) > 0 {
		groups := normalizeGroups(h.ID, h.RackGroups)
		requested := 0
		for _, g := range groups {
			requested += g.RackCount
		}
		clamped := models.ClampInt(requested, rules.MinRackCount, rules.MaxRackCount)
		// Every group keeps at least one rack, so a zone max smaller than
		// the group count yields to the group sum. The validator still
		// reports the oversized count against the zone rules.
		if clamped < len(groups) {
			clamped = len(groups)
		}
		alignGroups(groups, clamped)
		nh.RackGroups = groups
		nh.RackCount = clamped
	} else {
		nh.RackCount = models.ClampInt(h.RackCount, rules.MinRackCount, rules.MaxRackCount)
	}

	return &nh
}

// normalizeGroups copies the groups, synthesizing deterministic ids and names
// for blank ones and coercing counts to at least 1.
func normalizeGroups(hallID string, groups []*models.RackGroup) []*models.RackGroup {
	out := make([]*models.RackGroup, len(groups))
	for i, g := range groups {
		ng := *g
		if ng.ID == "" {
			ng.ID = fmt.Sprintf("%s-g%d", hallID, i+1)
		}
		if ng.Name == "" {
			ng.Name = fmt.Sprintf("Group %d", i+1)
		}
		if ng.RackCount < 1 {
			ng.RackCount = 1
		}
		out[i] = &ng
	}
	return out
}

// alignGroups adjusts group counts in place so they sum to target, which
// must be at least len(groups). Shortfall is added entirely to the first
// group. Surplus is removed from the last group backward without reducing
// any group below 1; the remainder comes out of the first group, which the
// target floor guarantees stays at 1 or above.
func alignGroups(groups []*models.RackGroup, target int) {
	sum := 0
	for _, g := range groups {
		sum += g.RackCount
	}
	if sum == target {
		return
	}

	if sum < target {
		groups[0].RackCount += target - sum
		return
	}

	surplus := sum - target
	for i := len(groups) - 1; i > 0 && surplus > 0; i-- {
		removable := groups[i].RackCount - 1
		if removable > surplus {
			removable = surplus
		}
		groups[i].RackCount -= removable
		surplus -= removable
	}
	groups[0].RackCount -= surplus
}

// regenerateRacks rebuilds the derived rack leaves to span exactly the hall's
// resolved index range, each annotated with the hall's density target.
func regenerateRacks(h *models.Hall) []models.Rack {
	racks := make([]models.Rack, 0, h.RackCount)
	if h.RackCount <= 0 {
		return racks
	}
	for idx := h.RackStartIndex; idx <= h.RackEndIndex; idx++ {
		racks = append(racks, models.Rack{
			ID:       models.RackID(idx),
			Index:    idx,
			TargetKW: h.Profile.RackDensityKW,
		})
	}
	return racks
}
