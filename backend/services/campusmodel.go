// ABOUTME: Campus model aggregator combining the reconciled tree with the capacity oracle
// ABOUTME: Memoized per campus identity and params key with bounded FIFO eviction

package services

import (
	"log/slog"
	"sync"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

const (
	// perCampusCacheSize bounds the memoized models kept per campus tree.
	perCampusCacheSize = 6
	// campusCacheSize bounds how many distinct campus trees are tracked.
	// Superseded trees age out FIFO, which replaces the reclaim-on-GC
	// behavior an identity-keyed weak map would give.
	campusCacheSize = 8
)

// campusEntry holds the memoized models for one campus tree, with the key
// insertion order kept for FIFO eviction.
type campusEntry struct {
	keys   []string
	models map[string]*models.CampusModel
}

// ModelBuilder computes aggregated campus models. Results are memoized first
// by campus pointer identity, then by the canonicalized fallback params key;
// a cache hit returns the previously computed model by reference, so callers
// may use reference equality to skip downstream recomputation.
type ModelBuilder struct {
	reconciler *Reconciler
	params     *ParamsCalculator
	capacity   *CapacityCalculator

	mu       sync.Mutex
	campuses map[*models.Campus]*campusEntry
	order    []*models.Campus
}

// NewModelBuilder creates a campus model builder with an empty cache.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{
		reconciler: NewReconciler(),
		params:     NewParamsCalculator(),
		capacity:   NewCapacityCalculator(),
		campuses:   make(map[*models.Campus]*campusEntry),
	}
}

// Compute returns the aggregated model for the campus under the given
// fallback params, reusing a memoized result when one exists.
func (mb *ModelBuilder) Compute(c *models.Campus, fallback models.Params) *models.CampusModel {
	if c == nil {
		return nil
	}
	key := fallback.CanonicalKey()

	mb.mu.Lock()
	if entry, ok := mb.campuses[c]; ok {
		if m, ok := entry.models[key]; ok {
			mb.mu.Unlock()
			slog.Debug("Campus model cache hit", "campus", c.ID, "key", key)
			return m
		}
	}
	mb.mu.Unlock()

	slog.Debug("Campus model cache miss", "campus", c.ID, "key", key)
	m := mb.build(c, fallback)

	// Check-then-insert under one lock: if another caller computed the same
	// entry meanwhile, keep theirs so every caller sees one reference.
	mb.mu.Lock()
	defer mb.mu.Unlock()
	entry, ok := mb.campuses[c]
	if !ok {
		if len(mb.order) >= campusCacheSize {
			oldest := mb.order[0]
			mb.order = mb.order[1:]
			delete(mb.campuses, oldest)
		}
		entry = &campusEntry{models: make(map[string]*models.CampusModel)}
		mb.campuses[c] = entry
		mb.order = append(mb.order, c)
	}
	if existing, exists := entry.models[key]; exists {
		return existing
	}
	if len(entry.keys) >= perCampusCacheSize {
		oldest := entry.keys[0]
		entry.keys = entry.keys[1:]
		delete(entry.models, oldest)
	}
	entry.keys = append(entry.keys, key)
	entry.models[key] = m
	return m
}

// build computes the model without touching the cache.
func (mb *ModelBuilder) build(c *models.Campus, fallback models.Params) *models.CampusModel {
	rc := mb.reconciler.Reconcile(c)
	p := mb.params.Derive(rc, fallback)
	oracle := mb.capacity.Compute(p)

	model := &models.CampusModel{
		CampusID: rc.ID,
		Name:     rc.Name,
		Params:   p,
		Capacity: oracle,
		Specs:    make(map[string]models.SpecsSummary),
	}

	// The oracle supplies shape and per-hall capacity; the campus's own rack
	// counts are authoritative up to that capacity.
	type hallCalc struct {
		zone       *models.Zone
		hall       *models.Hall
		assigned   int
		capacity   int
		criticalKW float64
		weight     float64
		area       float64
	}
	var calcs []hallCalc
	sumWeights := 0.0
	flat := 0
	for _, z := range rc.Zones {
		for _, h := range z.Halls {
			oh := oracle.Halls[flat]
			assigned := h.RackCount
			if assigned > oh.Capacity {
				assigned = oh.Capacity
			}
			criticalKW := float64(assigned) * h.Profile.RackDensityKW
			weight := criticalKW * p.TargetPUE
			calcs = append(calcs, hallCalc{
				zone:       z,
				hall:       h,
				assigned:   assigned,
				capacity:   oh.Capacity,
				criticalKW: criticalKW,
				weight:     weight,
				area:       oh.WhitespaceSqFt,
			})
			sumWeights += weight
			flat++
		}
	}

	totalFacilityKW := oracle.TotalFacilityMW * 1000

	// Per-hall models, plus the flat capacity projection rewritten with the
	// campus-authoritative counts and re-derived numbering and packing.
	type zoneAgg struct {
		id         string
		name       string
		index      int
		hallCount  int
		rackCount  int
		capacity   int
		criticalKW float64
		facilityKW float64
		area       float64
	}
	cursor := 1
	totalAssigned := 0
	totalCapacity := 0
	totalCriticalKW := 0.0
	zoneAggs := make(map[string]*zoneAgg)
	zoneOrder := []string{}

	for i, hc := range calcs {
		facilityKW := 0.0
		if sumWeights > 0 {
			facilityKW = totalFacilityKW * (hc.weight / sumWeights)
		}

		start, end := 0, 0
		if hc.assigned > 0 {
			start = cursor
			end = cursor + hc.assigned - 1
			cursor = end + 1
		}
		maxRows := oracle.Halls[i].MaxRows
		maxPerRow := oracle.Halls[i].MaxRacksPerRow
		rowCount, racksPerRow := packRows(hc.assigned, maxRows, maxPerRow)

		hm := models.HallModel{
			ID:             hc.hall.ID,
			ZoneID:         hc.zone.ID,
			Name:           hc.hall.Name,
			Index:          hc.hall.Index,
			RequestedRacks: hc.hall.RackCount,
			AssignedRacks:  hc.assigned,
			Capacity:       hc.capacity,
			UtilizationPct: utilizationPct(hc.assigned, hc.capacity),
			CriticalKW:     models.Round1(hc.criticalKW),
			FacilityKW:     models.Round1(facilityKW),
			AreaSqFt:       hc.area,
			RackStartIndex: start,
			RackEndIndex:   end,
			RowCount:       rowCount,
			RacksPerRow:    racksPerRow,
			Profile:        hc.hall.Profile,
		}
		model.Halls = append(model.Halls, hm)

		oracle.Halls[i].RackCount = hc.assigned
		oracle.Halls[i].RackStartIndex = start
		oracle.Halls[i].RackEndIndex = end
		oracle.Halls[i].RowCount = rowCount
		oracle.Halls[i].RacksPerRow = racksPerRow

		za, ok := zoneAggs[hc.zone.ID]
		if !ok {
			za = &zoneAgg{
				id:    hc.zone.ID,
				name:  hc.zone.Name,
				index: hc.zone.Index,
			}
			zoneAggs[hc.zone.ID] = za
			zoneOrder = append(zoneOrder, hc.zone.ID)
		}
		za.hallCount++
		za.rackCount += hc.assigned
		za.capacity += hc.capacity
		za.criticalKW += hc.criticalKW
		za.facilityKW += facilityKW
		za.area += hc.area

		totalAssigned += hc.assigned
		totalCapacity += hc.capacity
		totalCriticalKW += hc.criticalKW
	}

	// For a campus with no halls the oracle still models one synthetic hall;
	// the campus-authoritative projection shows its space with nothing placed.
	for i := len(calcs); i < len(oracle.Halls); i++ {
		oracle.Halls[i].RackCount = 0
		oracle.Halls[i].RackStartIndex = 0
		oracle.Halls[i].RackEndIndex = 0
		oracle.Halls[i].RowCount = 0
		oracle.Halls[i].RacksPerRow = nil
	}
	model.Capacity.RackCount = totalAssigned

	for _, id := range zoneOrder {
		za := zoneAggs[id]
		model.Zones = append(model.Zones, models.ZoneModel{
			ID:             za.id,
			Name:           za.name,
			Index:          za.index,
			HallCount:      za.hallCount,
			RackCount:      za.rackCount,
			Capacity:       za.capacity,
			UtilizationPct: utilizationPct(za.rackCount, za.capacity),
			CriticalKW:     models.Round1(za.criticalKW),
			FacilityKW:     models.Round1(za.facilityKW),
			AreaSqFt:       models.Round1(za.area),
		})
	}

	model.Totals = models.CampusTotals{
		ZoneCount:       len(rc.Zones),
		HallCount:       len(calcs),
		RackCount:       totalAssigned,
		RackCapacity:    totalCapacity,
		UtilizationPct:  utilizationPct(totalAssigned, totalCapacity),
		CriticalKW:      models.Round1(totalCriticalKW),
		CriticalITMW:    oracle.CriticalITMW,
		TotalFacilityMW: oracle.TotalFacilityMW,
		WhitespaceSqFt:  oracle.WhitespaceSqFt,
		GrossSqFt:       oracle.GrossFacilitySqFt,
	}

	model.Mix = buildProfileMix(model.Halls, fallback)
	model.Explorer = buildExplorer(rc, model)
	buildSpecs(rc, model)

	return model
}

func utilizationPct(used, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return models.Round1(float64(used) / float64(capacity) * 100)
}

// buildProfileMix tallies halls and racks per categorical value. Only
// canonical values participate; the dominant value is the one carried by the
// most halls, with ties preferring the fallback value and then canonical
// order.
func buildProfileMix(halls []models.HallModel, fallback models.Params) models.ProfileMix {
	mix := models.ProfileMix{}
	mix.Redundancy, mix.DominantRedundancy = tallyShares(halls, models.Redundancies,
		func(h models.HallModel) string { return h.Profile.Redundancy }, fallback.Redundancy)
	mix.CoolingType, mix.DominantCoolingType = tallyShares(halls, models.CoolingTypes,
		func(h models.HallModel) string { return h.Profile.CoolingType }, fallback.CoolingType)
	mix.Containment, mix.DominantContainment = tallyShares(halls, models.Containments,
		func(h models.HallModel) string { return h.Profile.Containment }, fallback.Containment)
	return mix
}

func tallyShares(halls []models.HallModel, canon []string, pick func(models.HallModel) string, fallback string) ([]models.ProfileShare, string) {
	hallCounts := make(map[string]int, len(canon))
	rackCounts := make(map[string]int, len(canon))
	for _, h := range halls {
		v := pick(h)
		hallCounts[v]++
		rackCounts[v] += h.AssignedRacks
	}

	var shares []models.ProfileShare
	maxCount := 0
	for _, v := range canon {
		if hallCounts[v] == 0 {
			continue
		}
		shares = append(shares, models.ProfileShare{
			Value:     v,
			HallCount: hallCounts[v],
			RackCount: rackCounts[v],
		})
		if hallCounts[v] > maxCount {
			maxCount = hallCounts[v]
		}
	}

	if maxCount == 0 {
		return shares, fallback
	}
	if hallCounts[fallback] == maxCount {
		return shares, fallback
	}
	for _, v := range canon {
		if hallCounts[v] == maxCount {
			return shares, v
		}
	}
	return shares, fallback
}

// buildExplorer produces the navigation-tree projection.
func buildExplorer(rc *models.Campus, model *models.CampusModel) models.ExplorerNode {
	hallByID := make(map[string]models.HallModel, len(model.Halls))
	for _, hm := range model.Halls {
		hallByID[hm.ID] = hm
	}
	zoneByID := make(map[string]models.ZoneModel, len(model.Zones))
	for _, zm := range model.Zones {
		zoneByID[zm.ID] = zm
	}

	root := models.ExplorerNode{
		ID:             rc.ID,
		Kind:           "campus",
		Name:           rc.Label(),
		RackCount:      model.Totals.RackCount,
		UtilizationPct: model.Totals.UtilizationPct,
	}
	for _, z := range rc.Zones {
		zm := zoneByID[z.ID]
		zn := models.ExplorerNode{
			ID:             z.ID,
			Kind:           "zone",
			Name:           z.Label(),
			Index:          z.Index,
			RackCount:      zm.RackCount,
			UtilizationPct: zm.UtilizationPct,
		}
		for _, h := range z.Halls {
			hm := hallByID[h.ID]
			zn.Children = append(zn.Children, models.ExplorerNode{
				ID:             h.ID,
				Kind:           "hall",
				Name:           h.Label(),
				Index:          h.Index,
				RackCount:      hm.AssignedRacks,
				UtilizationPct: hm.UtilizationPct,
			})
		}
		root.Children = append(root.Children, zn)
	}
	return root
}

// buildSpecs fills the id-keyed detail summaries for every entity.
func buildSpecs(rc *models.Campus, model *models.CampusModel) {
	model.Specs[rc.ID] = models.SpecsSummary{
		ID:             rc.ID,
		Kind:           "campus",
		Name:           rc.Label(),
		HallCount:      model.Totals.HallCount,
		RackCount:      model.Totals.RackCount,
		Capacity:       model.Totals.RackCapacity,
		UtilizationPct: model.Totals.UtilizationPct,
		CriticalKW:     model.Totals.CriticalKW,
		FacilityKW:     models.Round1(model.Totals.TotalFacilityMW * 1000),
		AreaSqFt:       model.Totals.WhitespaceSqFt,
		RackDensityKW:  models.Round2(model.Params.RackDensityKW),
		TargetPUE:      model.Params.TargetPUE,
	}
	for _, zm := range model.Zones {
		model.Specs[zm.ID] = models.SpecsSummary{
			ID:             zm.ID,
			Kind:           "zone",
			Name:           zm.Name,
			Index:          zm.Index,
			HallCount:      zm.HallCount,
			RackCount:      zm.RackCount,
			Capacity:       zm.Capacity,
			UtilizationPct: zm.UtilizationPct,
			CriticalKW:     zm.CriticalKW,
			FacilityKW:     zm.FacilityKW,
			AreaSqFt:       zm.AreaSqFt,
		}
	}
	for _, hm := range model.Halls {
		model.Specs[hm.ID] = models.SpecsSummary{
			ID:             hm.ID,
			Kind:           "hall",
			Name:           hm.Name,
			Index:          hm.Index,
			RackCount:      hm.AssignedRacks,
			Capacity:       hm.Capacity,
			UtilizationPct: hm.UtilizationPct,
			CriticalKW:     hm.CriticalKW,
			FacilityKW:     hm.FacilityKW,
			AreaSqFt:       hm.AreaSqFt,
			RackDensityKW:  hm.Profile.RackDensityKW,
			Redundancy:     hm.Profile.Redundancy,
			CoolingType:    hm.Profile.CoolingType,
			Containment:    hm.Profile.Containment,
		}
	}
}
