// ABOUTME: Capacity/geometry calculator deriving hall footprints, rack distribution, and row packing
// ABOUTME: The parameters-only model, reused as the geometry oracle by the campus-aware path

package services

import (
	"math"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

const (
	// rowPitchFt is the center-to-center spacing between rack rows,
	// including the shared aisle.
	rowPitchFt = 6.0
	// rackWidthFt is the footprint width of one rack along a row.
	rackWidthFt = 2.0
	// clearanceFt is the perimeter clearance on every side of a hall.
	clearanceFt = 4.0
	// targetRacksPerRow is the ergonomic row length the packer aims for
	// before it starts filling rows to their physical maximum.
	targetRacksPerRow = 18
)

// CapacityCalculator computes the dimensioned facility model from a flat
// parameter set.
type CapacityCalculator struct{}

// NewCapacityCalculator creates a capacity calculator.
func NewCapacityCalculator() *CapacityCalculator {
	return &CapacityCalculator{}
}

// Compute derives the capacity model. Out-of-range inputs are clamped, never
// rejected: load >= 0.1 MW, area >= 1 sqft, at least one hall, ratio inside
// [0.05, 0.95], density >= 0.1 kW, PUE >= 1.
func (cc *CapacityCalculator) Compute(p models.Params) models.CapacityModel {
	load := p.CriticalLoadMW
	if load < 0.1 {
		load = 0.1
	}
	area := p.WhitespaceAreaSqFt
	if area < 1 {
		area = 1
	}
	hallCount := p.HallCount
	if hallCount < 1 {
		hallCount = 1
	}
	ratio := models.Clamp(p.WhitespaceRatio, 0.05, 0.95)
	density := p.RackDensityKW
	if density < 0.1 {
		density = 0.1
	}
	pue := p.TargetPUE
	if pue < 1 {
		pue = 1
	}

	totalFacilityMW := load * pue
	overheadMW := totalFacilityMW - load
	if overheadMW < 0 {
		overheadMW = 0
	}
	grossSqFt := area / ratio

	// Every hall gets an equal whitespace share and therefore identical
	// geometry: a 1:2 rectangle with fixed perimeter clearance.
	hallWhitespace := area / float64(hallCount)
	hallGross := grossSqFt / float64(hallCount)
	widthFt := math.Sqrt(hallWhitespace / 2)
	lengthFt := 2 * widthFt
	usableWidth := widthFt - 2*clearanceFt
	if usableWidth < 0 {
		usableWidth = 0
	}
	usableLength := lengthFt - 2*clearanceFt
	if usableLength < 0 {
		usableLength = 0
	}
	maxRows := int(usableWidth / rowPitchFt)
	maxRacksPerRow := int(usableLength / rackWidthFt)
	hallCapacity := maxRows * maxRacksPerRow

	halls := make([]models.HallCapacity, hallCount)
	capacities := make([]int, hallCount)
	totalCapacity := 0
	for i := range halls {
		halls[i] = models.HallCapacity{
			Index:          i + 1,
			WhitespaceSqFt: models.Round1(hallWhitespace),
			GrossSqFt:      models.Round1(hallGross),
			WidthFt:        models.Round1(widthFt),
			LengthFt:       models.Round1(lengthFt),
			UsableWidthFt:  models.Round1(usableWidth),
			UsableLengthFt: models.Round1(usableLength),
			MaxRows:        maxRows,
			MaxRacksPerRow: maxRacksPerRow,
			Capacity:       hallCapacity,
		}
		capacities[i] = hallCapacity
		totalCapacity += hallCapacity
	}

	// Power-driven demand, clipped to the space that physically exists.
	demand := int(math.Round(load * 1000 / density))
	if demand < 1 {
		demand = 1
	}
	rackCount := demand
	if rackCount > totalCapacity {
		rackCount = totalCapacity
	}

	counts := distributeRacks(rackCount, capacities)

	cursor := 1
	for i := range halls {
		halls[i].RackCount = counts[i]
		if counts[i] > 0 {
			halls[i].RackStartIndex = cursor
			halls[i].RackEndIndex = cursor + counts[i] - 1
			cursor = halls[i].RackEndIndex + 1
		}
		halls[i].RowCount, halls[i].RacksPerRow = packRows(counts[i], maxRows, maxRacksPerRow)
	}

	return models.CapacityModel{
		CriticalITMW:        models.Round2(load),
		TotalFacilityMW:     models.Round2(totalFacilityMW),
		NonITOverheadMW:     models.Round2(overheadMW),
		WhitespaceSqFt:      models.Round1(area),
		GrossFacilitySqFt:   models.Round1(grossSqFt),
		HallCount:           hallCount,
		RackCountFromPower:  demand,
		RackCapacityBySpace: totalCapacity,
		RackCount:           rackCount,
		RackDensityKW:       models.Round2(density),
		TargetPUE:           models.Round2(pue),
		Halls:               halls,
	}
}

// distributeRacks spreads total racks across halls, order-preserving: an
// equal base share capped at each hall's capacity, then the shortfall one
// rack at a time round-robin to halls still under capacity. Terminates when
// the shortfall is exhausted or no hall has headroom; partial fulfillment is
// not an error.
func distributeRacks(total int, capacities []int) []int {
	counts := make([]int, len(capacities))
	if len(capacities) == 0 || total <= 0 {
		return counts
	}

	base := total / len(capacities)
	assigned := 0
	for i, capacity := range capacities {
		c := base
		if c > capacity {
			c = capacity
		}
		counts[i] = c
		assigned += c
	}

	remaining := total - assigned
	for remaining > 0 {
		placed := false
		for i := range counts {
			if remaining == 0 {
				break
			}
			if counts[i] < capacities[i] {
				counts[i]++
				remaining--
				placed = true
			}
		}
		if !placed {
			break
		}
	}

	return counts
}

// packRows assigns n racks into physical rows. Row count aims for the
// ergonomic target row length but never exceeds the hall's maximum rows nor
// drops below what the row length physically requires. Racks spread as
// evenly as possible with the remainder going one each to the first rows.
func packRows(n, maxRows, maxRacksPerRow int) (int, []int) {
	if n <= 0 || maxRows <= 0 || maxRacksPerRow <= 0 {
		return 0, nil
	}

	minRows := (n + maxRacksPerRow - 1) / maxRacksPerRow
	targetRows := (n + targetRacksPerRow - 1) / targetRacksPerRow

	rows := minRows
	if targetRows > rows {
		rows = targetRows
	}
	if rows < 1 {
		rows = 1
	}
	if rows > maxRows {
		rows = maxRows
	}

	base := n / rows
	remainder := n % rows
	racksPerRow := make([]int, rows)
	for i := range racksPerRow {
		racksPerRow[i] = base
		if i < remainder {
			racksPerRow[i]++
		}
	}

	return rows, racksPerRow
}
