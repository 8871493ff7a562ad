// ABOUTME: Campus builder scaffolding a coherent tree from headline parameters
// ABOUTME: Sizes halls from the capacity oracle so the scaffold places every rack

package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// CampusBuilder scaffolds a new campus from headline parameters
type CampusBuilder struct {
	reconciler *Reconciler
	capacity   *CapacityCalculator
}

// NewCampusBuilder creates a new campus builder
func NewCampusBuilder() *CampusBuilder {
	return &CampusBuilder{
		reconciler: NewReconciler(),
		capacity:   NewCapacityCalculator(),
	}
}

// BuildCampus creates a single-zone campus sized by the capacity oracle, so
// every hall starts at its placed rack count. The result is reconciled.
func (cb *CampusBuilder) BuildCampus(name string, p models.Params) *models.Campus {
	oracle := cb.capacity.Compute(p)

	largest := 0
	base := 0
	for _, hc := range oracle.Halls {
		if hc.RackCount > largest {
			largest = hc.RackCount
		}
		base += hc.RackCount
	}
	if largest < 1 {
		largest = 1
	}
	if len(oracle.Halls) > 0 {
		base /= len(oracle.Halls)
	}
	if base < 1 {
		base = 1
	}

	profile := models.RackProfile{
		RackDensityKW: p.RackDensityKW,
		Redundancy:    p.Redundancy,
		CoolingType:   p.CoolingType,
		Containment:   p.Containment,
	}

	zone := &models.Zone{
		ID:   uuid.NewString(),
		Name: "Zone 1",
		HallDefaults: models.RackProfile{
			RackDensityKW: p.RackDensityKW,
			Redundancy:    p.Redundancy,
			CoolingType:   p.CoolingType,
			Containment:   p.Containment,
		},
		RackRules: models.RackRules{
			MinRackCount:     1,
			MaxRackCount:     2 * largest,
			DefaultRackCount: base,
			Step:             1,
		},
	}

	for i, hc := range oracle.Halls {
		count := hc.RackCount
		if count < 1 {
			count = 1
		}
		zone.Halls = append(zone.Halls, &models.Hall{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Hall %d", i+1),
			RackCount: count,
			Profile:   profile,
		})
	}

	campus := &models.Campus{
		ID:              uuid.NewString(),
		Name:            name,
		TargetPUE:       p.TargetPUE,
		WhitespaceRatio: p.WhitespaceRatio,
		Zones:           []*models.Zone{zone},
	}

	return cb.reconciler.Reconcile(campus)
}
