// ABOUTME: Campus tree data model: zones, halls, rack groups, derived racks
// ABOUTME: JSON/YAML-serializable structures shared by the engine, API, and CLI

package models

import "fmt"

// Redundancy tiers in canonical order. The order doubles as the tie-break
// table for mode selection, so it must not be reordered.
const (
	RedundancyN  = "N"
	RedundancyN1 = "N+1"
	Redundancy2N = "2N"
)

// Cooling types in canonical order.
const (
	CoolingAir    = "Air-Cooled"
	CoolingDLC    = "DLC"
	CoolingHybrid = "Hybrid"
)

// Containment strategies in canonical order.
const (
	ContainmentNone      = "None"
	ContainmentHotAisle  = "Hot Aisle"
	ContainmentColdAisle = "Cold Aisle"
	ContainmentFull      = "Full Enclosure"
)

// Canonical value tables. Mode tallies and profile mixes iterate these
// instead of map keys so tie-breaking stays deterministic.
var (
	Redundancies = []string{RedundancyN, RedundancyN1, Redundancy2N}
	CoolingTypes = []string{CoolingAir, CoolingDLC, CoolingHybrid}
	Containments = []string{ContainmentNone, ContainmentHotAisle, ContainmentColdAisle, ContainmentFull}
)

// IsRedundancy reports whether s is a canonical redundancy tier.
func IsRedundancy(s string) bool { return contains(Redundancies, s) }

// IsCoolingType reports whether s is a canonical cooling type.
func IsCoolingType(s string) bool { return contains(CoolingTypes, s) }

// IsContainment reports whether s is a canonical containment strategy.
func IsContainment(s string) bool { return contains(Containments, s) }

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// RackProfile describes the equipment profile applied to a hall.
type RackProfile struct {
	RackDensityKW float64 `json:"rack_density_kw" yaml:"rack_density_kw"`
	Redundancy    string  `json:"redundancy" yaml:"redundancy"`
	CoolingType   string  `json:"cooling_type" yaml:"cooling_type"`
	Containment   string  `json:"containment" yaml:"containment"`
}

// RackRules are the per-zone guardrails for hall rack counts.
type RackRules struct {
	MinRackCount     int `json:"min_rack_count" yaml:"min_rack_count"`
	MaxRackCount     int `json:"max_rack_count" yaml:"max_rack_count"`
	DefaultRackCount int `json:"default_rack_count" yaml:"default_rack_count"`
	Step             int `json:"step" yaml:"step"`
}

// RackGroup is a named sub-allocation of a hall's racks.
type RackGroup struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	RackCount int    `json:"rack_count" yaml:"rack_count"`
}

// Rack is a derived unit-capacity leaf. Racks are regenerated on every
// reconciliation and never independently edited.
type Rack struct {
	ID       string  `json:"id" yaml:"id"`
	Index    int     `json:"index" yaml:"index"`
	TargetKW float64 `json:"target_kw" yaml:"target_kw"`
}

// Hall is a room-equivalent container of racks with its own profile.
// Index and the rack index span are recomputed on reconciliation and never
// trusted from input.
type Hall struct {
	ID             string       `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	Notes          string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Index          int          `json:"index" yaml:"index"`
	RackCount      int          `json:"rack_count" yaml:"rack_count"`
	RackStartIndex int          `json:"rack_start_index" yaml:"rack_start_index"`
	RackEndIndex   int          `json:"rack_end_index" yaml:"rack_end_index"`
	Profile        RackProfile  `json:"profile" yaml:"profile"`
	RackGroups     []*RackGroup `json:"rack_groups,omitempty" yaml:"rack_groups,omitempty"`
	Racks          []Rack       `json:"racks,omitempty" yaml:"racks,omitempty"`
}

// Zone groups halls under shared rack-count guardrails and hall defaults.
type Zone struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Notes        string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Index        int         `json:"index" yaml:"index"`
	HallDefaults RackProfile `json:"hall_defaults" yaml:"hall_defaults"`
	RackRules    RackRules   `json:"rack_rules" yaml:"rack_rules"`
	Halls        []*Hall     `json:"halls" yaml:"halls"`
}

// Campus is the root facility document.
type Campus struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Notes           string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	TargetPUE       float64 `json:"target_pue" yaml:"target_pue"`
	WhitespaceRatio float64 `json:"whitespace_ratio" yaml:"whitespace_ratio"`
	Zones           []*Zone `json:"zones" yaml:"zones"`
}

// RackID formats the global rack index as a rack identity.
func RackID(index int) string {
	return fmt.Sprintf("R%04d", index)
}

// EffectiveRackCount returns the hall's requested rack count: the group sum
// when rack groups exist, otherwise the hall's own field.
func (h *Hall) EffectiveRackCount() int {
	if len(h.RackGroups) == 0 {
		return h.RackCount
	}
	sum := 0
	for _, g := range h.RackGroups {
		sum += g.RackCount
	}
	return sum
}

// TotalHalls counts halls across all zones.
func (c *Campus) TotalHalls() int {
	n := 0
	for _, z := range c.Zones {
		n += len(z.Halls)
	}
	return n
}

// TotalRacks sums hall rack counts across the campus.
func (c *Campus) TotalRacks() int {
	n := 0
	for _, z := range c.Zones {
		for _, h := range z.Halls {
			n += h.RackCount
		}
	}
	return n
}

// FindZone returns the zone with the given id, or nil.
func (c *Campus) FindZone(id string) *Zone {
	for _, z := range c.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// FindHall returns the hall with the given id and its zone, or nils.
func (c *Campus) FindHall(id string) (*Zone, *Hall) {
	for _, z := range c.Zones {
		for _, h := range z.Halls {
			if h.ID == id {
				return z, h
			}
		}
	}
	return nil, nil
}

// Label returns the display name, falling back to the id when unnamed.
func (c *Campus) Label() string { return labelOf(c.Name, c.ID) }

// Label returns the display name, falling back to the id when unnamed.
func (z *Zone) Label() string { return labelOf(z.Name, z.ID) }

// Label returns the display name, falling back to the id when unnamed.
func (h *Hall) Label() string { return labelOf(h.Name, h.ID) }

// Label returns the display name, falling back to the id when unnamed.
func (g *RackGroup) Label() string { return labelOf(g.Name, g.ID) }

func labelOf(name, id string) string {
	if name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return "(unnamed)"
}

// Clone returns a deep copy of the campus tree.
func (c *Campus) Clone() *Campus {
	if c == nil {
		return nil
	}
	out := *c
	out.Zones = make([]*Zone, len(c.Zones))
	for i, z := range c.Zones {
		out.Zones[i] = z.Clone()
	}
	return &out
}

// Clone returns a deep copy of the zone subtree.
func (z *Zone) Clone() *Zone {
	out := *z
	out.Halls = make([]*Hall, len(z.Halls))
	for i, h := range z.Halls {
		out.Halls[i] = h.Clone()
	}
	return &out
}

// Clone returns a deep copy of the hall subtree.
func (h *Hall) Clone() *Hall {
	out := *h
	if h.RackGroups != nil {
		out.RackGroups = make([]*RackGroup, len(h.RackGroups))
		for i, g := range h.RackGroups {
			cp := *g
			out.RackGroups[i] = &cp
		}
	}
	if h.Racks != nil {
		out.Racks = append([]Rack(nil), h.Racks...)
	}
	return &out
}
