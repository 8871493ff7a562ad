// ABOUTME: Scoped copy-on-write patches over the campus tree
// ABOUTME: No-op patches return the input pointer so callers can cheaply detect change

package models

// Patch scope levels.
const (
	ScopeCampus = "campus"
	ScopeZone   = "zone"
	ScopeHall   = "hall"
)

// PatchScope selects which halls a profile patch applies to.
type PatchScope struct {
	Level  string `json:"level"`
	ZoneID string `json:"zone_id,omitempty"`
	HallID string `json:"hall_id,omitempty"`
}

// RackProfilePatch carries optional profile overrides. Nil fields are left
// unchanged. Values are clamped/filtered on application, so a patched tree
// never carries an out-of-range density or an unknown categorical.
type RackProfilePatch struct {
	RackDensityKW *float64 `json:"rack_density_kw,omitempty"`
	Redundancy    *string  `json:"redundancy,omitempty"`
	CoolingType   *string  `json:"cooling_type,omitempty"`
	Containment   *string  `json:"containment,omitempty"`
}

// PropertyPatch carries optional campus property overrides.
type PropertyPatch struct {
	TargetPUE       *float64 `json:"target_pue,omitempty"`
	WhitespaceRatio *float64 `json:"whitespace_ratio,omitempty"`
}

// normalized returns the patch with density clamped and non-canonical
// categorical values dropped, plus whether anything remains to apply.
func (p RackProfilePatch) normalized() (RackProfilePatch, bool) {
	out := RackProfilePatch{}
	if p.RackDensityKW != nil {
		v := ClampRackDensity(*p.RackDensityKW)
		out.RackDensityKW = &v
	}
	if p.Redundancy != nil && IsRedundancy(*p.Redundancy) {
		out.Redundancy = p.Redundancy
	}
	if p.CoolingType != nil && IsCoolingType(*p.CoolingType) {
		out.CoolingType = p.CoolingType
	}
	if p.Containment != nil && IsContainment(*p.Containment) {
		out.Containment = p.Containment
	}
	any := out.RackDensityKW != nil || out.Redundancy != nil ||
		out.CoolingType != nil || out.Containment != nil
	return out, any
}

func (p RackProfilePatch) applyTo(profile RackProfile) RackProfile {
	if p.RackDensityKW != nil {
		profile.RackDensityKW = *p.RackDensityKW
	}
	if p.Redundancy != nil {
		profile.Redundancy = *p.Redundancy
	}
	if p.CoolingType != nil {
		profile.CoolingType = *p.CoolingType
	}
	if p.Containment != nil {
		profile.Containment = *p.Containment
	}
	return profile
}

// ApplyProfilePatch applies a rack profile patch to every hall selected by
// the scope. It returns the same campus pointer when the patch is a no-op or
// the scope cannot be resolved; otherwise it returns a new tree that shares
// every untouched branch with the input.
func ApplyProfilePatch(c *Campus, scope PatchScope, patch RackProfilePatch) *Campus {
	if c == nil {
		return nil
	}
	norm, any := patch.normalized()
	if !any {
		return c
	}

	targets := func(z *Zone, h *Hall) bool {
		switch scope.Level {
		case ScopeCampus:
			return true
		case ScopeZone:
			return z.ID == scope.ZoneID
		case ScopeHall:
			if scope.ZoneID != "" && z.ID != scope.ZoneID {
				return false
			}
			return h.ID == scope.HallID
		default:
			return false
		}
	}

	// Unknown zone/hall scopes degrade to a no-op rather than erroring.
	switch scope.Level {
	case ScopeCampus:
	case ScopeZone:
		if c.FindZone(scope.ZoneID) == nil {
			return c
		}
	case ScopeHall:
		if _, h := c.FindHall(scope.HallID); h == nil {
			return c
		}
	default:
		return c
	}

	changedAny := false
	zones := make([]*Zone, len(c.Zones))
	for zi, z := range c.Zones {
		zoneChanged := false
		halls := make([]*Hall, len(z.Halls))
		for hi, h := range z.Halls {
			if targets(z, h) {
				next := norm.applyTo(h.Profile)
				if next != h.Profile {
					cp := *h
					cp.Profile = next
					halls[hi] = &cp
					zoneChanged = true
					continue
				}
			}
			halls[hi] = h
		}
		if zoneChanged {
			cp := *z
			cp.Halls = halls
			zones[zi] = &cp
			changedAny = true
		} else {
			zones[zi] = z
		}
	}
	if !changedAny {
		return c
	}
	out := *c
	out.Zones = zones
	return &out
}

// ApplyPropertyPatch applies campus-level property overrides, clamped to the
// limits table. Returns the same pointer when nothing changes.
func ApplyPropertyPatch(c *Campus, patch PropertyPatch) *Campus {
	if c == nil {
		return nil
	}
	pue := c.TargetPUE
	ratio := c.WhitespaceRatio
	if patch.TargetPUE != nil {
		pue = ClampTargetPUE(*patch.TargetPUE)
	}
	if patch.WhitespaceRatio != nil {
		ratio = ClampWhitespaceRatio(*patch.WhitespaceRatio)
	}
	if pue == c.TargetPUE && ratio == c.WhitespaceRatio {
		return c
	}
	out := *c
	out.TargetPUE = pue
	out.WhitespaceRatio = ratio
	return &out
}
