// ABOUTME: Campus validator reporting structural violations without mutating the tree
// ABOUTME: Fixed check order, every issue reported, path/message/recommendation triples

package services

import (
	"fmt"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// Validator walks a campus tree as given (possibly pre-reconciliation) and
// reports every violation it finds. It never mutates or reconciles.
type Validator struct{}

// NewValidator creates a campus validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns all structural issues in the campus, in a fixed walk
// order. Multiple independent issues on the same entity are all reported.
func (v *Validator) Validate(c *models.Campus) []models.Issue {
	var issues []models.Issue
	if c == nil {
		return issues
	}

	add := func(path, message, recommendation string) {
		issues = append(issues, models.Issue{
			Path:           path,
			Message:        message,
			Recommendation: recommendation,
		})
	}

	campusPath := c.Label()

	if c.Name == "" {
		add(campusPath, "Campus name is empty", "Give the campus a descriptive name")
	}
	if c.TargetPUE < models.CampusLimits.TargetPUE.Min || c.TargetPUE > models.CampusLimits.TargetPUE.Max {
		add(campusPath,
			fmt.Sprintf("Target PUE %.2f is outside the allowed range %.2f-%.2f",
				c.TargetPUE, models.CampusLimits.TargetPUE.Min, models.CampusLimits.TargetPUE.Max),
			"Set the target PUE between 1.05 and 2.00")
	}
	if c.WhitespaceRatio < models.CampusLimits.WhitespaceRatio.Min || c.WhitespaceRatio > models.CampusLimits.WhitespaceRatio.Max {
		add(campusPath,
			fmt.Sprintf("Whitespace ratio %.2f is outside the allowed range %.2f-%.2f",
				c.WhitespaceRatio, models.CampusLimits.WhitespaceRatio.Min, models.CampusLimits.WhitespaceRatio.Max),
			"Set the whitespace ratio between 0.25 and 0.65")
	}
	if len(c.Zones) == 0 {
		add(campusPath, "Campus has no zones", "Add at least one zone")
	}

	for _, z := range c.Zones {
		zonePath := z.Label()

		if z.Name == "" {
			add(zonePath, "Zone name is empty", "Give the zone a descriptive name")
		}
		if len(z.Halls) == 0 {
			add(zonePath, "Zone has no halls", "Add at least one hall")
		}
		if z.RackRules.MinRackCount < 1 {
			add(zonePath,
				fmt.Sprintf("Rack rules minimum %d must be at least 1", z.RackRules.MinRackCount),
				"Set min_rack_count to 1 or higher")
		}
		if z.RackRules.MinRackCount > z.RackRules.MaxRackCount {
			add(zonePath,
				fmt.Sprintf("Rack rules are inverted: minimum %d exceeds maximum %d",
					z.RackRules.MinRackCount, z.RackRules.MaxRackCount),
				"Set min_rack_count no higher than max_rack_count")
		}
		if z.RackRules.Step < 1 {
			add(zonePath,
				fmt.Sprintf("Rack rules step %d must be at least 1", z.RackRules.Step),
				"Set step to 1 or higher")
		}

		for _, h := range z.Halls {
			hallPath := zonePath + " / " + h.Label()

			if h.Name == "" {
				add(hallPath, "Hall name is empty", "Give the hall a descriptive name")
			}
			effective := h.EffectiveRackCount()
			if effective < z.RackRules.MinRackCount || effective > z.RackRules.MaxRackCount {
				add(hallPath,
					fmt.Sprintf("Hall rack count %d is outside the zone guardrails [%d, %d]",
						effective, z.RackRules.MinRackCount, z.RackRules.MaxRackCount),
					"Adjust the hall's rack count or the zone's rack rules")
			}
			if h.Profile.RackDensityKW < models.CampusLimits.RackDensityKW.Min || h.Profile.RackDensityKW > models.CampusLimits.RackDensityKW.Max {
				add(hallPath,
					fmt.Sprintf("Rack density %.1f kW is outside the allowed range %.0f-%.0f",
						h.Profile.RackDensityKW, models.CampusLimits.RackDensityKW.Min, models.CampusLimits.RackDensityKW.Max),
					"Set the rack density between 3 and 80 kW")
			}

			for _, g := range h.RackGroups {
				groupPath := hallPath + " / " + g.Label()
				if g.Name == "" {
					add(groupPath, "Rack group name is empty", "Give the rack group a name")
				}
				if g.RackCount <= 0 {
					add(groupPath,
						fmt.Sprintf("Rack group count %d must be positive", g.RackCount),
						"Set the group's rack count to 1 or higher")
				}
			}
		}
	}

	return issues
}

// Result wraps Validate in the API envelope.
func (v *Validator) Result(c *models.Campus) models.ValidationResult {
	issues := v.Validate(c)
	return models.ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}
