// ABOUTME: What-if calculator for proposed campus changes
// ABOUTME: Computes current vs patched models with deltas and tradeoff warnings

package services

import (
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// WhatIfCalculator compares a campus against a patched variant of itself
type WhatIfCalculator struct {
	builder *ModelBuilder
}

// NewWhatIfCalculator creates a calculator backed by the shared model builder
func NewWhatIfCalculator(builder *ModelBuilder) *WhatIfCalculator {
	return &WhatIfCalculator{builder: builder}
}

// Compare applies the proposed patches and compares the resulting model
// against the current one. Patches that resolve to a no-op reuse the current
// campus on the proposed side and report Changed=false.
func (wc *WhatIfCalculator) Compare(c *models.Campus, input models.WhatIfInput, fallback models.Params) models.WhatIfComparison {
	patched := c
	if input.Profile != nil {
		patched = models.ApplyProfilePatch(patched, input.Scope, *input.Profile)
	}
	if input.Properties != nil {
		patched = models.ApplyPropertyPatch(patched, *input.Properties)
	}
	changed := patched != c

	currentModel := wc.builder.Compute(c, fallback)
	proposedModel := currentModel
	if changed {
		proposedModel = wc.builder.Compute(patched, fallback)
	}

	current := summarizeModel(currentModel)
	proposed := summarizeModel(proposedModel)
	warnings := wc.GenerateWarnings(current, proposed)

	return models.WhatIfComparison{
		Changed:  changed,
		Current:  current,
		Proposed: proposed,
		Delta: models.WhatIfDelta{
			RackCountChange:      proposed.RackCount - current.RackCount,
			UtilizationChangePct: models.Round1(proposed.UtilizationPct - current.UtilizationPct),
			CriticalKWChange:     models.Round1(proposed.CriticalKW - current.CriticalKW),
			FacilityMWChange:     models.Round2(proposed.TotalFacilityMW - current.TotalFacilityMW),
			AreaChangeSqFt:       models.Round1(proposed.GrossSqFt - current.GrossSqFt),
		},
		Warnings: warnings,
	}
}

// GenerateWarnings produces tradeoff warnings for the proposed model
func (wc *WhatIfCalculator) GenerateWarnings(current, proposed models.WhatIfSummary) []models.WhatIfWarning {
	var warnings []models.WhatIfWarning

	// Utilization warnings
	if proposed.UtilizationPct > 95 {
		warnings = append(warnings, models.WhatIfWarning{
			Severity: "critical",
			Message:  "Rack capacity nearly exhausted",
		})
	} else if proposed.UtilizationPct > 85 {
		warnings = append(warnings, models.WhatIfWarning{
			Severity: "warning",
			Message:  "Rack utilization elevated",
		})
	}

	// Placement loss warnings
	if current.RackCount > 0 {
		reduction := float64(current.RackCount-proposed.RackCount) / float64(current.RackCount) * 100
		if reduction >= 25 {
			warnings = append(warnings, models.WhatIfWarning{
				Severity: "critical",
				Message:  "Significant rack placement reduction",
			})
		} else if reduction >= 10 {
			warnings = append(warnings, models.WhatIfWarning{
				Severity: "warning",
				Message:  "Rack placement reduced",
			})
		}
	}

	// Power growth warnings
	if current.TotalFacilityMW > 0 {
		growth := (proposed.TotalFacilityMW - current.TotalFacilityMW) / current.TotalFacilityMW * 100
		if growth >= 50 {
			warnings = append(warnings, models.WhatIfWarning{
				Severity: "warning",
				Message:  "Facility power draw grows sharply",
			})
		} else if growth >= 20 {
			warnings = append(warnings, models.WhatIfWarning{
				Severity: "info",
				Message:  "Facility power draw increases",
			})
		}
	}

	// PUE regression warning
	if proposed.TargetPUE > current.TargetPUE {
		warnings = append(warnings, models.WhatIfWarning{
			Severity: "info",
			Message:  "Target PUE regresses",
		})
	}

	return warnings
}

// summarizeModel reduces a campus model to its headline metrics
func summarizeModel(m *models.CampusModel) models.WhatIfSummary {
	if m == nil {
		return models.WhatIfSummary{}
	}
	return models.WhatIfSummary{
		RackCount:       m.Totals.RackCount,
		RackCapacity:    m.Totals.RackCapacity,
		UtilizationPct:  m.Totals.UtilizationPct,
		CriticalKW:      m.Totals.CriticalKW,
		TotalFacilityMW: m.Totals.TotalFacilityMW,
		GrossSqFt:       m.Totals.GrossSqFt,
		TargetPUE:       m.Params.TargetPUE,
		AvgDensityKW:    m.Params.RackDensityKW,
	}
}
