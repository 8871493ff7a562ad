// ABOUTME: Tests for the what-if calculator
// ABOUTME: Covers no-op detection, delta computation, and tradeoff warnings

package services

import (
	"testing"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

func newWhatIf() *WhatIfCalculator {
	return NewWhatIfCalculator(NewModelBuilder())
}

func TestCompare_EmptyInputIsNoOp(t *testing.T) {
	wc := newWhatIf()
	cmp := wc.Compare(modelCampus(), models.WhatIfInput{}, testFallback())

	if cmp.Changed {
		t.Error("Expected Changed to be false for an empty input")
	}
	if cmp.Current != cmp.Proposed {
		t.Errorf("Current and Proposed differ for a no-op: %+v vs %+v", cmp.Current, cmp.Proposed)
	}
	if cmp.Delta.RackCountChange != 0 || cmp.Delta.CriticalKWChange != 0 {
		t.Errorf("Expected zero delta, got %+v", cmp.Delta)
	}
}

func TestCompare_UnknownScopeIsNoOp(t *testing.T) {
	wc := newWhatIf()
	density := 40.0
	input := models.WhatIfInput{
		Scope:   models.PatchScope{Level: models.ScopeZone, ZoneID: "no-such-zone"},
		Profile: &models.RackProfilePatch{RackDensityKW: &density},
	}

	cmp := wc.Compare(modelCampus(), input, testFallback())

	if cmp.Changed {
		t.Error("Expected Changed to be false for an unresolvable scope")
	}
}

func TestCompare_DensityIncrease(t *testing.T) {
	wc := newWhatIf()
	density := 40.0
	input := models.WhatIfInput{
		Scope:   models.PatchScope{Level: models.ScopeCampus},
		Profile: &models.RackProfilePatch{RackDensityKW: &density},
	}

	cmp := wc.Compare(modelCampus(), input, testFallback())

	if !cmp.Changed {
		t.Fatal("Expected Changed to be true")
	}
	if cmp.Proposed.CriticalKW <= cmp.Current.CriticalKW {
		t.Errorf("Proposed CriticalKW = %v, want above current %v", cmp.Proposed.CriticalKW, cmp.Current.CriticalKW)
	}
	if cmp.Delta.CriticalKWChange <= 0 {
		t.Errorf("CriticalKWChange = %v, want positive", cmp.Delta.CriticalKWChange)
	}
	if cmp.Delta.FacilityMWChange <= 0 {
		t.Errorf("FacilityMWChange = %v, want positive", cmp.Delta.FacilityMWChange)
	}

	// More than doubling the facility draw trips the sharp-growth warning.
	found := false
	for _, w := range cmp.Warnings {
		if w.Message == "Facility power draw grows sharply" {
			found = true
			if w.Severity != "warning" {
				t.Errorf("Severity = %q, want warning", w.Severity)
			}
		}
	}
	if !found {
		t.Errorf("Expected a sharp power growth warning, got %+v", cmp.Warnings)
	}
}

func TestCompare_PUERegression(t *testing.T) {
	wc := newWhatIf()
	pue := 1.8
	input := models.WhatIfInput{
		Properties: &models.PropertyPatch{TargetPUE: &pue},
	}

	cmp := wc.Compare(modelCampus(), input, testFallback())

	if !cmp.Changed {
		t.Fatal("Expected Changed to be true")
	}
	if cmp.Proposed.TargetPUE != 1.8 {
		t.Errorf("Proposed TargetPUE = %v, want 1.8", cmp.Proposed.TargetPUE)
	}

	found := false
	for _, w := range cmp.Warnings {
		if w.Message == "Target PUE regresses" && w.Severity == "info" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a PUE regression warning, got %+v", cmp.Warnings)
	}
}

func TestGenerateWarnings(t *testing.T) {
	wc := newWhatIf()

	tests := []struct {
		name     string
		current  models.WhatIfSummary
		proposed models.WhatIfSummary
		want     map[string]string // message -> severity
	}{
		{
			name:     "no change produces no warnings",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			want:     map[string]string{},
		},
		{
			name:     "utilization above 95 is critical",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 96, TotalFacilityMW: 2, TargetPUE: 1.4},
			want:     map[string]string{"Rack capacity nearly exhausted": "critical"},
		},
		{
			name:     "utilization above 85 is a warning",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 90, TotalFacilityMW: 2, TargetPUE: 1.4},
			want:     map[string]string{"Rack utilization elevated": "warning"},
		},
		{
			name:     "quarter placement loss is critical",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 70, UtilizationPct: 40, TotalFacilityMW: 2, TargetPUE: 1.4},
			want:     map[string]string{"Significant rack placement reduction": "critical"},
		},
		{
			name:     "tenth placement loss is a warning",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 88, UtilizationPct: 45, TotalFacilityMW: 2, TargetPUE: 1.4},
			want:     map[string]string{"Rack placement reduced": "warning"},
		},
		{
			name:     "half again power growth is a warning",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 3.2, TargetPUE: 1.4},
			want:     map[string]string{"Facility power draw grows sharply": "warning"},
		},
		{
			name:     "moderate power growth is informational",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2.5, TargetPUE: 1.4},
			want:     map[string]string{"Facility power draw increases": "info"},
		},
		{
			name:     "pue regression is informational",
			current:  models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.6},
			want:     map[string]string{"Target PUE regresses": "info"},
		},
		{
			name:    "compound change stacks warnings",
			current: models.WhatIfSummary{RackCount: 100, UtilizationPct: 50, TotalFacilityMW: 2, TargetPUE: 1.4},
			proposed: models.WhatIfSummary{
				RackCount: 60, UtilizationPct: 97, TotalFacilityMW: 3.5, TargetPUE: 1.7,
			},
			want: map[string]string{
				"Rack capacity nearly exhausted":       "critical",
				"Significant rack placement reduction": "critical",
				"Facility power draw grows sharply":    "warning",
				"Target PUE regresses":                 "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wc.GenerateWarnings(tt.current, tt.proposed)

			if len(got) != len(tt.want) {
				t.Fatalf("Got %d warnings, want %d: %+v", len(got), len(tt.want), got)
			}
			for _, w := range got {
				severity, ok := tt.want[w.Message]
				if !ok {
					t.Errorf("Unexpected warning %q", w.Message)
					continue
				}
				if w.Severity != severity {
					t.Errorf("Warning %q severity = %q, want %q", w.Message, w.Severity, severity)
				}
			}
		})
	}
}

func TestCompare_ReusesModelCache(t *testing.T) {
	mb := NewModelBuilder()
	wc := NewWhatIfCalculator(mb)
	c := modelCampus()
	fb := testFallback()

	baseline := mb.Compute(c, fb)
	cmp := wc.Compare(c, models.WhatIfInput{}, fb)

	// The comparison's current side reuses the memoized model.
	if cmp.Current != summarizeModel(baseline) {
		t.Errorf("Current summary = %+v, want the memoized model's %+v", cmp.Current, summarizeModel(baseline))
	}
}
