// ABOUTME: Tests for numeric helpers and the parameter limits table
// ABOUTME: Clamping, rounding, positive-int coercion, and limit constants

package models

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max float64
		want        float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(100, 1, 50); got != 50 {
		t.Errorf("ClampInt(100, 1, 50) = %d, want 50", got)
	}
	if got := ClampInt(0, 1, 50); got != 1 {
		t.Errorf("ClampInt(0, 1, 50) = %d, want 1", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(1.4567); got != 1.46 {
		t.Errorf("Round2(1.4567) = %v, want 1.46", got)
	}
	if got := Round2(1.4512); got != 1.45 {
		t.Errorf("Round2(1.4512) = %v, want 1.45", got)
	}
	if got := Round1(9.66); got != 9.7 {
		t.Errorf("Round1(9.66) = %v, want 9.7", got)
	}
	if got := Round1(-0.05); got != -0.1 {
		t.Errorf("Round1(-0.05) = %v, want -0.1 (half away from zero)", got)
	}
}

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		min  int
		want int
	}{
		{"rounds", 4.6, 1, 5},
		{"floors at min", 0.2, 1, 1},
		{"negative collapses to min", -10, 1, 1},
		{"nan collapses to min", math.NaN(), 1, 1},
		{"inf collapses to min", math.Inf(1), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositiveInt(tt.v, tt.min); got != tt.want {
				t.Errorf("PositiveInt(%v, %d) = %d, want %d", tt.v, tt.min, got, tt.want)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampTargetPUE(3.0); got != 2.0 {
		t.Errorf("ClampTargetPUE(3.0) = %v, want 2.0", got)
	}
	if got := ClampTargetPUE(1.0); got != 1.05 {
		t.Errorf("ClampTargetPUE(1.0) = %v, want 1.05", got)
	}
	if got := ClampWhitespaceRatio(0.9); got != 0.65 {
		t.Errorf("ClampWhitespaceRatio(0.9) = %v, want 0.65", got)
	}
	if got := ClampRackDensity(1.234); got != 3 {
		t.Errorf("ClampRackDensity(1.234) = %v, want floor 3", got)
	}
	if got := ClampRackDensity(12.346); got != 12.35 {
		t.Errorf("ClampRackDensity(12.346) = %v, want two decimals 12.35", got)
	}
	if got := ClampCriticalLoadMW(0); got != 0.5 {
		t.Errorf("ClampCriticalLoadMW(0) = %v, want 0.5", got)
	}
	if got := ClampWhitespaceArea(100); got != 5000 {
		t.Errorf("ClampWhitespaceArea(100) = %v, want floor 5000", got)
	}
	if got := ClampWhitespaceArea(2e6); got != 1e6 {
		t.Errorf("ClampWhitespaceArea(2e6) = %v, want ceiling 1e6", got)
	}
}

func TestCampusLimitsTable(t *testing.T) {
	if CampusLimits.TargetPUE.Min != 1.05 || CampusLimits.TargetPUE.Max != 2.00 {
		t.Errorf("TargetPUE limits = %+v, want [1.05, 2.00]", CampusLimits.TargetPUE)
	}
	if CampusLimits.RackDensityKW.Min != 3 || CampusLimits.RackDensityKW.Max != 80 {
		t.Errorf("RackDensityKW limits = %+v, want [3, 80]", CampusLimits.RackDensityKW)
	}
	if CampusLimits.WhitespaceAreaSqFt.Min != 5000 {
		t.Errorf("WhitespaceAreaSqFt.Min = %v, want 5000", CampusLimits.WhitespaceAreaSqFt.Min)
	}
}
