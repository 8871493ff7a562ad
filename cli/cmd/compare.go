// ABOUTME: Non-interactive what-if comparison command
// ABOUTME: Allows CI/CD pipelines to evaluate proposed campus changes

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
)

var (
	compareDensity     float64
	compareRedundancy  string
	compareCooling     string
	compareContainment string
	comparePUE         float64
	compareRatio       float64
	compareZoneID      string
	compareHallID      string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare current vs proposed campus",
	Long: `Run a what-if comparison against the stored campus without the
interactive TUI. Flags left at zero or empty keep the current value.
Scope profile changes to one zone or hall with --zone or --hall.

Example:
  campusctl compare --density 12 --redundancy 2N --json
  campusctl compare --hall hall-2 --density 17.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		input, err := buildCompareInput()
		if err != nil {
			return err
		}

		c := client.New(GetAPIURL())
		return runCompare(ctx, c, os.Stdout, input, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64Var(&compareDensity, "density", 0, "Proposed rack density in kW")
	compareCmd.Flags().StringVar(&compareRedundancy, "redundancy", "", "Proposed redundancy tier (N, N+1, 2N)")
	compareCmd.Flags().StringVar(&compareCooling, "cooling", "", "Proposed cooling type (Air-Cooled, DLC, Hybrid)")
	compareCmd.Flags().StringVar(&compareContainment, "containment", "", "Proposed containment strategy")
	compareCmd.Flags().Float64Var(&comparePUE, "pue", 0, "Proposed target PUE")
	compareCmd.Flags().Float64Var(&compareRatio, "ratio", 0, "Proposed whitespace ratio")
	compareCmd.Flags().StringVar(&compareZoneID, "zone", "", "Apply profile changes to one zone id")
	compareCmd.Flags().StringVar(&compareHallID, "hall", "", "Apply profile changes to one hall id")
}

// buildCompareInput assembles the what-if input from the command flags.
// Zero-valued flags are treated as unset.
func buildCompareInput() (*models.WhatIfInput, error) {
	if compareZoneID != "" && compareHallID != "" {
		return nil, fmt.Errorf("--zone and --hall are mutually exclusive")
	}

	input := &models.WhatIfInput{
		Scope: models.PatchScope{Level: models.ScopeCampus},
	}
	if compareZoneID != "" {
		input.Scope = models.PatchScope{Level: models.ScopeZone, ZoneID: compareZoneID}
	}
	if compareHallID != "" {
		input.Scope = models.PatchScope{Level: models.ScopeHall, HallID: compareHallID}
	}

	profile := &models.RackProfilePatch{}
	hasProfile := false
	if compareDensity > 0 {
		profile.RackDensityKW = &compareDensity
		hasProfile = true
	}
	if compareRedundancy != "" {
		profile.Redundancy = &compareRedundancy
		hasProfile = true
	}
	if compareCooling != "" {
		profile.CoolingType = &compareCooling
		hasProfile = true
	}
	if compareContainment != "" {
		profile.Containment = &compareContainment
		hasProfile = true
	}
	if hasProfile {
		input.Profile = profile
	}

	properties := &models.PropertyPatch{}
	hasProperties := false
	if comparePUE > 0 {
		properties.TargetPUE = &comparePUE
		hasProperties = true
	}
	if compareRatio > 0 {
		properties.WhitespaceRatio = &compareRatio
		hasProperties = true
	}
	if hasProperties {
		input.Properties = properties
	}

	if !hasProfile && !hasProperties {
		return nil, fmt.Errorf("nothing to compare: set at least one of --density, --redundancy, --cooling, --containment, --pue, --ratio")
	}

	return input, nil
}

func runCompare(ctx context.Context, c *client.Client, w io.Writer, input *models.WhatIfInput, jsonOut bool) error {
	result, err := c.CompareScenario(ctx, input)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	// Human-readable output
	fmt.Fprintf(w, "What-If Comparison\n")
	fmt.Fprintf(w, "==================\n\n")
	if !result.Changed {
		fmt.Fprintf(w, "Proposed values match the current campus; nothing changes.\n\n")
	}
	fmt.Fprintf(w, "Current:\n")
	fmt.Fprintf(w, "  Racks: %d / %d capacity\n", result.Current.RackCount, result.Current.RackCapacity)
	fmt.Fprintf(w, "  Utilization: %.1f%%\n", result.Current.UtilizationPct)
	fmt.Fprintf(w, "  Critical: %.0f kW\n", result.Current.CriticalKW)
	fmt.Fprintf(w, "  Facility: %.2f MW\n", result.Current.TotalFacilityMW)
	fmt.Fprintf(w, "  Density: %.1f kW avg\n", result.Current.AvgDensityKW)
	fmt.Fprintf(w, "\nProposed:\n")
	fmt.Fprintf(w, "  Racks: %d / %d capacity\n", result.Proposed.RackCount, result.Proposed.RackCapacity)
	fmt.Fprintf(w, "  Utilization: %.1f%%\n", result.Proposed.UtilizationPct)
	fmt.Fprintf(w, "  Critical: %.0f kW\n", result.Proposed.CriticalKW)
	fmt.Fprintf(w, "  Facility: %.2f MW\n", result.Proposed.TotalFacilityMW)
	fmt.Fprintf(w, "  Density: %.1f kW avg\n", result.Proposed.AvgDensityKW)
	fmt.Fprintf(w, "\nChanges:\n")
	fmt.Fprintf(w, "  Racks: %+d\n", result.Delta.RackCountChange)
	fmt.Fprintf(w, "  Utilization: %+.1f%%\n", result.Delta.UtilizationChangePct)
	fmt.Fprintf(w, "  Critical: %+.0f kW\n", result.Delta.CriticalKWChange)
	fmt.Fprintf(w, "  Facility: %+.2f MW\n", result.Delta.FacilityMWChange)
	fmt.Fprintf(w, "  Area: %+.0f sqft\n", result.Delta.AreaChangeSqFt)

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n")
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warn.Severity, warn.Message)
		}
	}

	return nil
}
