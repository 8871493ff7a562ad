// ABOUTME: New command for the campusctl CLI
// ABOUTME: Scaffolds a campus on the backend from headline parameters

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
	newName        string
	newHalls       int
	newRacks       int
	newLoadMW      float64
	newDensity     float64
	newPUE         float64
	newRatio       float64
	newAreaSqFt    float64
	newRedundancy  string
	newCooling     string
	newContainment string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a campus on the backend",
	Long: `Scaffold a new campus from headline parameters and store it on the
backend. Parameters left at zero are derived by the capacity oracle.

Example:
  campusctl new --name "Metro West" --halls 4 --density 12.5`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runNew(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newName, "name", "", "Campus display name")
	newCmd.Flags().IntVar(&newHalls, "halls", 0, "Hall count")
	newCmd.Flags().IntVar(&newRacks, "racks", 0, "Total rack demand")
	newCmd.Flags().Float64Var(&newLoadMW, "load", 0, "Critical IT load in MW")
	newCmd.Flags().Float64Var(&newDensity, "density", 0, "Rack density in kW")
	newCmd.Flags().Float64Var(&newPUE, "pue", 0, "Target PUE")
	newCmd.Flags().Float64Var(&newRatio, "ratio", 0, "Whitespace ratio")
	newCmd.Flags().Float64Var(&newAreaSqFt, "area", 0, "Whitespace area in sqft")
	newCmd.Flags().StringVar(&newRedundancy, "redundancy", "", "Redundancy tier (N, N+1, 2N)")
	newCmd.Flags().StringVar(&newCooling, "cooling", "", "Cooling type (Air-Cooled, DLC, Hybrid)")
	newCmd.Flags().StringVar(&newContainment, "containment", "", "Containment strategy")
}

// runNew scaffolds the campus and returns exit code
func runNew(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	campus, err := c.NewCampus(ctx, newName, buildNewParams())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(campus, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Created campus %q (%s)\n", campus.Label(), campus.ID)
	fmt.Fprintf(w, "Zones: %d  Halls: %d  Racks: %d\n",
		len(campus.Zones), campus.TotalHalls(), campus.TotalRacks())
	return 0
}

// buildNewParams collects the sizing flags. Nil means the backend picks
// every value from its configured defaults.
func buildNewParams() *models.Params {
	p := models.Params{
		HallCount:          newHalls,
		TotalRacks:         newRacks,
		CriticalLoadMW:     newLoadMW,
		RackDensityKW:      newDensity,
		TargetPUE:          newPUE,
		WhitespaceRatio:    newRatio,
		WhitespaceAreaSqFt: newAreaSqFt,
		Redundancy:         newRedundancy,
		CoolingType:        newCooling,
		Containment:        newContainment,
	}
	if p == (models.Params{}) {
		return nil
	}
	return &p
}
