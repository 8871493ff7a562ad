// ABOUTME: Model command for the campusctl CLI
// ABOUTME: Computes and prints the aggregated campus model

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/campusfile"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
)

var modelCmd = &cobra.Command{
	Use:   "model [file]",
	Short: "Show the aggregated campus model",
	Long: `Compute and display the aggregated campus model.

With a file argument the document is read locally and modeled by the
stateless endpoint, leaving backend state untouched. Without one the
model of the stored campus is shown. Use --json for the full model.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runModel(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
}

// runModel computes the model and returns exit code
func runModel(ctx context.Context, w io.Writer, args []string) int {
	c := client.New(GetAPIURL())

	var (
		model *models.CampusModel
		err   error
	)
	if len(args) == 1 {
		var campus *models.Campus
		campus, err = campusfile.Load(args[0])
		if err == nil {
			model, err = c.ComputeModel(ctx, campus)
		}
	} else {
		model, err = c.GetModel(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(model, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatModelHuman(model))
	return 0
}

// formatModelHuman formats the model summary for human readability
func formatModelHuman(m *models.CampusModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Campus:       %s\n", m.Name)
	fmt.Fprintf(&b, "Zones:        %d\n", m.Totals.ZoneCount)
	fmt.Fprintf(&b, "Halls:        %d\n", m.Totals.HallCount)
	fmt.Fprintf(&b, "Racks:        %d / %d capacity (%.1f%%)\n",
		m.Totals.RackCount, m.Totals.RackCapacity, m.Totals.UtilizationPct)
	fmt.Fprintf(&b, "Critical IT:  %.2f MW\n", m.Totals.CriticalITMW)
	fmt.Fprintf(&b, "Facility:     %.2f MW (PUE %.2f)\n", m.Totals.TotalFacilityMW, m.Params.TargetPUE)
	fmt.Fprintf(&b, "Whitespace:   %.0f sqft of %.0f gross\n", m.Totals.WhitespaceSqFt, m.Totals.GrossSqFt)
	fmt.Fprintf(&b, "Profile:      %s / %s / %s\n",
		m.Mix.DominantRedundancy, m.Mix.DominantCoolingType, m.Mix.DominantContainment)

	if len(m.Halls) > 0 {
		fmt.Fprintf(&b, "\nHalls:\n")
		for _, hall := range m.Halls {
			fmt.Fprintf(&b, "  %-14s %4d racks  %s-%s  %.1f kW/rack\n",
				hall.Name, hall.AssignedRacks,
				models.RackID(hall.RackStartIndex), models.RackID(hall.RackEndIndex),
				hall.Profile.RackDensityKW)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
