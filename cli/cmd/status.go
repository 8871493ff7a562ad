// ABOUTME: Status command for the campusctl CLI
// ABOUTME: Shows the stored campus dashboard summary and capacity posture

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

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current campus status",
	Long:  `Display the stored campus summary including rollups, utilization, the constraining resource, and advisories.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatus executes the status check and returns exit code
func runStatus(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Dashboard(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatStatusJSON(resp))
	} else {
		fmt.Fprintln(w, formatStatusHuman(resp))
	}

	if !resp.HasCampus {
		return 2
	}
	return 0
}

// formatStatusHuman formats the dashboard response for human readability
func formatStatusHuman(resp *models.DashboardResponse) string {
	if !resp.HasCampus {
		return "No campus loaded.\nScaffold one with 'campusctl new' or load a document via the TUI."
	}

	utilStatus := capacityStatus(resp.Totals.UtilizationPct, 80, 90)

	out := fmt.Sprintf(`Campus:       %s
Zones:        %d
Halls:        %d
Racks:        %d / %d capacity

Utilization:  %.1f%% [%s]
Critical IT:  %.2f MW
Facility:     %.2f MW (PUE %.2f)
Constraining: %s`,
		resp.CampusName,
		resp.Totals.ZoneCount,
		resp.Totals.HallCount,
		resp.Totals.RackCount, resp.Totals.RackCapacity,
		resp.Totals.UtilizationPct, utilStatus,
		resp.Totals.CriticalITMW,
		resp.Totals.TotalFacilityMW, resp.Params.TargetPUE,
		resp.Constraint.ConstrainingResource)

	if !resp.Valid {
		out += fmt.Sprintf("\n\nValidation:   %d issue(s), see 'campusctl check'", resp.IssueCount)
	}
	if len(resp.Advisories) > 0 {
		out += "\n\nAdvisories:"
		for _, a := range resp.Advisories {
			out += fmt.Sprintf("\n  [%s] %s", a.ImpactLevel, a.Title)
		}
	}

	return out
}

// formatStatusJSON formats the dashboard response as JSON
func formatStatusJSON(resp *models.DashboardResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}

// capacityStatus returns ok/warning/critical based on thresholds
func capacityStatus(percent, warningThreshold, criticalThreshold float64) string {
	if percent >= criticalThreshold {
		return "critical"
	}
	if percent >= warningThreshold {
		return "warning"
	}
	return "ok"
}
