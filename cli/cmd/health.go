// ABOUTME: Health command for the campusctl CLI
// ABOUTME: Checks backend connectivity and reports campus and service state

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

	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long: `Check connectivity to the campus modeling backend and report service status.

Exits 1 when the backend is unreachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *client.HealthResponse) string {
	campus := "none loaded"
	if resp.HasCampus {
		campus = resp.Campus
		if resp.CampusSource != "" {
			campus = fmt.Sprintf("%s (%s)", resp.Campus, resp.CampusSource)
		}
	}
	return fmt.Sprintf(`Backend:     %s
Status:      %s
Campus:      %s
vSphere:     %s
Cache Items: %d`, url, resp.Status, campus, resp.VSphere, resp.CacheItems)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *client.HealthResponse) string {
	output := map[string]interface{}{
		"backend":     url,
		"status":      resp.Status,
		"has_campus":  resp.HasCampus,
		"vsphere":     resp.VSphere,
		"cache_items": resp.CacheItems,
	}
	if resp.HasCampus {
		output["campus"] = resp.Campus
		output["campus_source"] = resp.CampusSource
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
