// ABOUTME: Root command for the campusctl CLI
// ABOUTME: Handles global flags and launches the TUI when run bare

package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "CLI for the campus capacity modeler",
	Long: `campusctl is a command-line interface for the data-center campus modeler.

It scripts the modeling backend for CI pipelines and shell workflows, and
opens an interactive TUI when run without a subcommand.

Environment Variables:
  CAMPUS_API_URL  Backend API URL (default: http://localhost:8080)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides CAMPUS_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("CAMPUS_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// runTUI starts the interactive terminal UI. A failed health probe still
// opens the UI; the menu surfaces the connection state itself.
func runTUI() error {
	c := client.New(GetAPIURL())

	vsphereConfigured := false
	serverHasCampus := false
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if resp, err := c.Health(ctx); err == nil {
		vsphereConfigured = resp.VSphere == "configured"
		serverHasCampus = resp.HasCampus
	}

	return tui.Run(c, vsphereConfigured, serverHasCampus)
}
