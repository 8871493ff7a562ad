// ABOUTME: Check command for the campusctl CLI
// ABOUTME: Validates campus documents for CI/CD pipelines

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
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/campusfile"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a campus document",
	Long: `Validate a campus document against the modeling rules.

With a file argument the document is read locally and validated by the
stateless endpoint. Without one the campus stored on the backend is
validated.

Exit codes:
  0 - No validation issues
  1 - One or more issues found
  2 - Error (connectivity, unreadable file, no campus loaded)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck validates the campus and returns exit code
func runCheck(ctx context.Context, w io.Writer, args []string) int {
	c := client.New(GetAPIURL())

	var (
		campus *models.Campus
		err    error
	)
	if len(args) == 1 {
		campus, err = campusfile.Load(args[0])
	} else {
		campus, err = c.GetCampus(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result, err := c.ValidateCampus(ctx, campus)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(campus, result))
	} else {
		fmt.Fprintln(w, formatCheckHuman(campus, result))
	}

	if !result.Valid {
		return 1
	}
	return 0
}

// formatCheckHuman formats validation results for human readability
func formatCheckHuman(campus *models.Campus, result *models.ValidationResult) string {
	if result.Valid {
		return fmt.Sprintf("✓ campus %q is valid", campus.Label())
	}

	var output string
	for _, issue := range result.Issues {
		output += fmt.Sprintf("✗ %s: %s\n", issue.Path, issue.Message)
		if issue.Recommendation != "" {
			output += fmt.Sprintf("  fix: %s\n", issue.Recommendation)
		}
	}
	output += fmt.Sprintf("\nFAILED: %d issue(s) found", len(result.Issues))

	return output
}

// formatCheckJSON formats validation results as JSON
func formatCheckJSON(campus *models.Campus, result *models.ValidationResult) string {
	status := "passed"
	if !result.Valid {
		status = "failed"
	}

	issues := result.Issues
	if issues == nil {
		issues = []models.Issue{}
	}

	output := map[string]interface{}{
		"status": status,
		"campus": campus.Label(),
		"valid":  result.Valid,
		"issues": issues,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
