// ABOUTME: Shared wizard plumbing: huh theme, progress box, and validators
// ABOUTME: The what-if and new-campus wizards both build on these pieces

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/icons"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/styles"
)

// createTheme returns a custom huh theme on the shared purple palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	purple := styles.Primary
	accent := styles.Accent
	gray := styles.Muted
	text := styles.Text
	red := styles.Danger
	slate := styles.Surface

	// Group styles (section headers)
	t.Group.Title = lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	// Focused field styles
	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(purple)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	// Select field styles
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(purple).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(purple).
		Bold(true)
	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(purple).
		MarginLeft(1).
		SetString("→")
	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(purple).
		MarginRight(1).
		SetString("←")

	// Text input styles
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(purple)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(purple)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(text)

	// Button styles
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(purple).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	// Blurred field styles (inherit from focused with muted colors)
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// Common rack density choices, spanning the supported classes
var densityOptions = []huh.Option[string]{
	huh.NewOption("8 kW (Standard)", "8"),
	huh.NewOption("12 kW (Standard)", "12"),
	huh.NewOption("17 kW (High-Density)", "17"),
	huh.NewOption("25 kW (High-Density)", "25"),
	huh.NewOption("40 kW (Extreme)", "40"),
}

// stringOptions turns a canonical value list into huh options. A non-empty
// blankLabel adds a leading empty-value entry so the field can opt out.
func stringOptions(values []string, blankLabel string) []huh.Option[string] {
	var opts []huh.Option[string]
	if blankLabel != "" {
		opts = append(opts, huh.NewOption(blankLabel, ""))
	}
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func redundancyOptions(blankLabel string) []huh.Option[string] {
	return stringOptions(models.Redundancies, blankLabel)
}

func coolingOptions(blankLabel string) []huh.Option[string] {
	return stringOptions(models.CoolingTypes, blankLabel)
}

func containmentOptions(blankLabel string) []huh.Option[string] {
	return stringOptions(models.Containments, blankLabel)
}

// renderProgress renders the step progress box shared by both wizards
func renderProgress(stepNames []string, step, width int) string {
	// Use width - 1 so the progress box fits inside the outer frame
	width = width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	// Build step indicators
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < step {
			// Completed step
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == step {
			// Current step
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			// Future step
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	totalSteps := len(stepNames)
	filledWidth := (step * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	// Build panel with consistent width
	styledTitle := titleStyle.Render("Progress")
	titleWidth := lipgloss.Width("Progress")

	// Top border: "┌─ " + title + " " + fill + "┐"
	// Total = 3 + titleWidth + 1 + fillWidth + 1 = width
	topFillWidth := max(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	// Steps line: "│ " + content + padding + " │" = 4 chars overhead
	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := max(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	// Progress line: "│  " + bar + " │" (extra indent for visual alignment)
	progressLinePadded := "│  " + progressBar + " │"

	// Bottom border: "└" + fill + "┘"
	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// validateRange builds a validator that accepts numbers inside an inclusive
// limit, or a blank value when optional.
func validateRange(limit models.Limit, optional bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if optional {
				return nil
			}
			return fmt.Errorf("required")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < limit.Min || v > limit.Max {
			return fmt.Errorf("must be between %g and %g", limit.Min, limit.Max)
		}
		return nil
	}
}

// parseFloat reads a trimmed float, returning ok=false on blank or bad input
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
