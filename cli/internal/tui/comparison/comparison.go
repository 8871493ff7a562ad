// ABOUTME: Comparison view showing current vs proposed what-if results
// ABOUTME: Displays deltas, tradeoff warnings, and the no-op note

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/styles"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/widgets"
)

// Comparison displays what-if comparison results
type Comparison struct {
	result *models.WhatIfComparison
	width  int
}

// New creates a new comparison view
func New(result *models.WhatIfComparison, width int) *Comparison {
	return &Comparison{
		result: result,
		width:  width,
	}
}

// SetSize updates the view width
func (c *Comparison) SetSize(width int) {
	c.width = width
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.result == nil {
		return "No comparison data"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("What-If Comparison"))
	sb.WriteString("\n\n")

	if !c.result.Changed {
		sb.WriteString(styles.Help.Render("Proposed changes resolve to a no-op; both columns are identical."))
		sb.WriteString("\n\n")
	}

	// Side by side summaries
	colWidth := (c.width - 4) / 2
	if colWidth < 24 {
		colWidth = 24
	}

	currentCol := c.renderSummary("Current", &c.result.Current, colWidth)
	proposedCol := c.renderSummary("Proposed", &c.result.Proposed, colWidth)

	currentLines := strings.Split(currentCol, "\n")
	proposedLines := strings.Split(proposedCol, "\n")
	maxLines := len(currentLines)
	if len(proposedLines) > maxLines {
		maxLines = len(proposedLines)
	}

	for i := 0; i < maxLines; i++ {
		left := ""
		right := ""
		if i < len(currentLines) {
			left = currentLines[i]
		}
		if i < len(proposedLines) {
			right = proposedLines[i]
		}
		// Styled strings carry ANSI escapes, so pad on rendered width
		pad := colWidth - lipgloss.Width(left)
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(left + strings.Repeat(" ", pad) + "  " + right + "\n")
	}

	// Delta section
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Changes"))
	sb.WriteString("\n")

	delta := c.result.Delta

	rackStyle := styles.StatusOK
	if delta.RackCountChange < 0 {
		rackStyle = styles.StatusCritical
	}
	sb.WriteString(fmt.Sprintf("  Racks:       %s\n", rackStyle.Render(fmt.Sprintf("%+d", delta.RackCountChange))))

	utilStyle := styles.StatusOK
	if delta.UtilizationChangePct > 0 {
		utilStyle = styles.StatusWarning
	}
	sb.WriteString(fmt.Sprintf("  Utilization: %s\n", utilStyle.Render(fmt.Sprintf("%+.1f%%", delta.UtilizationChangePct))))

	// Growing power draw is the cost side, so colors invert
	sb.WriteString(fmt.Sprintf("  Critical:    %s\n", widgets.DeltaBadge(delta.CriticalKWChange, " kW", true)))

	facStyle := styles.StatusOK
	if delta.FacilityMWChange > 0 {
		facStyle = styles.StatusWarning
	}
	sb.WriteString(fmt.Sprintf("  Facility:    %s\n", facStyle.Render(fmt.Sprintf("%+.2f MW", delta.FacilityMWChange))))

	sb.WriteString(fmt.Sprintf("  Area:        %s\n", widgets.DeltaBadge(delta.AreaChangeSqFt, " sqft", true)))

	// Warnings
	if len(c.result.Warnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render("Warnings"))
		sb.WriteString("\n")
		for _, w := range c.result.Warnings {
			level := widgets.StatusFromSeverity(w.Severity)
			sb.WriteString(fmt.Sprintf("  %s %s\n", widgets.StatusIcon(level), w.Message))
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

func (c *Comparison) renderSummary(title string, s *models.WhatIfSummary, width int) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Racks: %d / %d\n", s.RackCount, s.RackCapacity))

	barWidth := width - 10
	if barWidth < 8 {
		barWidth = 8
	}
	if barWidth > 20 {
		barWidth = 20
	}
	sb.WriteString(fmt.Sprintf("%s %.1f%%\n", styles.ProgressBar(s.UtilizationPct, barWidth), s.UtilizationPct))

	sb.WriteString(fmt.Sprintf("Critical: %.0f kW\n", s.CriticalKW))
	sb.WriteString(fmt.Sprintf("Facility: %.2f MW\n", s.TotalFacilityMW))
	sb.WriteString(fmt.Sprintf("Area: %.0f sqft\n", s.GrossSqFt))
	sb.WriteString(fmt.Sprintf("PUE: %.2f\n", s.TargetPUE))
	sb.WriteString(fmt.Sprintf("Density: %.1f kW %s\n", s.AvgDensityKW, widgets.DensityBadge(s.AvgDensityKW)))
	return sb.String()
}
