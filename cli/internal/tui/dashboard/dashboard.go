// ABOUTME: Dashboard component displaying live campus metrics
// ABOUTME: Shows counts, utilization, power, and advisories in the left pane

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/icons"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/styles"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/widgets"
)

// historyLimit caps the utilization trend kept across refreshes
const historyLimit = 8

// Dashboard displays campus metrics
type Dashboard struct {
	resp        *models.DashboardResponse
	historyUtil []float64
	width       int
	height      int
}

// New creates a new dashboard with campus data
func New(resp *models.DashboardResponse, width, height int) *Dashboard {
	d := &Dashboard{
		width:  width,
		height: height,
	}
	d.Update(resp)
	return d
}

// Update refreshes the dashboard with new campus data and records the
// utilization sample for the trend sparkline.
func (d *Dashboard) Update(resp *models.DashboardResponse) {
	d.resp = resp
	if resp == nil || !resp.HasCampus {
		return
	}
	d.historyUtil = append(d.historyUtil, resp.Totals.UtilizationPct)
	if len(d.historyUtil) > historyLimit {
		d.historyUtil = d.historyUtil[len(d.historyUtil)-historyLimit:]
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.resp == nil {
		return styles.Panel.Width(d.width).Render("Loading campus data...")
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Campus Overview"))
	sb.WriteString("\n")

	if !d.resp.HasCampus {
		sb.WriteString("\n")
		sb.WriteString(widgets.StatusText("No campus configured", widgets.StatusWarning))
		sb.WriteString("\n\n")
		sb.WriteString(styles.Help.Render("Load a document, import from vSphere, or run the new-campus wizard."))
		return lipgloss.NewStyle().Width(d.width).Height(d.height).Render(sb.String())
	}

	sb.WriteString(styles.Subtitle.Render(d.resp.CampusName))
	sb.WriteString("\n\n")

	totals := d.resp.Totals

	blockWidth := (d.width - 3) / 3
	if blockWidth < 16 {
		blockWidth = 16
	}
	contentWidth := blockWidth * 3

	cfg := widgets.DefaultMetricBlockConfig()
	cfg.Width = blockWidth

	// Entity counts
	counts := lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.CountBlock(icons.Zone, "Zones", totals.ZoneCount, "zones", cfg),
		widgets.CountBlock(icons.Hall, "Halls", totals.HallCount, "halls", cfg),
		widgets.CountBlock(icons.Rack, "Racks", totals.RackCount, "placed", cfg),
	)
	sb.WriteString(counts)
	sb.WriteString("\n")

	// Rack utilization against capacity
	wideCfg := cfg
	wideCfg.Width = contentWidth
	sb.WriteString(widgets.MetricBlockWithBar(icons.Gauge, "Rack Utilization",
		totals.UtilizationPct,
		fmt.Sprintf("%d / %d racks", totals.RackCount, totals.RackCapacity),
		wideCfg))
	sb.WriteString("\n")

	// Power blocks: critical IT load and facility draw through the PUE
	halfCfg := cfg
	halfCfg.Width = contentWidth / 2
	power := lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.MetricBlock(icons.Power, "Critical IT",
			fmt.Sprintf("%.2f MW", totals.CriticalITMW),
			fmt.Sprintf("%.1f kW/rack", d.resp.Params.RackDensityKW),
			halfCfg),
		widgets.MetricBlock(icons.Power, "Facility",
			fmt.Sprintf("%.2f MW", totals.TotalFacilityMW),
			fmt.Sprintf("PUE %.2f", d.resp.Params.TargetPUE),
			halfCfg),
	)
	sb.WriteString(power)
	sb.WriteString("\n")

	// Dominant profile line
	mix := d.resp.Mix
	profile := fmt.Sprintf("%s · %s · %s", mix.DominantRedundancy, mix.DominantCoolingType, mix.DominantContainment)
	sb.WriteString(styles.KeyStyle.Render("Profile  "))
	sb.WriteString(styles.ValueStyle.Render(profile))
	sb.WriteString(" ")
	sb.WriteString(widgets.DensityBadge(d.resp.Params.RackDensityKW))
	sb.WriteString("\n")

	// Utilization trend across refreshes
	if len(d.historyUtil) > 1 {
		sb.WriteString(styles.KeyStyle.Render("Trend    "))
		sb.WriteString(widgets.Sparkline(d.historyUtil, historyLimit, styles.Primary))
		sb.WriteString(styles.Help.Render(fmt.Sprintf("  %.1f%%", totals.UtilizationPct)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Binding constraint
	sb.WriteString(d.renderConstraint())

	// Validation state
	if d.resp.Valid {
		sb.WriteString(widgets.StatusText("Model valid", widgets.StatusOK))
	} else {
		sb.WriteString(widgets.StatusText(fmt.Sprintf("%d validation issue(s)", d.resp.IssueCount), widgets.StatusCritical))
	}
	sb.WriteString("\n")

	// Top advisories
	if len(d.resp.Advisories) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Advisories"))
		sb.WriteString("\n")
		shown := d.resp.Advisories
		if len(shown) > 2 {
			shown = shown[:2]
		}
		for _, adv := range shown {
			level := impactStatus(adv.ImpactLevel)
			sb.WriteString(fmt.Sprintf("%s %s\n", widgets.StatusIcon(level), adv.Title))
		}
		if len(d.resp.Advisories) > 2 {
			sb.WriteString(styles.Help.Render(fmt.Sprintf("… %d more", len(d.resp.Advisories)-2)))
			sb.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}

// renderConstraint shows the power-versus-space pressure ranking with one
// compact bar per resource.
func (d *Dashboard) renderConstraint() string {
	c := d.resp.Constraint
	if len(c.Resources) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Binding Constraint"))
	sb.WriteString("\n")

	for _, r := range c.Resources {
		color := styles.Secondary
		if r.UsedPercent >= 90 {
			color = styles.Danger
		} else if r.UsedPercent >= 80 {
			color = styles.Warning
		}

		name := r.Name
		if r.IsConstraining {
			name = name + "*"
		}
		sb.WriteString(fmt.Sprintf("%-8s %s %.0f%%\n",
			name,
			widgets.CompactProgressBar(r.UsedPercent, 14, color),
			r.UsedPercent))
	}

	if c.Summary != "" {
		sb.WriteString(styles.Help.Render(c.Summary))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

func impactStatus(level string) widgets.StatusLevel {
	switch level {
	case "high":
		return widgets.StatusCritical
	case "medium":
		return widgets.StatusWarning
	case "low":
		return widgets.StatusInfo
	default:
		return widgets.StatusNeutral
	}
}
