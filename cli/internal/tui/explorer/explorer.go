// ABOUTME: Campus explorer tree pane for the TUI main screen
// ABOUTME: Navigates campus/zone/hall nodes and shows specs for the selection

package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/icons"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/styles"
)

// row is one visible line of the flattened tree.
type row struct {
	node  *models.ExplorerNode
	depth int
}

// Explorer is the navigation tree with a specs detail panel underneath.
type Explorer struct {
	model    *models.CampusModel
	expanded map[string]bool
	rows     []row
	cursor   int
	focused  bool
	width    int
	height   int
}

var (
	treeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	nodeStyle      = lipgloss.NewStyle().Foreground(styles.Text)
	dimStyle       = lipgloss.NewStyle().Foreground(styles.Muted)
	specsKeyStyle  = lipgloss.NewStyle().Foreground(styles.Muted).Width(14)
	specsValStyle  = lipgloss.NewStyle().Foreground(styles.Text)
)

// New creates an explorer over the given model. The campus root starts
// expanded so the zone list is visible immediately.
func New(model *models.CampusModel, width, height int) *Explorer {
	e := &Explorer{
		expanded: make(map[string]bool),
		width:    width,
		height:   height,
	}
	e.SetModel(model)
	return e
}

// SetModel replaces the underlying model, keeping expansion state for node
// IDs that survive the swap.
func (e *Explorer) SetModel(model *models.CampusModel) {
	e.model = model
	if model != nil {
		e.expanded[model.Explorer.ID] = true
	}
	e.rebuild()
}

// SetSize updates the pane dimensions
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// SetFocused toggles keyboard focus styling
func (e *Explorer) SetFocused(focused bool) {
	e.focused = focused
}

// Focused reports whether the pane has keyboard focus
func (e *Explorer) Focused() bool {
	return e.focused
}

// Selected returns the specs for the node under the cursor, or nil.
func (e *Explorer) Selected() *models.SpecsSummary {
	if e.model == nil || e.cursor < 0 || e.cursor >= len(e.rows) {
		return nil
	}
	specs, ok := e.model.Specs[e.rows[e.cursor].node.ID]
	if !ok {
		return nil
	}
	return &specs
}

// Update handles navigation keys. Enter and space toggle expansion on nodes
// with children; left jumps to the parent when already collapsed.
func (e *Explorer) Update(msg tea.KeyMsg) {
	if len(e.rows) == 0 {
		return
	}

	switch msg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}
	case "enter", " ":
		e.toggle()
	case "right", "l":
		n := e.rows[e.cursor].node
		if len(n.Children) > 0 && !e.expanded[n.ID] {
			e.expanded[n.ID] = true
			e.rebuild()
		}
	case "left", "h":
		n := e.rows[e.cursor].node
		if len(n.Children) > 0 && e.expanded[n.ID] {
			e.expanded[n.ID] = false
			e.rebuild()
		} else {
			e.moveToParent()
		}
	}
}

func (e *Explorer) toggle() {
	n := e.rows[e.cursor].node
	if len(n.Children) == 0 {
		return
	}
	e.expanded[n.ID] = !e.expanded[n.ID]
	e.rebuild()
}

func (e *Explorer) moveToParent() {
	depth := e.rows[e.cursor].depth
	if depth == 0 {
		return
	}
	for i := e.cursor - 1; i >= 0; i-- {
		if e.rows[i].depth < depth {
			e.cursor = i
			return
		}
	}
}

func (e *Explorer) rebuild() {
	e.rows = e.rows[:0]
	if e.model != nil {
		e.walk(&e.model.Explorer, 0)
	}
	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *Explorer) walk(n *models.ExplorerNode, depth int) {
	e.rows = append(e.rows, row{node: n, depth: depth})
	if e.expanded[n.ID] {
		for i := range n.Children {
			e.walk(&n.Children[i], depth+1)
		}
	}
}

func kindIcon(kind string) string {
	switch kind {
	case "campus":
		return icons.Campus.String()
	case "zone":
		return icons.Zone.String()
	case "hall":
		return icons.Hall.String()
	default:
		return icons.Rack.String()
	}
}

// View renders the tree followed by the specs panel for the selection.
func (e *Explorer) View() string {
	if e.model == nil {
		return dimStyle.Render("No campus loaded")
	}

	var b strings.Builder
	b.WriteString(treeTitleStyle.Render("Explorer"))
	b.WriteString("\n\n")

	// Keep the cursor visible when the tree outgrows the pane. The specs
	// panel needs about 10 lines; the rest is tree viewport.
	treeHeight := e.height - 12
	if treeHeight < 5 {
		treeHeight = 5
	}
	start := 0
	if e.cursor >= treeHeight {
		start = e.cursor - treeHeight + 1
	}
	end := start + treeHeight
	if end > len(e.rows) {
		end = len(e.rows)
	}

	for i := start; i < end; i++ {
		b.WriteString(e.renderRow(i))
		b.WriteString("\n")
	}
	if end < len(e.rows) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(e.rows)-end)))
		b.WriteString("\n")
	}

	if specs := e.Selected(); specs != nil {
		b.WriteString("\n")
		b.WriteString(e.renderSpecs(specs))
	}

	return b.String()
}

func (e *Explorer) renderRow(i int) string {
	r := e.rows[i]
	n := r.node

	indent := strings.Repeat("  ", r.depth)

	marker := "  "
	if len(n.Children) > 0 {
		if e.expanded[n.ID] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	label := fmt.Sprintf("%s%s%s %s", indent, marker, kindIcon(n.Kind), n.Name)
	detail := fmt.Sprintf(" %d racks · %.0f%%", n.RackCount, n.UtilizationPct)

	if i == e.cursor && e.focused {
		return cursorStyle.Render("> "+label) + dimStyle.Render(detail)
	}
	if i == e.cursor {
		return nodeStyle.Render("> "+label) + dimStyle.Render(detail)
	}
	return nodeStyle.Render("  "+label) + dimStyle.Render(detail)
}

// renderSpecs renders the detail panel for one node. Hall rows carry the rack
// profile; zone and campus rows aggregate.
func (e *Explorer) renderSpecs(s *models.SpecsSummary) string {
	var b strings.Builder

	b.WriteString(treeTitleStyle.Render("Specs"))
	b.WriteString("\n")

	line := func(key, val string) {
		b.WriteString(specsKeyStyle.Render(key))
		b.WriteString(specsValStyle.Render(val))
		b.WriteString("\n")
	}

	line("Name", fmt.Sprintf("%s %s", kindIcon(s.Kind), s.Name))

	barWidth := e.width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 30 {
		barWidth = 30
	}
	util := fmt.Sprintf("%s %.1f%%", styles.ProgressBar(s.UtilizationPct, barWidth), s.UtilizationPct)
	line("Utilization", util)

	line("Racks", fmt.Sprintf("%d / %d", s.RackCount, s.Capacity))
	if s.HallCount > 0 {
		line("Halls", fmt.Sprintf("%d", s.HallCount))
	}
	line("Critical", fmt.Sprintf("%.0f kW", s.CriticalKW))
	line("Facility", fmt.Sprintf("%.0f kW", s.FacilityKW))
	line("Area", fmt.Sprintf("%.0f sqft", s.AreaSqFt))

	if s.RackDensityKW > 0 {
		line("Density", fmt.Sprintf("%.1f kW/rack", s.RackDensityKW))
	}
	if s.Redundancy != "" {
		line("Redundancy", s.Redundancy)
	}
	if s.CoolingType != "" {
		line("Cooling", s.CoolingType)
	}
	if s.Containment != "" {
		line("Containment", s.Containment)
	}
	if s.TargetPUE > 0 {
		line("Target PUE", fmt.Sprintf("%.2f", s.TargetPUE))
	}

	return b.String()
}
