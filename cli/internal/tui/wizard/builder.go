// ABOUTME: New-campus wizard collecting headline parameters for scaffolding
// ABOUTME: Blank fields stay zero so the backend derives them

package wizard

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// BuilderCompleteMsg is sent when the new-campus wizard finishes
type BuilderCompleteMsg struct {
	Name   string
	Params *models.Params
}

// BuilderCancelledMsg is sent when the new-campus wizard is cancelled
type BuilderCancelledMsg struct{}

// Builder manages the new-campus wizard flow as a bubbletea model
type Builder struct {
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh)
	name        string
	hallCount   string
	totalRacks  string
	criticalMW  string
	density     string
	redundancy  string
	cooling     string
	containment string
	pue         string
	ratio       string
	area        string
}

var builderSteps = []string{"Campus Shape", "Power & Density", "Site"}

// NewBuilder creates a new-campus wizard with working defaults
func NewBuilder() *Builder {
	b := &Builder{
		step:        1,
		hallCount:   "4",
		totalRacks:  "480",
		density:     "12",
		redundancy:  models.RedundancyN1,
		cooling:     models.CoolingAir,
		containment: models.ContainmentHotAisle,
		pue:         "1.40",
		ratio:       "0.45",
	}
	b.form = b.createShapeForm()
	return b
}

func (b *Builder) createShapeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Campus name").
				Description("Leave blank for a generated name").
				Placeholder("e.g., Metro West").
				CharLimit(64).
				Value(&b.name),
			huh.NewInput().
				Title("Hall count").
				Description("How many data halls to lay out").
				CharLimit(4).
				Value(&b.hallCount).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Total racks").
				Description("Rack demand across the campus").
				CharLimit(6).
				Value(&b.totalRacks).
				Validate(validatePositiveInt),
		).Title("Step 1: Campus Shape").
			Description("How big is the campus?"),
	).WithTheme(createTheme())
}

func (b *Builder) createPowerForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Critical IT load (MW)").
				Description("Leave blank to derive from racks × density").
				Placeholder("e.g., 6").
				CharLimit(8).
				Value(&b.criticalMW).
				Validate(validateRange(models.CampusLimits.CriticalLoadMW, true)),
			huh.NewSelect[string]().
				Title("Rack density").
				Options(densityOptions...).
				Value(&b.density),
			huh.NewSelect[string]().
				Title("Redundancy").
				Options(redundancyOptions("")...).
				Value(&b.redundancy),
			huh.NewSelect[string]().
				Title("Cooling").
				Options(coolingOptions("")...).
				Value(&b.cooling),
			huh.NewSelect[string]().
				Title("Containment").
				Options(containmentOptions("")...).
				Value(&b.containment),
		).Title("Step 2: Power & Density").
			Description("Electrical and cooling profile for every hall"),
	).WithTheme(createTheme())
}

func (b *Builder) createSiteForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target PUE").
				Placeholder("e.g., 1.40").
				CharLimit(6).
				Value(&b.pue).
				Validate(validateRange(models.CampusLimits.TargetPUE, true)),
			huh.NewInput().
				Title("Whitespace ratio").
				Description("Whitespace share of gross building area").
				Placeholder("e.g., 0.45").
				CharLimit(6).
				Value(&b.ratio).
				Validate(validateRange(models.CampusLimits.WhitespaceRatio, true)),
			huh.NewInput().
				Title("Whitespace area (sqft)").
				Description("Leave blank to derive from the rack demand").
				Placeholder("e.g., 60000").
				CharLimit(8).
				Value(&b.area).
				Validate(validateRange(models.CampusLimits.WhitespaceAreaSqFt, true)),
		).Title("Step 3: Site").
			Description("Efficiency target and floor plan"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (b *Builder) Init() tea.Cmd {
	return b.form.Init()
}

// Update implements tea.Model
func (b *Builder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		form, cmd := b.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			b.form = f
		}
		return b, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return b, func() tea.Msg { return BuilderCancelledMsg{} }
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		return b.advanceStep()
	}

	return b, cmd
}

func (b *Builder) advanceStep() (tea.Model, tea.Cmd) {
	switch b.step {
	case 1:
		b.step = 2
		b.form = b.createPowerForm()
		return b, b.form.Init()

	case 2:
		b.step = 3
		b.form = b.createSiteForm()
		return b, b.form.Init()

	case 3:
		name := strings.TrimSpace(b.name)
		params := b.buildParams()
		return b, func() tea.Msg {
			return BuilderCompleteMsg{Name: name, Params: params}
		}
	}

	return b, nil
}

// buildParams assembles the scaffold parameters. Blank inputs stay zero and
// the backend derives them.
func (b *Builder) buildParams() *models.Params {
	p := &models.Params{
		Redundancy:  b.redundancy,
		CoolingType: b.cooling,
		Containment: b.containment,
	}

	if v, err := strconv.Atoi(strings.TrimSpace(b.hallCount)); err == nil {
		p.HallCount = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(b.totalRacks)); err == nil {
		p.TotalRacks = v
	}
	if v, ok := parseFloat(b.criticalMW); ok {
		p.CriticalLoadMW = v
	}
	if v, ok := parseFloat(b.density); ok {
		p.RackDensityKW = v
	}
	if v, ok := parseFloat(b.pue); ok {
		p.TargetPUE = v
	}
	if v, ok := parseFloat(b.ratio); ok {
		p.WhitespaceRatio = v
	}
	if v, ok := parseFloat(b.area); ok {
		p.WhitespaceAreaSqFt = v
	}

	return p
}

// SetWidth sets the wizard width for proper rendering
func (b *Builder) SetWidth(width int) {
	b.width = width
}

// View implements tea.Model
func (b *Builder) View() string {
	var sb strings.Builder

	sb.WriteString(renderProgress(builderSteps, b.step, b.width))
	sb.WriteString("\n\n")
	sb.WriteString(b.form.View())

	return sb.String()
}
