// ABOUTME: What-if wizard collecting scope, rack profile, and site patches
// ABOUTME: Three huh forms chained with the shared progress indicator

package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// WizardCompleteMsg is sent when the what-if wizard finishes successfully
type WizardCompleteMsg struct {
	Input *models.WhatIfInput
}

// WizardCancelledMsg is sent when the what-if wizard is cancelled
type WizardCancelledMsg struct{}

// WhatIf manages the what-if wizard flow as a bubbletea model
type WhatIf struct {
	model *models.CampusModel
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh)
	scope       string
	density     string
	redundancy  string
	cooling     string
	containment string
	pue         string
	ratio       string
}

var whatIfSteps = []string{"Scope", "Rack Profile", "Site Properties"}

// New creates a what-if wizard over the current model. Every field starts as
// "keep current" so an untouched run resolves to a no-op.
func New(model *models.CampusModel) *WhatIf {
	w := &WhatIf{
		model: model,
		step:  1,
		scope: "campus",
	}
	w.form = w.createScopeForm()
	return w
}

// scopeOptions lists the campus plus every zone and hall of the model
func (w *WhatIf) scopeOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("Whole campus", "campus")}
	if w.model == nil {
		return opts
	}
	for _, z := range w.model.Zones {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Zone: %s", z.Name), "zone:"+z.ID))
	}
	for _, h := range w.model.Halls {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Hall: %s", h.Name), "hall:"+h.ID))
	}
	return opts
}

func (w *WhatIf) createScopeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Patch scope").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(w.scopeOptions()...).
				Value(&w.scope),
		).Title("Step 1: Scope").
			Description("Which part of the campus should the changes apply to?"),
	).WithTheme(createTheme())
}

func (w *WhatIf) createProfileForm() *huh.Form {
	densities := append([]huh.Option[string]{huh.NewOption("Keep current", "")}, densityOptions...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Rack density").
				Description("Per-rack power draw").
				Options(densities...).
				Value(&w.density),
			huh.NewSelect[string]().
				Title("Redundancy").
				Options(redundancyOptions("Keep current")...).
				Value(&w.redundancy),
			huh.NewSelect[string]().
				Title("Cooling").
				Options(coolingOptions("Keep current")...).
				Value(&w.cooling),
			huh.NewSelect[string]().
				Title("Containment").
				Options(containmentOptions("Keep current")...).
				Value(&w.containment),
		).Title("Step 2: Rack Profile").
			Description("Overrides for the halls in scope; untouched fields keep their value"),
	).WithTheme(createTheme())
}

func (w *WhatIf) createPropertiesForm() *huh.Form {
	puePlaceholder := "e.g., 1.40"
	ratioPlaceholder := "e.g., 0.45"
	if w.model != nil {
		puePlaceholder = fmt.Sprintf("current %.2f", w.model.Params.TargetPUE)
		ratioPlaceholder = fmt.Sprintf("current %.2f", w.model.Params.WhitespaceRatio)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target PUE").
				Description("Leave blank to keep the current value").
				Placeholder(puePlaceholder).
				CharLimit(6).
				Value(&w.pue).
				Validate(validateRange(models.CampusLimits.TargetPUE, true)),
			huh.NewInput().
				Title("Whitespace ratio").
				Description("Leave blank to keep the current value").
				Placeholder(ratioPlaceholder).
				CharLimit(6).
				Value(&w.ratio).
				Validate(validateRange(models.CampusLimits.WhitespaceRatio, true)),
		).Title("Step 3: Site Properties").
			Description("Campus-wide efficiency and floor plan knobs"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *WhatIf) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *WhatIf) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *WhatIf) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createProfileForm()
		return w, w.form.Init()

	case 2:
		w.step = 3
		w.form = w.createPropertiesForm()
		return w, w.form.Init()

	case 3:
		input := w.buildInput()
		return w, func() tea.Msg {
			return WizardCompleteMsg{Input: input}
		}
	}

	return w, nil
}

// buildInput assembles the patch set. Fields left at "keep current" stay nil
// so the backend sees exactly what changed.
func (w *WhatIf) buildInput() *models.WhatIfInput {
	input := &models.WhatIfInput{Scope: w.parseScope()}

	profile := &models.RackProfilePatch{}
	hasProfile := false
	if v, ok := parseFloat(w.density); ok {
		profile.RackDensityKW = &v
		hasProfile = true
	}
	if w.redundancy != "" {
		r := w.redundancy
		profile.Redundancy = &r
		hasProfile = true
	}
	if w.cooling != "" {
		c := w.cooling
		profile.CoolingType = &c
		hasProfile = true
	}
	if w.containment != "" {
		c := w.containment
		profile.Containment = &c
		hasProfile = true
	}
	if hasProfile {
		input.Profile = profile
	}

	props := &models.PropertyPatch{}
	hasProps := false
	if v, ok := parseFloat(w.pue); ok {
		props.TargetPUE = &v
		hasProps = true
	}
	if v, ok := parseFloat(w.ratio); ok {
		props.WhitespaceRatio = &v
		hasProps = true
	}
	if hasProps {
		input.Properties = props
	}

	return input
}

// parseScope decodes the select value back into a patch scope. Hall scopes
// carry their zone id so the backend can verify the pair.
func (w *WhatIf) parseScope() models.PatchScope {
	switch {
	case strings.HasPrefix(w.scope, "zone:"):
		return models.PatchScope{
			Level:  models.ScopeZone,
			ZoneID: strings.TrimPrefix(w.scope, "zone:"),
		}
	case strings.HasPrefix(w.scope, "hall:"):
		id := strings.TrimPrefix(w.scope, "hall:")
		scope := models.PatchScope{Level: models.ScopeHall, HallID: id}
		if w.model != nil {
			for _, h := range w.model.Halls {
				if h.ID == id {
					scope.ZoneID = h.ZoneID
					break
				}
			}
		}
		return scope
	default:
		return models.PatchScope{Level: models.ScopeCampus}
	}
}

// SetWidth sets the wizard width for proper rendering
func (w *WhatIf) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *WhatIf) View() string {
	var sb strings.Builder

	sb.WriteString(renderProgress(whatIfSteps, w.step, w.width))
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}
