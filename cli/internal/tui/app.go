// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/campusfile"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/comparison"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/dashboard"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/debuglog"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/explorer"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/filepicker"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/icons"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/menu"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/recentfiles"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/samples"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/styles"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenFilePicker
	ScreenMain
	ScreenWhatIf
	ScreenBuilder
	ScreenComparison
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// campusLoadedMsg is sent when the campus model has been (re)fetched
type campusLoadedMsg struct {
	dash  *models.DashboardResponse
	model *models.CampusModel
	err   error
}

// whatIfComparedMsg is sent when a what-if comparison completes
type whatIfComparedMsg struct {
	result *models.WhatIfComparison
	err    error
}

// App is the root model for the TUI
type App struct {
	client            *client.Client
	screen            Screen
	width             int
	height            int
	err               error
	loading           bool
	spin              spinner.Model
	focus             int // 0 = dashboard pane, 1 = explorer pane
	dash              *models.DashboardResponse
	model             *models.CampusModel
	comparison        *models.WhatIfComparison
	vsphereConfigured bool
	serverHasCampus   bool
	basePath          string
	sampleFiles       []samples.SampleFile
	lastUpdate        time.Time

	// Child models
	menu       *menu.Menu
	filePicker *filepicker.FilePicker
	dashboard  *dashboard.Dashboard
	explorer   *explorer.Explorer
	compView   *comparison.Comparison
	whatIf     *wizard.WhatIf
	builder    *wizard.Builder

	// Recent files manager
	recentFiles *recentfiles.RecentFiles
}

// New creates a new TUI application
func New(apiClient *client.Client, vsphereConfigured, serverHasCampus bool, basePath string) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	sampleFiles, _ := samples.Discover(samples.FindSamplesDir(basePath))

	return &App{
		client:            apiClient,
		screen:            ScreenMenu,
		spin:              sp,
		vsphereConfigured: vsphereConfigured,
		serverHasCampus:   serverHasCampus,
		basePath:          basePath,
		sampleFiles:       sampleFiles,
		recentFiles:       recentfiles.New(recentfiles.DefaultConfigDir()),
		menu:              menu.New(serverHasCampus, len(sampleFiles) > 0, vsphereConfigured),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Route to current screen
		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenFilePicker:
			return a.updateFilePicker(msg)
		case ScreenMain:
			return a.updateMain(msg)
		case ScreenWhatIf:
			return a.updateWhatIf(msg)
		case ScreenBuilder:
			return a.updateBuilder(msg)
		case ScreenComparison:
			return a.updateComparison(msg)
		}

	case menu.SourceSelectedMsg:
		return a.handleSourceSelected(msg)

	case menu.CancelledMsg:
		return a, tea.Quit

	case filepicker.FileSelectedMsg:
		return a.handleFileSelected(msg)

	case filepicker.CancelledMsg:
		a.filePicker = nil
		return a.returnToMenu()

	case wizard.WizardCompleteMsg:
		// Wizard finished, call backend to compare the scenario
		a.whatIf = nil
		a.screen = ScreenMain
		a.loading = true
		return a, tea.Batch(a.compareWhatIf(msg.Input), a.spin.Tick)

	case wizard.WizardCancelledMsg:
		a.whatIf = nil
		a.screen = ScreenMain
		return a, nil

	case wizard.BuilderCompleteMsg:
		a.builder = nil
		a.screen = ScreenMain
		a.loading = true
		return a, tea.Batch(a.createCampus(msg.Name, msg.Params), a.spin.Tick)

	case wizard.BuilderCancelledMsg:
		a.builder = nil
		if a.model != nil {
			a.screen = ScreenMain
			return a, nil
		}
		return a.returnToMenu()

	case campusLoadedMsg:
		return a.handleCampusLoaded(msg)

	case whatIfComparedMsg:
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			debuglog.Error("what-if compare", msg.err)
			a.screen = ScreenMain
			return a, nil
		}
		a.err = nil
		a.comparison = msg.result
		a.compView = comparison.New(a.comparison, a.comparisonWidth())
		a.screen = ScreenComparison
		return a, nil

	default:
		// huh forms emit internal messages that must reach the active form
		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenWhatIf:
			return a.updateWhatIf(msg)
		case ScreenBuilder:
			return a.updateBuilder(msg)
		}
	}

	return a, nil
}

func (a *App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	if a.dashboard != nil {
		a.dashboard.SetSize(a.dashboardWidth(), a.contentHeight())
	}
	if a.explorer != nil {
		a.explorer.SetSize(a.explorerWidth(), a.contentHeight())
	}
	if a.compView != nil {
		a.compView.SetSize(a.comparisonWidth())
	}
	// Forward to child models
	if a.menu != nil {
		a.menu.Update(msg)
	}
	if a.filePicker != nil {
		a.filePicker.Update(msg)
	}
	if a.whatIf != nil {
		a.whatIf.Update(msg)
	}
	if a.builder != nil {
		a.builder.Update(msg)
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateFilePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filePicker == nil {
		return a, nil
	}
	model, cmd := a.filePicker.Update(msg)
	a.filePicker = model.(*filepicker.FilePicker)
	return a, cmd
}

func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.loading = true
		return a, tea.Batch(a.loadCampus(), a.spin.Tick)
	case "w":
		if a.model != nil {
			return a, a.runWhatIf()
		}
	case "b":
		// Back to menu with a clean slate
		a.dashboard = nil
		a.explorer = nil
		a.dash = nil
		a.model = nil
		a.focus = 0
		return a.returnToMenu()
	case "tab":
		if a.explorer != nil {
			a.focus = 1 - a.focus
			a.explorer.SetFocused(a.focus == 1)
		}
	default:
		if a.focus == 1 && a.explorer != nil {
			a.explorer.Update(msg)
		}
	}
	return a, nil
}

func (a *App) updateWhatIf(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.whatIf == nil {
		return a, nil
	}
	model, cmd := a.whatIf.Update(msg)
	a.whatIf = model.(*wizard.WhatIf)
	return a, cmd
}

func (a *App) updateBuilder(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.builder == nil {
		return a, nil
	}
	model, cmd := a.builder.Update(msg)
	a.builder = model.(*wizard.Builder)
	return a, cmd
}

func (a *App) updateComparison(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc", "enter":
		a.comparison = nil
		a.compView = nil
		a.screen = ScreenMain
		return a, nil
	case "w":
		if a.model != nil {
			a.comparison = nil
			a.compView = nil
			return a, a.runWhatIf()
		}
	}
	return a, nil
}

// returnToMenu rebuilds the menu so its form and option states are fresh
func (a *App) returnToMenu() (tea.Model, tea.Cmd) {
	a.menu = menu.New(a.serverHasCampus, len(a.sampleFiles) > 0, a.vsphereConfigured)
	a.screen = ScreenMenu
	a.err = nil
	a.loading = false
	return a, a.menu.Init()
}

func (a *App) handleSourceSelected(msg menu.SourceSelectedMsg) (tea.Model, tea.Cmd) {
	debuglog.Log("menu: selected %s source", msg.Source)

	switch msg.Source {
	case menu.SourceServer:
		a.screen = ScreenMain
		a.loading = true
		return a, tea.Batch(a.loadCampus(), a.spin.Tick)

	case menu.SourceFile, menu.SourceSample:
		recentList, _ := a.recentFiles.Load()
		a.filePicker = filepicker.New(recentList, a.sampleFiles)
		if msg.Source == menu.SourceSample {
			a.filePicker.ShowSamples()
		}
		a.screen = ScreenFilePicker
		return a, a.filePicker.Init()

	case menu.SourceNew:
		a.builder = wizard.NewBuilder()
		if a.width > 0 {
			a.builder.SetWidth(a.width)
		}
		a.screen = ScreenBuilder
		return a, a.builder.Init()

	case menu.SourceVSphere:
		a.screen = ScreenMain
		a.loading = true
		return a, tea.Batch(a.importVSphere(), a.spin.Tick)
	}

	return a, nil
}

func (a *App) handleFileSelected(msg filepicker.FileSelectedMsg) (tea.Model, tea.Cmd) {
	campus, err := campusfile.Decode(msg.Path, msg.Data)
	if err != nil {
		debuglog.Error("decode campus document", err)
		if a.filePicker != nil {
			a.filePicker.SetError("Invalid campus document: " + err.Error())
		}
		return a, nil
	}

	a.recentFiles.Add(msg.Path)
	a.filePicker = nil
	a.screen = ScreenMain
	a.loading = true
	return a, tea.Batch(a.pushCampus(campus), a.spin.Tick)
}

func (a *App) handleCampusLoaded(msg campusLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		a.err = msg.err
		debuglog.Error("load campus", msg.err)
		return a, nil
	}

	a.err = nil
	a.dash = msg.dash
	a.model = msg.model
	a.lastUpdate = time.Now()
	// Every load path lands the campus on the server first
	a.serverHasCampus = true

	if a.dashboard == nil {
		a.dashboard = dashboard.New(a.dash, a.dashboardWidth(), a.contentHeight())
	} else {
		a.dashboard.Update(a.dash)
	}
	if a.explorer == nil {
		a.explorer = explorer.New(a.model, a.explorerWidth(), a.contentHeight())
		a.explorer.SetFocused(a.focus == 1)
	} else {
		a.explorer.SetModel(a.model)
	}

	a.screen = ScreenMain
	return a, nil
}

// runWhatIf transitions to the what-if wizard screen
func (a *App) runWhatIf() tea.Cmd {
	a.whatIf = wizard.New(a.model)
	if a.width > 0 {
		a.whatIf.SetWidth(a.width)
	}
	a.screen = ScreenWhatIf
	return a.whatIf.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenMenu:
		content = a.viewMenu()
	case ScreenFilePicker:
		content = a.viewFilePicker()
	case ScreenMain:
		content = a.viewMain()
	case ScreenWhatIf:
		content = a.viewWhatIf()
	case ScreenBuilder:
		content = a.viewBuilder()
	case ScreenComparison:
		content = a.viewComparison()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	if a.menu != nil {
		return a.menu.View()
	}
	return ""
}

func (a *App) viewFilePicker() string {
	if a.filePicker != nil {
		return a.filePicker.View()
	}
	return ""
}

// viewMain renders the dashboard pane alongside the explorer pane
func (a *App) viewMain() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Help.Render("r retry · b back to menu · q quit")
	}

	var left string
	if a.dashboard != nil {
		left = a.paneStyle(a.focus == 0).Width(a.dashboardWidth()).Render(a.dashboard.View())
	} else {
		left = styles.Panel.Width(a.dashboardWidth()).Render(a.spin.View() + " Loading campus model...")
	}

	var right string
	if a.explorer != nil {
		right = a.paneStyle(a.focus == 1).Width(a.explorerWidth()).Render(a.explorer.View())
	} else {
		right = styles.Panel.Width(a.explorerWidth()).Render("")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a *App) viewWhatIf() string {
	if a.whatIf != nil {
		return a.whatIf.View()
	}
	return ""
}

func (a *App) viewBuilder() string {
	if a.builder != nil {
		return a.builder.View()
	}
	return ""
}

// viewComparison renders the dashboard with comparison results
func (a *App) viewComparison() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}

	leftPane := ""
	if a.dashboard != nil {
		leftPane = styles.Panel.Width(a.dashboardWidth()).Render(a.dashboard.View())
	}

	rightPane := ""
	if a.compView != nil {
		rightPane = styles.ActivePanel.Width(a.comparisonWidth()).Render(a.compView.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

func (a *App) paneStyle(active bool) lipgloss.Style {
	if active {
		return styles.ActivePanel
	}
	return styles.Panel
}

// dashboardWidth calculates the width for the dashboard pane
func (a *App) dashboardWidth() int {
	if a.width < minTerminalWidth {
		return a.width - panelPadding
	}
	return (a.width - panelPadding) / 2
}

// explorerWidth calculates the width for the explorer pane
func (a *App) explorerWidth() int {
	return a.width - a.dashboardWidth() - 4
}

// comparisonWidth calculates the width for the comparison pane
func (a *App) comparisonWidth() int {
	return a.width - a.dashboardWidth() - 4
}

// contentHeight calculates the height available for pane content
func (a *App) contentHeight() int {
	// Total overhead:
	// - Header: 1 line
	// - Newline after header: 1 line
	// - ActivePanel border+padding: 4 lines (top border, top padding, bottom padding, bottom border)
	// - Newline before footer: 1 line
	// - Footer: 1 line
	// Total: 8 lines overhead
	return a.height - 8
}

// frameWidth is the rendered width of the header and footer rules.
// width-1 prevents wrapping on terminals that reserve the last column,
// clamped to a usable minimum.
func (a *App) frameWidth() int {
	w := a.width - 1
	if w < minTerminalWidth {
		w = minTerminalWidth
	}
	return w
}

// campusName extracts a display name for the loaded campus
func (a *App) campusName() string {
	if a.dash != nil && a.dash.CampusName != "" {
		return a.dash.CampusName
	}
	if a.model != nil {
		return a.model.Name
	}
	return ""
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Campus Capacity Modeler"))

	rightText := ""
	if name := a.campusName(); name != "" && a.screen != ScreenMenu && a.screen != ScreenFilePicker {
		rightText = contextStyle.Render(name) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	// Build keyboard shortcuts based on current screen
	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenFilePicker:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "Esc Back"}
	case ScreenMain:
		shortcuts = []string{"Tab Pane", "r Refresh", "w What-if", "b Back", "q Quit"}
	case ScreenWhatIf, ScreenBuilder:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenComparison:
		shortcuts = []string{"w New what-if", "b Back", "q Quit"}
	}

	// Build styled shortcuts
	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")

	// Right side status: spinner while loading, last update time otherwise
	rightText := ""
	if a.loading {
		rightText = a.spin.View() + statusStyle.Render(" Loading") + " "
	} else if !a.lastUpdate.IsZero() && (a.screen == ScreenMain || a.screen == ScreenComparison) {
		rightText = statusStyle.Render("Updated "+a.formatTimeSince(a.lastUpdate)) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// fetchModel pulls the dashboard and the full campus model from the backend
func (a *App) fetchModel(ctx context.Context) tea.Msg {
	dash, err := a.client.Dashboard(ctx)
	if err != nil {
		return campusLoadedMsg{err: err}
	}
	model, err := a.client.GetModel(ctx)
	if err != nil {
		return campusLoadedMsg{err: err}
	}
	return campusLoadedMsg{dash: dash, model: model}
}

// loadCampus creates a command that fetches the server campus model
func (a *App) loadCampus() tea.Cmd {
	return func() tea.Msg {
		return a.fetchModel(context.Background())
	}
}

// pushCampus sends a campus document to the backend, then fetches its model
func (a *App) pushCampus(campus *models.Campus) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := a.client.SetCampus(ctx, campus); err != nil {
			return campusLoadedMsg{err: err}
		}
		return a.fetchModel(ctx)
	}
}

// createCampus asks the backend to derive a fresh campus from the wizard params
func (a *App) createCampus(name string, params *models.Params) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := a.client.NewCampus(ctx, name, params); err != nil {
			return campusLoadedMsg{err: err}
		}
		return a.fetchModel(ctx)
	}
}

// importVSphere imports rack inventory from vSphere, then fetches the model
func (a *App) importVSphere() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := a.client.ImportVSphere(ctx); err != nil {
			return campusLoadedMsg{err: err}
		}
		return a.fetchModel(ctx)
	}
}

// compareWhatIf calls the backend to compare the what-if scenario
func (a *App) compareWhatIf(input *models.WhatIfInput) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.CompareScenario(context.Background(), input)
		return whatIfComparedMsg{result: result, err: err}
	}
}

// Run starts the TUI
func Run(apiClient *client.Client, vsphereConfigured, serverHasCampus bool) error {
	debuglog.Init(recentfiles.DefaultConfigDir())
	defer debuglog.Close()

	basePath := findBasePath()
	debuglog.Log("tui: starting api=%s vsphere=%v server_campus=%v base=%q",
		apiClient.BaseURL(), vsphereConfigured, serverHasCampus, basePath)

	app := New(apiClient, vsphereConfigured, serverHasCampus, basePath)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// findBasePath locates the directory holding the bundled sample documents
func findBasePath() string {
	if cwd, err := os.Getwd(); err == nil {
		if _, err := os.Stat(filepath.Join(cwd, "samples")); err == nil {
			return cwd
		}
	}

	// Fall back to empty (will rely on CAMPUS_SAMPLES_PATH env var)
	return ""
}
