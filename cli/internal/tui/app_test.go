// ABOUTME: Integration tests for TUI app
// ABOUTME: Tests component wiring and state transitions

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/client"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/filepicker"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/menu"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/recentfiles"
	"github.com/lordSauron1710/dc-simulator-sub000/cli/internal/tui/wizard"
)

func testDash() *models.DashboardResponse {
	return &models.DashboardResponse{
		HasCampus:  true,
		CampusID:   "campus-1",
		CampusName: "Sunrise Campus",
		Params: models.Params{
			RackDensityKW: 12,
			TargetPUE:     1.4,
		},
		Totals: models.CampusTotals{
			ZoneCount:       2,
			HallCount:       4,
			RackCount:       480,
			RackCapacity:    640,
			UtilizationPct:  75,
			CriticalITMW:    5.76,
			TotalFacilityMW: 8.06,
		},
		Mix: models.ProfileMix{
			DominantRedundancy:  "N+1",
			DominantCoolingType: "Air-Cooled",
			DominantContainment: "Hot Aisle",
		},
		Valid: true,
	}
}

func testCampusModel() *models.CampusModel {
	return &models.CampusModel{
		CampusID: "campus-1",
		Name:     "Sunrise Campus",
		Explorer: models.ExplorerNode{
			ID:   "campus-1",
			Kind: "campus",
			Name: "Sunrise Campus",
			Children: []models.ExplorerNode{
				{ID: "zone-1", Kind: "zone", Name: "Zone A", Index: 1, RackCount: 240},
				{ID: "zone-2", Kind: "zone", Name: "Zone B", Index: 2, RackCount: 240},
			},
		},
		Specs: map[string]models.SpecsSummary{
			"campus-1": {ID: "campus-1", Kind: "campus", Name: "Sunrise Campus", RackCount: 480},
		},
	}
}

// loadedApp returns an app sized and populated as if a campus load completed
func loadedApp(t *testing.T) *App {
	t.Helper()
	app := New(client.New("http://localhost:8080"), false, true, "")
	app.recentFiles = recentfiles.New(t.TempDir())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(*App)

	model, _ = app.Update(campusLoadedMsg{dash: testDash(), model: testCampusModel()})
	return model.(*App)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAppInitialState(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")

	if app.screen != ScreenMenu {
		t.Errorf("expected initial screen to be ScreenMenu, got %d", app.screen)
	}
	if app.menu == nil {
		t.Error("expected menu to be initialized")
	}
	if app.loading {
		t.Error("expected loading to start false")
	}
}

func TestScreenConstants(t *testing.T) {
	// Verify screen constants are defined correctly
	if ScreenMenu != 0 {
		t.Errorf("expected ScreenMenu to be 0, got %d", ScreenMenu)
	}
	if ScreenFilePicker != 1 {
		t.Errorf("expected ScreenFilePicker to be 1, got %d", ScreenFilePicker)
	}
	if ScreenMain != 2 {
		t.Errorf("expected ScreenMain to be 2, got %d", ScreenMain)
	}
	if ScreenWhatIf != 3 {
		t.Errorf("expected ScreenWhatIf to be 3, got %d", ScreenWhatIf)
	}
	if ScreenBuilder != 4 {
		t.Errorf("expected ScreenBuilder to be 4, got %d", ScreenBuilder)
	}
	if ScreenComparison != 5 {
		t.Errorf("expected ScreenComparison to be 5, got %d", ScreenComparison)
	}
}

func TestAppCampusLoadedMsg(t *testing.T) {
	app := loadedApp(t)

	if app.screen != ScreenMain {
		t.Errorf("expected screen to be ScreenMain after campus loaded, got %d", app.screen)
	}
	if app.dash == nil || app.model == nil {
		t.Error("expected dashboard response and campus model to be set")
	}
	if app.dashboard == nil {
		t.Error("expected dashboard component to be created")
	}
	if app.explorer == nil {
		t.Error("expected explorer component to be created")
	}
	if !app.serverHasCampus {
		t.Error("expected serverHasCampus after a successful load")
	}
	if app.lastUpdate.IsZero() {
		t.Error("expected lastUpdate to be set")
	}
	if app.loading {
		t.Error("expected loading to clear after campus loaded")
	}
}

func TestAppCampusLoadedError(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.screen = ScreenMain
	app.loading = true

	model, _ := app.Update(campusLoadedMsg{err: errors.New("connection refused")})
	app = model.(*App)

	if app.err == nil {
		t.Error("expected error to be recorded")
	}
	if app.loading {
		t.Error("expected loading to clear on error")
	}

	view := app.View()
	if !strings.Contains(view, "connection refused") {
		t.Error("expected error message in main view")
	}
}

func TestAppWhatIfComparedMsg(t *testing.T) {
	app := loadedApp(t)

	result := &models.WhatIfComparison{
		Changed:  true,
		Current:  models.WhatIfSummary{RackCount: 480},
		Proposed: models.WhatIfSummary{RackCount: 360},
	}

	model, _ := app.Update(whatIfComparedMsg{result: result})
	app = model.(*App)

	if app.screen != ScreenComparison {
		t.Errorf("expected screen to be ScreenComparison, got %d", app.screen)
	}
	if app.comparison != result {
		t.Error("expected comparison result to be set")
	}
	if app.compView == nil {
		t.Error("expected comparison view to be created")
	}
}

func TestAppWhatIfComparedError(t *testing.T) {
	app := loadedApp(t)
	app.loading = true

	model, _ := app.Update(whatIfComparedMsg{err: errors.New("scope not found")})
	app = model.(*App)

	if app.screen != ScreenMain {
		t.Errorf("expected error to land on ScreenMain, got %d", app.screen)
	}
	if app.err == nil {
		t.Error("expected error to be recorded")
	}
	if app.loading {
		t.Error("expected loading to clear on error")
	}
}

func TestAppViewReturnsContent(t *testing.T) {
	app := loadedApp(t)

	view := app.View()
	if !strings.Contains(view, "Campus Capacity Modeler") {
		t.Error("expected header to contain app title")
	}
	if !strings.Contains(view, "Sunrise Campus") {
		t.Error("expected header context to show campus name")
	}
	// Footer shows the what-if keybinding
	if !strings.Contains(view, "What-if") {
		t.Error("expected main view footer to contain 'What-if'")
	}

	app.screen = ScreenComparison
	view = app.View()
	if !strings.Contains(view, "Back") {
		t.Error("expected comparison footer to contain 'Back'")
	}
}

func TestTabTogglesFocus(t *testing.T) {
	app := loadedApp(t)

	if app.focus != 0 {
		t.Fatalf("expected initial focus on dashboard pane, got %d", app.focus)
	}

	model, _ := app.Update(keyMsg("tab"))
	app = model.(*App)
	if app.focus != 1 {
		t.Errorf("expected focus on explorer pane after tab, got %d", app.focus)
	}
	if !app.explorer.Focused() {
		t.Error("expected explorer to be focused")
	}

	model, _ = app.Update(keyMsg("tab"))
	app = model.(*App)
	if app.focus != 0 {
		t.Errorf("expected focus back on dashboard pane, got %d", app.focus)
	}
}

func TestMainRefreshSetsLoading(t *testing.T) {
	app := loadedApp(t)

	model, cmd := app.Update(keyMsg("r"))
	app = model.(*App)

	if !app.loading {
		t.Error("expected refresh to set loading")
	}
	if cmd == nil {
		t.Error("expected refresh to return a load command")
	}
}

func TestMainBackReturnsToMenu(t *testing.T) {
	app := loadedApp(t)

	model, _ := app.Update(keyMsg("b"))
	app = model.(*App)

	if app.screen != ScreenMenu {
		t.Errorf("expected ScreenMenu after back, got %d", app.screen)
	}
	if app.dashboard != nil || app.explorer != nil {
		t.Error("expected pane components to be cleared")
	}
	if app.menu == nil {
		t.Error("expected menu to be rebuilt")
	}
}

func TestWhatIfKeyOpensWizard(t *testing.T) {
	app := loadedApp(t)

	model, _ := app.Update(keyMsg("w"))
	app = model.(*App)

	if app.screen != ScreenWhatIf {
		t.Errorf("expected ScreenWhatIf, got %d", app.screen)
	}
	if app.whatIf == nil {
		t.Error("expected what-if wizard to be created")
	}

	model, _ = app.Update(wizard.WizardCancelledMsg{})
	app = model.(*App)
	if app.screen != ScreenMain {
		t.Errorf("expected cancel to return to ScreenMain, got %d", app.screen)
	}
	if app.whatIf != nil {
		t.Error("expected wizard to be cleared after cancel")
	}
}

func TestWhatIfKeyNeedsModel(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.screen = ScreenMain

	model, _ := app.Update(keyMsg("w"))
	app = model.(*App)

	if app.whatIf != nil {
		t.Error("expected no wizard without a loaded model")
	}
	if app.screen != ScreenMain {
		t.Errorf("expected to stay on ScreenMain, got %d", app.screen)
	}
}

func TestSourceSelectedFile(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.recentFiles = recentfiles.New(t.TempDir())

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceFile})
	app = model.(*App)

	if app.screen != ScreenFilePicker {
		t.Errorf("expected ScreenFilePicker, got %d", app.screen)
	}
	if app.filePicker == nil {
		t.Error("expected file picker to be created")
	}
}

func TestSourceSelectedNew(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceNew})
	app = model.(*App)

	if app.screen != ScreenBuilder {
		t.Errorf("expected ScreenBuilder, got %d", app.screen)
	}
	if app.builder == nil {
		t.Error("expected builder wizard to be created")
	}
}

func TestSourceSelectedServerSetsLoading(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, true, "")

	model, cmd := app.Update(menu.SourceSelectedMsg{Source: menu.SourceServer})
	app = model.(*App)

	if app.screen != ScreenMain {
		t.Errorf("expected ScreenMain, got %d", app.screen)
	}
	if !app.loading {
		t.Error("expected loading while the server campus is fetched")
	}
	if cmd == nil {
		t.Error("expected a fetch command")
	}
}

func TestFilePickerCancelled(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.recentFiles = recentfiles.New(t.TempDir())

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceFile})
	app = model.(*App)

	model, _ = app.Update(filepicker.CancelledMsg{})
	app = model.(*App)

	if app.screen != ScreenMenu {
		t.Errorf("expected ScreenMenu after cancel, got %d", app.screen)
	}
	if app.filePicker != nil {
		t.Error("expected file picker to be cleared")
	}
}

func TestBuilderCancelledWithoutCampus(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceNew})
	app = model.(*App)

	model, _ = app.Update(wizard.BuilderCancelledMsg{})
	app = model.(*App)

	if app.screen != ScreenMenu {
		t.Errorf("expected ScreenMenu when no campus is loaded, got %d", app.screen)
	}
	if app.builder != nil {
		t.Error("expected builder to be cleared")
	}
}

func TestBuilderCancelledWithCampus(t *testing.T) {
	app := loadedApp(t)
	app.builder = wizard.NewBuilder()
	app.screen = ScreenBuilder

	model, _ := app.Update(wizard.BuilderCancelledMsg{})
	app = model.(*App)

	if app.screen != ScreenMain {
		t.Errorf("expected ScreenMain when a campus is loaded, got %d", app.screen)
	}
}

func TestMenuCancelQuits(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")

	_, cmd := app.Update(menu.CancelledMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected command to produce tea.QuitMsg")
	}
}

func TestFileSelectedDecodeError(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.recentFiles = recentfiles.New(t.TempDir())

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceFile})
	app = model.(*App)

	model, cmd := app.Update(filepicker.FileSelectedMsg{Path: "bad.json", Data: []byte("{not json")})
	app = model.(*App)

	if cmd != nil {
		t.Error("expected no push command for an invalid document")
	}
	if app.screen != ScreenFilePicker {
		t.Errorf("expected to stay on ScreenFilePicker, got %d", app.screen)
	}
	if !strings.Contains(app.filePicker.View(), "Invalid campus document") {
		t.Error("expected decode error to surface in the picker")
	}
}

func TestFileSelectedPushesCampus(t *testing.T) {
	c := client.New("http://localhost:8080")
	app := New(c, false, false, "")
	app.recentFiles = recentfiles.New(t.TempDir())

	model, _ := app.Update(menu.SourceSelectedMsg{Source: menu.SourceFile})
	app = model.(*App)

	data := []byte(`{"id": "campus-1", "name": "Sunrise Campus"}`)
	model, cmd := app.Update(filepicker.FileSelectedMsg{Path: "campus.json", Data: data})
	app = model.(*App)

	if app.screen != ScreenMain {
		t.Errorf("expected ScreenMain while pushing, got %d", app.screen)
	}
	if !app.loading {
		t.Error("expected loading during push")
	}
	if app.filePicker != nil {
		t.Error("expected file picker to be cleared")
	}
	if cmd == nil {
		t.Error("expected a push command")
	}
	if files := app.recentFiles.List(); len(files) != 1 || files[0] != "campus.json" {
		t.Errorf("expected campus.json in recent files, got %v", files)
	}
}

func TestFormatTimeSince(t *testing.T) {
	app := New(client.New("http://localhost:8080"), false, false, "")

	tests := []struct {
		name     string
		since    time.Duration
		expected string
	}{
		{"just now", 2 * time.Second, "just now"},
		{"seconds", 30 * time.Second, "30s ago"},
		{"one minute", 65 * time.Second, "1m ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"one hour", 61 * time.Minute, "1h ago"},
		{"hours", 3 * time.Hour, "3h ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := app.formatTimeSince(time.Now().Add(-tc.since))
			if got != tc.expected {
				t.Errorf("formatTimeSince(%v) = %q, want %q", tc.since, got, tc.expected)
			}
		})
	}
}
