// ABOUTME: Campus source selection menu for TUI startup
// ABOUTME: Lets the user pick server campus, document, sample, wizard, or vSphere

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Source represents the selected campus source
type Source int

const (
	SourceServer Source = iota
	SourceFile
	SourceSample
	SourceNew
	SourceVSphere
)

// SourceSelectedMsg is sent when the user picks an enabled source
type SourceSelectedMsg struct {
	Source Source
}

// CancelledMsg is sent when the user backs out of the menu
type CancelledMsg struct{}

type option struct {
	label   string
	value   Source
	enabled bool
	note    string // shown when disabled, e.g. "not configured"
}

// Menu represents the campus source selection menu
type Menu struct {
	options  []option
	selected Source
	form     *huh.Form
	err      string
	width    int
}

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// New creates a new campus source menu. Options the environment cannot serve
// stay visible but disabled, with the reason in parentheses.
func New(serverHasCampus, hasSamples, vsphereConfigured bool) *Menu {
	m := &Menu{
		options: []option{
			{label: "View server campus", value: SourceServer, enabled: serverHasCampus, note: "none loaded"},
			{label: "Load campus document", value: SourceFile, enabled: true},
			{label: "Load sample campus", value: SourceSample, enabled: hasSamples, note: "none found"},
			{label: "New campus wizard", value: SourceNew, enabled: true},
			{label: "Import from vSphere", value: SourceVSphere, enabled: vsphereConfigured, note: "not configured"},
		},
		selected: SourceFile,
	}
	if serverHasCampus {
		m.selected = SourceServer
	}

	m.form = m.buildForm()
	return m
}

func (m *Menu) buildForm() *huh.Form {
	var opts []huh.Option[Source]
	for _, opt := range m.options {
		label := opt.label
		if !opt.enabled {
			label = fmt.Sprintf("%s (%s)", label, opt.note)
		}
		opts = append(opts, huh.NewOption(label, opt.value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Source]().
				Title("Where should the campus come from?").
				Options(opts...).
				Value(&m.selected),
		),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.complete()
	}

	return m, cmd
}

// complete validates the finished form. Picking a disabled option re-arms the
// form with an explanation instead of dispatching.
func (m *Menu) complete() (tea.Model, tea.Cmd) {
	for _, opt := range m.options {
		if opt.value == m.selected && !opt.enabled {
			m.err = fmt.Sprintf("%s: %s", opt.label, opt.note)
			m.form = m.buildForm()
			return m, m.form.Init()
		}
	}

	selected := m.selected
	return m, func() tea.Msg { return SourceSelectedMsg{Source: selected} }
}

// View implements tea.Model
func (m *Menu) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err))
	}
	return b.String()
}

// String returns the string representation of a Source
func (s Source) String() string {
	switch s {
	case SourceServer:
		return "server"
	case SourceFile:
		return "file"
	case SourceSample:
		return "sample"
	case SourceNew:
		return "new"
	case SourceVSphere:
		return "vsphere"
	default:
		return "unknown"
	}
}
