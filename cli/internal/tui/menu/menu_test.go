// ABOUTME: Tests for campus source selection menu
// ABOUTME: Validates option gating and selection behavior

package menu

import "testing"

func TestMenuOptions(t *testing.T) {
	m := New(true, true, true) // everything available

	if len(m.options) != 5 {
		t.Errorf("expected 5 options, got %d", len(m.options))
	}

	if m.options[0].label != "View server campus" {
		t.Errorf("expected first option 'View server campus', got %s", m.options[0].label)
	}
}

func TestMenuVSphereDisabled(t *testing.T) {
	m := New(true, true, false) // vSphere not configured

	if m.options[4].enabled {
		t.Error("expected vSphere option to be disabled when not configured")
	}
}

func TestMenuVSphereEnabled(t *testing.T) {
	m := New(true, true, true) // vSphere configured

	if !m.options[4].enabled {
		t.Error("expected vSphere option to be enabled when configured")
	}
}

func TestMenuSamplesDisabledWhenNoneFound(t *testing.T) {
	m := New(true, false, true)

	if m.options[2].enabled {
		t.Error("expected sample option to be disabled without samples")
	}
}

func TestMenuServerOptionFollowsHealth(t *testing.T) {
	m := New(false, true, true)

	if m.options[0].enabled {
		t.Error("expected server option to be disabled without a server campus")
	}
	if m.selected != SourceFile {
		t.Errorf("expected default selection to fall back to SourceFile, got %v", m.selected)
	}

	m = New(true, true, true)
	if m.selected != SourceServer {
		t.Errorf("expected default selection SourceServer, got %v", m.selected)
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source   Source
		expected string
	}{
		{SourceServer, "server"},
		{SourceFile, "file"},
		{SourceSample, "sample"},
		{SourceNew, "new"},
		{SourceVSphere, "vsphere"},
		{Source(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.source.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMenuDefaultOptions(t *testing.T) {
	m := New(false, false, false)

	// Document loading should always be enabled
	if !m.options[1].enabled {
		t.Error("expected file option to always be enabled")
	}

	// The new-campus wizard should always be enabled
	if !m.options[3].enabled {
		t.Error("expected wizard option to always be enabled")
	}
}

func TestCompleteDisabledSelectionReArmsForm(t *testing.T) {
	m := New(true, true, false)
	m.selected = SourceVSphere

	model, cmd := m.complete()
	updated := model.(*Menu)

	if updated.err == "" {
		t.Error("expected error message after selecting disabled option")
	}
	if cmd == nil {
		t.Error("expected re-armed form init command")
	}
}

func TestCompleteEnabledSelectionDispatches(t *testing.T) {
	m := New(true, true, true)
	m.selected = SourceSample

	_, cmd := m.complete()
	if cmd == nil {
		t.Fatal("expected dispatch command")
	}

	msg := cmd()
	selected, ok := msg.(SourceSelectedMsg)
	if !ok {
		t.Fatalf("expected SourceSelectedMsg, got %T", msg)
	}
	if selected.Source != SourceSample {
		t.Errorf("expected SourceSample, got %v", selected.Source)
	}
}
