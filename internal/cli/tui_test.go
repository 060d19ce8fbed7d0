package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

func TestNewFamilyListModel(t *testing.T) {
	m := NewFamilyListModel()

	if len(m.Families) != len(build.Families()) {
		t.Fatalf("model has %d families, want %d", len(m.Families), len(build.Families()))
	}
	for _, f := range m.Families {
		if f.Summary == "" {
			t.Errorf("family %q has no summary", f.Name)
		}
	}
	if m.Cursor != 0 || m.Selected != "" {
		t.Errorf("fresh model should start unselected at the top, got cursor %d selected %q", m.Cursor, m.Selected)
	}
}

func TestFamilyListNavigation(t *testing.T) {
	m := NewFamilyListModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(FamilyListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(FamilyListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays in place
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(FamilyListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor should not move above the first entry, got %d", m.Cursor)
	}
}

func TestFamilyListSelect(t *testing.T) {
	m := NewFamilyListModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(FamilyListModel)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(FamilyListModel)

	if m.Selected != m.Families[1].Name {
		t.Errorf("Selected = %q, want %q", m.Selected, m.Families[1].Name)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestFamilyListQuitWithoutSelection(t *testing.T) {
	m := NewFamilyListModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(FamilyListModel)

	if m.Selected != "" {
		t.Errorf("quit should leave nothing selected, got %q", m.Selected)
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestFamilyListView(t *testing.T) {
	m := NewFamilyListModel()
	view := m.View()

	for _, name := range build.Families() {
		if !strings.Contains(view, name) {
			t.Errorf("view should list family %q", name)
		}
	}
}
