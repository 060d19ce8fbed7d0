package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FamilyListModel - Interactive family selection
// =============================================================================

// familyEntry is one selectable family with its display summary.
type familyEntry struct {
	Name    string
	Summary string
}

// FamilyListModel is the bubbletea model for interactive family selection.
type FamilyListModel struct {
	Families []familyEntry
	Cursor   int
	Selected string
}

// NewFamilyListModel creates a family list model covering every registered
// diagram family.
func NewFamilyListModel() FamilyListModel {
	names := build.Families()
	entries := make([]familyEntry, 0, len(names))
	for _, name := range names {
		summary := ""
		if d, err := build.New(name); err == nil {
			summary = fmt.Sprintf("%d nodes, %d arcs", d.NodeCount(), d.ArcCount())
		}
		entries = append(entries, familyEntry{Name: name, Summary: summary})
	}
	return FamilyListModel{Families: entries}
}

func (m FamilyListModel) Init() tea.Cmd {
	return nil
}

func (m FamilyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Families)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Families[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FamilyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Family"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, f := range m.Families {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-12s  %s", cursor, f.Name, f.Summary)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Families))))

	return b.String()
}

// pickFamily runs the interactive family picker and returns the chosen
// family name, or "" when the user quit without selecting.
func pickFamily() (string, error) {
	p := tea.NewProgram(NewFamilyListModel())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(FamilyListModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}
