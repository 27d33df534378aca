// menu.go - Contains MenuModal for displaying a menu with selectable options in a modal dialog in the Bubble Tea UI.

package dialogs

import (
	"strings"

	"docchat/src/components/modals"
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuEntry is one line of a MenuModal.
type MenuEntry struct {
	modals.ModalOption
	Description string
	Disabled    bool
}

// MenuModal is a reusable modal for displaying a menu with options.
type MenuModal struct {
	modals.BaseModal
	Title   string
	Entries []MenuEntry
	pending tea.Cmd
}

func NewMenuModal(title string, entries []MenuEntry, closeSelf modals.CloseSelfFunc) *MenuModal {
	opts := make([]modals.ModalOption, len(entries))
	for i, e := range entries {
		opts[i] = e.ModalOption
	}
	return &MenuModal{
		BaseModal: modals.BaseModal{Options: opts, CloseSelf: closeSelf},
		Title:     title,
		Entries:   entries,
	}
}

// Update handles up/down to navigate, enter to select, esc to close.
func (m *MenuModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.pending = nil
		types.Dispatch(m.GetControlSets(), key.String())
		return m, m.pending
	}
	return m, nil
}

// View renders the title above and the options vertically, with the selected option highlighted.
func (m *MenuModal) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title) + "\n\n")
	for i, e := range m.Entries {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		if e.Disabled {
			style = style.Foreground(lipgloss.Color("240")).Italic(true)
		}
		if i == m.Selected {
			style = style.Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
			b.WriteString(" > ")
		} else {
			b.WriteString("   ")
		}
		b.WriteString(style.Render(e.Label))
		if e.Description != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("  " + e.Description))
		}
		b.WriteString("\n")
	}
	return m.Place(modals.BoxStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func (m *MenuModal) GetControlSets() []types.ControlSet {
	return []types.ControlSet{{Controls: []types.ControlType{
		{Name: "navigate", Key: "up", Action: types.MenuUp(&m.Selected, len(m.Entries))},
		{Name: "", Key: "down", Action: types.MenuDown(&m.Selected, len(m.Entries))},
		{Name: "select", Key: "enter", Action: func() bool {
			if m.Selected < len(m.Entries) && m.Entries[m.Selected].Disabled {
				return true
			}
			m.pending = m.Choose()
			return true
		}},
		{Name: "back", Key: "esc", Action: func() bool { m.Close(); return true }},
	}}}
}

func (m *MenuModal) ViewType() types.ViewType { return types.ModalStateType }
