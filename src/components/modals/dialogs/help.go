// help.go - Contains HelpModal for displaying help or info content in a modal dialog in the Bubble Tea UI.

package dialogs

import (
	"docchat/src/components/modals"
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal is a reusable modal for displaying help or info content.
type HelpModal struct {
	modals.BaseModal
	Title   string
	Content string // The help/info text to display
}

func NewHelpModal(title, content string, closeSelf modals.CloseSelfFunc) *HelpModal {
	return &HelpModal{
		BaseModal: modals.BaseModal{CloseSelf: closeSelf},
		Title:     title,
		Content:   content,
	}
}

// Update closes the modal on esc, enter or q.
func (m *HelpModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		types.Dispatch(m.GetControlSets(), key.String())
	}
	return m, nil
}

// View renders the help/info modal UI, centered in the stored region.
func (m *HelpModal) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title)
	return m.Place(modals.BoxStyle.Render(title + "\n\n" + m.Content))
}

func (m *HelpModal) GetControlSets() []types.ControlSet {
	closeFn := func() bool { m.Close(); return true }
	return []types.ControlSet{{Controls: []types.ControlType{
		{Name: "close", Key: "esc", Action: closeFn},
		{Name: "", Key: "enter", Action: closeFn},
		{Name: "", Key: "q", Action: closeFn},
	}}}
}

func (m *HelpModal) ViewType() types.ViewType { return types.ModalStateType }
