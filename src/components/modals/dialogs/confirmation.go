// confirmation.go - Contains the ConfirmationModal for displaying confirmation dialogs with 1-3 options in the Bubble Tea UI.
// Update logic supports left/right navigation, enter to select, esc to close/cancel.

package dialogs

import (
	"fmt"

	"docchat/src/components/modals"
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModal is a reusable modal for confirmation dialogs (1-3 options).
type ConfirmationModal struct {
	modals.BaseModal
	pending tea.Cmd
}

// NewConfirmationModal creates a new ConfirmationModal with the given message, options, and closeSelf callback.
func NewConfirmationModal(message string, options []modals.ModalOption, closeSelf modals.CloseSelfFunc) (*ConfirmationModal, error) {
	if len(options) < 1 || len(options) > 3 {
		return nil, fmt.Errorf("confirmation modal needs 1-3 options, got %d", len(options))
	}
	return &ConfirmationModal{
		BaseModal: modals.BaseModal{
			Message:      message,
			Options:      options,
			CloseSelf:    closeSelf,
			RegionWidth:  60,
			RegionHeight: 10,
		},
	}, nil
}

// YesNo is the common two-option confirmation; "No" is preselected.
func YesNo(message string, onYes func() tea.Cmd, closeSelf modals.CloseSelfFunc) *ConfirmationModal {
	m, _ := NewConfirmationModal(message, []modals.ModalOption{
		{Label: "Yes", OnSelect: onYes},
		{Label: "No"},
	}, closeSelf)
	m.Selected = 1
	return m
}

func (m *ConfirmationModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.pending = nil
		types.Dispatch(m.GetControlSets(), key.String())
		return m, m.pending
	}
	return m, nil
}

func (m *ConfirmationModal) View() string {
	msg := lipgloss.NewStyle().Bold(true).Render(m.Message)
	var opts string
	for i, opt := range m.Options {
		style := lipgloss.NewStyle().Padding(0, 2)
		if i == m.Selected {
			style = modals.SelectedStyle.Padding(0, 2)
		}
		opts += style.Render(opt.Label)
	}
	box := modals.BoxStyle.Align(lipgloss.Center).Render(msg + "\n\n" + opts)
	return m.Place(box)
}

// --- ViewState interface ---
func (m *ConfirmationModal) GetControlSets() []types.ControlSet {
	return []types.ControlSet{
		{
			Controls: []types.ControlType{
				{Name: "choose", Key: "left", Action: types.MenuUp(&m.Selected, len(m.Options))},
				{Name: "", Key: "right", Action: types.MenuDown(&m.Selected, len(m.Options))},
				{Name: "", Key: "tab", Action: types.MenuDown(&m.Selected, len(m.Options))},
				{Name: "confirm", Key: "enter", Action: func() bool {
					m.pending = m.Choose()
					return true
				}},
				{Name: "cancel", Key: "esc", Action: func() bool {
					m.Close()
					return true
				}},
			},
		},
	}
}

func (m *ConfirmationModal) ViewType() types.ViewType { return types.ModalStateType }
