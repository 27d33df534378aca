// prompt.go - PromptModal asks for a single line of text (a file path, a page number).

package dialogs

import (
	"strings"

	"docchat/src/components/modals"
	"docchat/src/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SubmitFunc receives the entered text. A non-empty return value is shown as an error
// and keeps the prompt open.
type SubmitFunc func(value string) (tea.Cmd, string)

// PromptModal is a one-field input dialog.
type PromptModal struct {
	modals.BaseModal
	input    textinput.Model
	onSubmit SubmitFunc
	errText  string
	pending  tea.Cmd
}

func NewPromptModal(message, placeholder string, onSubmit SubmitFunc, closeSelf modals.CloseSelfFunc) *PromptModal {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Width = 48
	ti.Focus()
	return &PromptModal{
		BaseModal: modals.BaseModal{Message: message, CloseSelf: closeSelf},
		input:     ti,
		onSubmit:  onSubmit,
	}
}

// SetValue prefills the input.
func (m *PromptModal) SetValue(v string) {
	m.input.SetValue(v)
	m.input.CursorEnd()
}

func (m *PromptModal) Value() string { return m.input.Value() }

func (m *PromptModal) Err() string { return m.errText }

func (m *PromptModal) Update(msg tea.Msg) (types.ViewState, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.pending = nil
		if types.Dispatch(m.GetControlSets(), key.String()) {
			return m, m.pending
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PromptModal) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Message) + "\n\n")
	b.WriteString(m.input.View())
	if m.errText != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errText))
	}
	return m.Place(modals.BoxStyle.Render(b.String()))
}

func (m *PromptModal) GetControlSets() []types.ControlSet {
	return []types.ControlSet{{Controls: []types.ControlType{
		{Name: "submit", Key: "enter", Action: func() bool {
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return true
			}
			cmd, errText := m.onSubmit(value)
			if errText != "" {
				m.errText = errText
				return true
			}
			m.Close()
			m.pending = cmd
			return true
		}},
		{Name: "cancel", Key: "esc", Action: func() bool { m.Close(); return true }},
	}}}
}

func (m *PromptModal) ViewType() types.ViewType { return types.ModalStateType }
