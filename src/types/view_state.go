// types/view_state.go - ViewState contract for everything pushed on the navigation stack

package types

import tea "github.com/charmbracelet/bubbletea"

// ViewState supports multiple control sets for modular/global controls
// ControlSets: first is local, others can be global or context-specific
type ViewState interface {
	ViewType() ViewType
	View() string
	Update(msg tea.Msg) (ViewState, tea.Cmd)
	GetControlSets() []ControlSet
}

// Sized is implemented by views that render centered in a region.
type Sized interface {
	SetRegion(width, height int)
}

// QuitAppMsg is sent when the user confirms quitting the app
// Used by quit confirmation modal
type QuitAppMsg struct{}
