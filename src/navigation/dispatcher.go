package navigation

import (
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// NavigationAction tells the dispatcher how to change the stack.
type NavigationAction int

const (
	PushAction NavigationAction = iota
	PopAction
	ResetAction
)

// NavigationMsg asks the root model to change the stack.
type NavigationMsg struct {
	Action NavigationAction
	Target types.ViewState // Only for PushAction
}

// Push returns a command that pushes v.
func Push(v types.ViewState) tea.Cmd {
	return func() tea.Msg { return NavigationMsg{Action: PushAction, Target: v} }
}

// Pop returns a command that closes the top view.
func Pop() tea.Cmd {
	return func() tea.Msg { return NavigationMsg{Action: PopAction} }
}

// Dispatch handles navigation messages and delegates everything else to the top view.
// It reports false when the stack is empty and msg was not a navigation message,
// so the caller can route msg to the main screen.
func (s *NavigationStack) Dispatch(msg tea.Msg) (tea.Cmd, bool) {
	if nav, ok := msg.(NavigationMsg); ok {
		switch nav.Action {
		case PushAction:
			s.Push(nav.Target)
		case PopAction:
			s.Pop()
		case ResetAction:
			s.Reset()
		}
		return nil, true
	}
	top := s.Top()
	if top == nil {
		return nil, false
	}
	newState, cmd := top.Update(msg)
	// The view may have popped itself while updating.
	if s.Top() == top {
		s.ReplaceTop(newState)
	}
	return cmd, true
}
