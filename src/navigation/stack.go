// Package navigation keeps the stack of views layered over the main screen.
package navigation

import "docchat/src/types"

// NavigationStack holds the views pushed over the main screen, top last.
type NavigationStack struct {
	items []types.ViewState
}

func NewNavigationStack() *NavigationStack {
	return &NavigationStack{}
}

func (s *NavigationStack) Push(v types.ViewState) {
	if v == nil {
		return
	}
	s.items = append(s.items, v)
}

// Pop removes the top view. Popping an empty stack is a no-op.
func (s *NavigationStack) Pop() types.ViewState {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Top returns the top view, or nil when the stack is empty.
func (s *NavigationStack) Top() types.ViewState {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *NavigationStack) ReplaceTop(v types.ViewState) {
	if len(s.items) == 0 || v == nil {
		return
	}
	s.items[len(s.items)-1] = v
}

func (s *NavigationStack) Reset() {
	s.items = nil
}

func (s *NavigationStack) Len() int {
	return len(s.items)
}

func (s *NavigationStack) Empty() bool {
	return len(s.items) == 0
}
