package navigation

import (
	"testing"

	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	name    string
	updates int
	onKey   func()
}

func (v *stubView) ViewType() types.ViewType           { return types.ModalStateType }
func (v *stubView) View() string                       { return v.name }
func (v *stubView) GetControlSets() []types.ControlSet { return nil }

func (v *stubView) Update(tea.Msg) (types.ViewState, tea.Cmd) {
	v.updates++
	if v.onKey != nil {
		v.onKey()
	}
	return v, nil
}

func TestStackPushPop(t *testing.T) {
	s := NewNavigationStack()
	assert.Nil(t, s.Top())
	assert.Nil(t, s.Pop())

	a, b := &stubView{name: "a"}, &stubView{name: "b"}
	s.Push(a)
	s.Push(b)
	s.Push(nil)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, b, s.Top())
	assert.Same(t, b, s.Pop())
	assert.Same(t, a, s.Top())
}

func TestDispatchNavigationMessages(t *testing.T) {
	s := NewNavigationStack()
	a := &stubView{name: "a"}

	_, handled := s.Dispatch(Push(a)())
	require.True(t, handled)
	assert.Same(t, a, s.Top())

	_, handled = s.Dispatch(NavigationMsg{Action: ResetAction})
	assert.True(t, handled)
	assert.True(t, s.Empty())
}

func TestDispatchDelegatesToTop(t *testing.T) {
	s := NewNavigationStack()
	_, handled := s.Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled)

	a := &stubView{name: "a"}
	s.Push(a)
	_, handled = s.Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Equal(t, 1, a.updates)
}

func TestDispatchKeepsSelfPop(t *testing.T) {
	s := NewNavigationStack()
	base := &stubView{name: "base"}
	top := &stubView{name: "top"}
	top.onKey = func() { s.Pop() }
	s.Push(base)
	s.Push(top)

	s.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Same(t, base, s.Top())
}
