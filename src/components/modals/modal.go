// Package modals holds the shared pieces of every dialog pushed on the navigation stack.
package modals

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseSelfFunc removes the modal from the navigation stack.
type CloseSelfFunc func()

// ModalOption is one selectable choice.
type ModalOption struct {
	Label    string
	OnSelect func() tea.Cmd
}

// BaseModal carries the state every dialog shares.
type BaseModal struct {
	Message      string
	Options      []ModalOption
	CloseSelf    CloseSelfFunc
	Selected     int
	RegionWidth  int
	RegionHeight int
}

// SetRegion records the area the modal is centered in.
func (b *BaseModal) SetRegion(width, height int) {
	b.RegionWidth = width
	b.RegionHeight = height
}

// Close calls CloseSelf if set.
func (b *BaseModal) Close() {
	if b.CloseSelf != nil {
		b.CloseSelf()
	}
}

// Choose runs the selected option and closes the modal.
func (b *BaseModal) Choose() tea.Cmd {
	if b.Selected < 0 || b.Selected >= len(b.Options) {
		return nil
	}
	opt := b.Options[b.Selected]
	b.Close()
	if opt.OnSelect == nil {
		return nil
	}
	return opt.OnSelect()
}

// BoxStyle is the rounded frame shared by all dialogs.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("245")).
	Padding(1, 4)

// SelectedStyle marks the focused option.
var SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236"))

// Place centers box in the region, falling back to the box itself when no region is known.
func (b *BaseModal) Place(box string) string {
	if b.RegionWidth <= 0 || b.RegionHeight <= 0 {
		return box
	}
	return lipgloss.Place(b.RegionWidth, b.RegionHeight, lipgloss.Center, lipgloss.Center, box)
}
