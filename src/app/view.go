package app

import (
	"fmt"
	"strings"

	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth     = 60
	minHeight    = 16
	sidebarWidth = 28
	inputHeight  = 3
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	modeDocStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("129")).Padding(0, 1)
	modeWebStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	focusPaneStyle = paneStyle.BorderForeground(lipgloss.Color("33"))
)

// dims are the computed pane sizes for the current terminal.
type dims struct {
	sidebar     int
	chat        int
	viewer      int
	body        int
	showSidebar bool
	showViewer  bool
}

func (m *Model) dims() dims {
	d := dims{body: max(m.height-3, 4)}
	rest := m.width
	if m.width >= 90 {
		d.showSidebar = true
		d.sidebar = sidebarWidth
		rest -= sidebarWidth
	}
	if m.viewer.HasDocument() {
		d.showViewer = true
		d.viewer = rest * 45 / 100
		rest -= d.viewer
	}
	d.chat = rest
	return d
}

// layout propagates the terminal size to every pane.
func (m *Model) layout() {
	d := m.dims()
	m.sidebar.Width = d.sidebar - 2
	m.sidebar.Height = d.body - 2
	m.chat.SetSize(max(d.chat-2, 10), max(d.body-inputHeight-2, 3))
	m.input.Width = max(d.chat-8, 10)
	m.pane.SetSize(max(d.viewer-2, 10), max(d.body-2, 6))
	if top := m.stack.Top(); top != nil {
		if s, ok := top.(types.Sized); ok {
			w, h := m.modalRegion()
			s.SetRegion(w, h)
		}
	}
}

func (m *Model) modalRegion() (int, int) {
	if top := m.stack.Top(); top != nil && top.ViewType() == types.LoginStateType {
		return m.width, m.height
	}
	return m.width, max(m.height-3, 4)
}

// View renders the application.
func (m *Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center, lipgloss.Center).
			Width(m.width).
			Height(m.height).
			Render("Terminal too small for DocChat")
	}
	top := m.stack.Top()
	if top != nil && top.ViewType() == types.LoginStateType {
		return top.View()
	}

	var body string
	if top != nil {
		body = top.View()
	} else {
		body = m.renderBody()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m *Model) renderHeader() string {
	mode := modeDocStyle.Render("📄 Document search")
	if m.store.WebSearchMode() {
		mode = modeWebStyle.Render("🌐 Web search")
	}
	context := "All Documents"
	if name := m.store.ActiveDocumentName(); m.store.ActiveDocumentID() != "" && name != "" {
		context = name
	}
	left := headerStyle.Render("DocChat") + " " + mode + " " + statusStyle.Render("context: "+context)
	right := statusStyle.Render(m.store.Username())
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderBody() string {
	d := m.dims()
	var cols []string
	if d.showSidebar {
		cols = append(cols, m.framed(m.sidebar.View(), d.sidebar, d.body, m.focus == FocusSidebar))
	}

	chatHeight := max(d.body-inputHeight, 5)
	chat := m.framed(m.chat.View(), d.chat, chatHeight, m.focus == FocusTranscript)
	input := m.framed(m.input.View(), d.chat, inputHeight, m.focus == FocusInput)
	cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, chat, input))

	if d.showViewer {
		cols = append(cols, m.framed(m.pane.View(), d.viewer, d.body, m.focus == FocusViewer))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// framed draws content in a bordered box of the given outer size.
func (m *Model) framed(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = focusPaneStyle
	}
	return style.Width(max(width-2, 1)).Height(max(height-2, 1)).MaxHeight(height).Render(content)
}

func (m *Model) renderFooter() string {
	var status string
	switch {
	case m.store.InFlight():
		status = statusStyle.Render(m.spinner.View() + " Waiting for response")
	case m.store.Uploading():
		status = statusStyle.Render(m.spinner.View() + " Uploading...")
	case m.store.Busy():
		status = statusStyle.Render(m.spinner.View() + " Loading document...")
	case m.status != "" && m.statusErr:
		status = statusErrStyle.Render(m.status)
	case m.status != "":
		status = statusStyle.Render(m.status)
	default:
		status = statusStyle.Render(fmt.Sprintf("focus: %s", m.focus))
	}

	var sets []types.ControlSet
	if top := m.stack.Top(); top != nil {
		sets = top.GetControlSets()
	} else {
		var discard tea.Cmd
		sets = m.controlSets(&discard)
	}
	hints := footerStyle.Width(m.width).MaxHeight(1).Render(types.Describe(sets).String())
	return lipgloss.JoinVertical(lipgloss.Left, status, hints)
}
