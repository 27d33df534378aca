package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docchat/src/components/modals"
	"docchat/src/components/modals/dialogs"
	"docchat/src/models"
	"docchat/src/navigation"
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey offers the key to the focused pane's controls first, then to the global set.
func (m *Model) handleKey(key tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	sets := m.controlSets(&cmd)
	if types.Dispatch(sets, key.String()) {
		return cmd
	}
	switch m.focus {
	case FocusInput:
		var c tea.Cmd
		m.input, c = m.input.Update(key)
		return c
	case FocusTranscript:
		return m.chat.Update(key)
	case FocusViewer:
		return m.pane.Update(key)
	case FocusSidebar:
		_, c := m.sidebar.Update(key)
		return c
	}
	return nil
}

// controlSets returns the local set for the focused pane followed by the global set.
// Actions that start async work store their command in *cmd.
func (m *Model) controlSets(cmd *tea.Cmd) []types.ControlSet {
	return []types.ControlSet{m.localControls(cmd), m.globalControls(cmd)}
}

func (m *Model) localControls(cmd *tea.Cmd) types.ControlSet {
	switch m.focus {
	case FocusTranscript:
		return types.ControlSet{Controls: []types.ControlType{
			{Name: "citation", Key: "up", Action: func() bool { m.chat.SelectPrevious(); return true }},
			{Name: "", Key: "down", Action: func() bool { m.chat.SelectNext(); return true }},
			{Name: "open citation", Key: "enter", Action: func() bool { m.activateCitation(); return true }},
			{Name: "input", Key: "esc", Action: func() bool { m.setFocus(FocusInput); return true }},
		}}
	case FocusSidebar:
		return types.ControlSet{Controls: []types.ControlType{
			{Name: "navigate", Key: "up", Action: func() bool { _, *cmd = m.sidebar.Update(tea.KeyMsg{Type: tea.KeyUp}); return true }},
			{Name: "", Key: "down", Action: func() bool { _, *cmd = m.sidebar.Update(tea.KeyMsg{Type: tea.KeyDown}); return true }},
			{Name: "open", Key: "enter", Action: func() bool { _, *cmd = m.sidebar.Update(tea.KeyMsg{Type: tea.KeyEnter}); return true }},
			{Name: "refresh", Key: "r", Action: func() bool { *cmd = m.store.RefreshDocuments(); return true }},
			{Name: "input", Key: "esc", Action: func() bool { m.setFocus(FocusInput); return true }},
		}}
	case FocusViewer:
		return types.ControlSet{Controls: []types.ControlType{
			{Name: "page", Key: "left", Action: func() bool { m.viewer.PreviousPage(); return true }},
			{Name: "", Key: "right", Action: func() bool { m.viewer.NextPage(); return true }},
			{Name: "zoom", Key: "+", Action: func() bool { m.viewer.ZoomIn(); return true }},
			{Name: "", Key: "=", Action: func() bool { m.viewer.ZoomIn(); return true }},
			{Name: "", Key: "-", Action: func() bool { m.viewer.ZoomOut(); return true }},
			{Name: "next cite", Key: "n", Action: func() bool { m.index.Next(); return true }},
			{Name: "prev cite", Key: "p", Action: func() bool { m.index.Previous(); return true }},
			{Name: "first cite", Key: "f", Action: func() bool { m.index.First(); return true }},
			{Name: "go to", Key: "g", Action: func() bool { *cmd = m.showGoToPrompt(); return true }},
			{Name: "close", Key: "x", Action: func() bool { m.dismissViewer(); return true }},
			{Name: "input", Key: "esc", Action: func() bool { m.setFocus(FocusInput); return true }},
		}}
	}
	return types.ControlSet{Controls: []types.ControlType{
		{Name: "send", Key: "enter", Action: func() bool {
			*cmd = m.submit()
			return true
		}},
	}}
}

func (m *Model) globalControls(cmd *tea.Cmd) types.ControlSet {
	return types.ControlSet{Controls: []types.ControlType{
		{Name: "focus", Key: "tab", Action: func() bool { m.cycleFocus(1); return true }},
		{Name: "", Key: "shift+tab", Action: func() bool { m.cycleFocus(-1); return true }},
		{Name: "web", Key: "ctrl+w", Action: func() bool { m.toggleWebSearch(); return true }},
		{Name: "upload", Key: "ctrl+u", Action: func() bool { *cmd = m.showUploadPrompt(); return true }},
		{Name: "", Key: "ctrl+n", Action: func() bool { m.index.Next(); return true }},
		{Name: "", Key: "ctrl+p", Action: func() bool { m.index.Previous(); return true }},
		{Name: "copy", Key: "ctrl+y", Action: func() bool { m.copyLastAnswer(); return true }},
		{Name: "clear", Key: "ctrl+l", Action: func() bool { *cmd = m.confirmClear(); return true }},
		{Name: "menu", Key: "ctrl+o", Action: func() bool { *cmd = m.showMenu(); return true }},
		{Name: "help", Key: "f1", Action: func() bool { *cmd = m.showHelp(); return true }},
		{Name: "", Key: "ctrl+q", Action: func() bool { *cmd = m.confirmQuit(); return true }},
	}}
}

// submit sends the input line as a question.
func (m *Model) submit() tea.Cmd {
	text := m.input.Value()
	if err := m.store.CheckQuestion(text); err != nil {
		if errors.Is(err, models.ErrQuestionPending) {
			m.setStatus("Waiting for the previous answer...", true)
		}
		return nil
	}
	cmd := m.store.SubmitQuestion(text)
	m.input.Reset()
	m.setStatus("", false)
	m.syncViews()
	return cmd
}

func (m *Model) push(v types.ViewState) tea.Cmd {
	if s, ok := v.(types.Sized); ok {
		w, h := m.modalRegion()
		s.SetRegion(w, h)
	}
	return navigation.Push(v)
}

func (m *Model) closeModal() { m.stack.Pop() }

func (m *Model) showUploadPrompt() tea.Cmd {
	if m.store.Uploading() {
		m.setStatus("An upload is already in progress", true)
		return nil
	}
	p := dialogs.NewPromptModal("Upload a PDF", "path/to/file.pdf", func(value string) (tea.Cmd, string) {
		path := expandHome(value)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, "No such file."
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil, "Only PDF files can be uploaded."
		}
		cmd := m.store.Upload(path)
		if cmd != nil {
			m.setStatus("Uploading "+filepath.Base(path)+"...", false)
		}
		return cmd, ""
	}, m.closeModal)
	return m.push(p)
}

func (m *Model) showGoToPrompt() tea.Cmd {
	n, ok := m.viewer.PageCount()
	if !ok {
		return nil
	}
	p := dialogs.NewPromptModal(fmt.Sprintf("Go to page (1-%d)", n), "page", func(value string) (tea.Cmd, string) {
		page, err := strconv.Atoi(value)
		if err != nil {
			return nil, "Enter a page number."
		}
		m.viewer.GoTo(page)
		return nil, ""
	}, m.closeModal)
	return m.push(p)
}

func (m *Model) confirmClear() tea.Cmd {
	return m.push(dialogs.YesNo("Clear the conversation?", func() tea.Cmd {
		m.clearSession()
		return nil
	}, m.closeModal))
}

func (m *Model) confirmQuit() tea.Cmd {
	return m.push(dialogs.YesNo("Quit DocChat?", func() tea.Cmd {
		return func() tea.Msg { return types.QuitAppMsg{} }
	}, m.closeModal))
}

func (m *Model) confirmLogout() tea.Cmd {
	return m.push(dialogs.YesNo("Sign out of "+m.store.Username()+"?", func() tea.Cmd {
		m.logout()
		return nil
	}, m.closeModal))
}

func (m *Model) showMenu() tea.Cmd {
	_, hasAnswer := m.store.LastAnswer()
	web := "Web search: off"
	if m.store.WebSearchMode() {
		web = "Web search: on"
	}
	entry := func(label, desc string, disabled bool, fn func() tea.Cmd) dialogs.MenuEntry {
		return dialogs.MenuEntry{ModalOption: modals.ModalOption{Label: label, OnSelect: fn}, Description: desc, Disabled: disabled}
	}
	menu := dialogs.NewMenuModal("Actions", []dialogs.MenuEntry{
		entry("Upload PDF", "send a file for ingestion", m.store.Uploading(), m.showUploadPrompt),
		entry("Refresh documents", "reload the document list", false, m.store.RefreshDocuments),
		entry(web, "toggle between document and web answers", false, func() tea.Cmd { m.toggleWebSearch(); return nil }),
		entry("Copy last answer", "to the clipboard", !hasAnswer, func() tea.Cmd { m.copyLastAnswer(); return nil }),
		entry("Close viewer", "drop the open document", !m.viewer.HasDocument(), func() tea.Cmd { m.dismissViewer(); return nil }),
		entry("Clear conversation", "", false, m.confirmClear),
		entry("Help", "", false, m.showHelp),
		entry("Sign out", "", false, m.confirmLogout),
		entry("Quit", "", false, m.confirmQuit),
	}, m.closeModal)
	return m.push(menu)
}

func (m *Model) showHelp() tea.Cmd {
	return m.push(dialogs.NewHelpModal("Keys", helpText, m.closeModal))
}

const helpText = `Tab / Shift+Tab   move between input, transcript, documents, viewer
Enter             send question / open selection
Ctrl+W            toggle web search
Ctrl+U            upload a PDF
Ctrl+N / Ctrl+P   next / previous cited page
Ctrl+Y            copy the last answer
Ctrl+L            clear the conversation
Ctrl+O            actions menu
Ctrl+Q            quit

Transcript   ↑↓ pick a citation, Enter opens the page or copies the link
Viewer       ←→ page, + - zoom, n p f citations, g go to page, x close`

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
