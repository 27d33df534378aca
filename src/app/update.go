package app

import (
	"errors"

	"docchat/src/components/sidebar"
	"docchat/src/components/viewer"
	"docchat/src/models"
	"docchat/src/navigation"
	"docchat/src/services/api"
	"docchat/src/session"
	"docchat/src/types"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgSessionExpired = "Session expired. Please sign in again."
	msgLoginFailed    = "Login failed. Check your username and password."
	msgRegisterFailed = "Registration failed. The username may already be taken."
	msgUnreachable    = "Cannot reach the server."
)

// Update routes every message. It is the only place session state changes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case types.QuitAppMsg:
		return m, tea.Quit

	case session.AuthMsg:
		return m, m.handleAuth(msg)

	case session.AnswerMsg:
		// The newest answer owns the citation set; a web answer empties it.
		if cites, ok := m.store.HandleAnswer(msg); ok {
			m.index.Rebuild(cites)
		}
		m.syncViews()
		if msg.Err != nil {
			return m, m.checkExpired(msg.Err)
		}
		m.setStatus("", false)
		return m, nil

	case session.DocumentLoadedMsg:
		var cmd tea.Cmd
		if m.store.HandleDocumentLoaded(msg) {
			cmd = m.openActiveDocument()
		} else {
			cmd = m.checkExpired(msg.Err)
		}
		m.syncViews()
		return m, cmd

	case session.UploadedMsg:
		var cmd tea.Cmd
		if m.store.HandleUploaded(msg) {
			cmd = m.openActiveDocument()
			m.setStatus("", false)
		} else {
			cmd = m.checkExpired(msg.Err)
		}
		m.syncViews()
		return m, cmd

	case session.DocumentsMsg:
		err := m.store.HandleDocuments(msg)
		m.syncViews()
		return m, m.checkExpired(err)

	case viewer.LoadedMsg:
		m.viewer.HandleLoaded(msg)
		if m.viewer.State() == viewer.StateFailed {
			m.logger.Warn("PDF parse failed", "file", m.viewer.Name(), "error", m.viewer.LoadErr())
		}
		return m, nil

	case sidebar.SelectMsg:
		return m, m.handleSidebarSelect(msg.Entry)

	case navigation.NavigationMsg:
		m.stack.Dispatch(msg)
		m.layout()
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.stack.Empty() {
		cmd, _ := m.stack.Dispatch(msg)
		m.syncViews()
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(key)
	}

	// Mouse and other messages go to the focused pane.
	switch m.focus {
	case FocusTranscript:
		return m, m.chat.Update(msg)
	case FocusViewer:
		return m, m.pane.Update(msg)
	case FocusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleAuth(msg session.AuthMsg) tea.Cmd {
	if err := m.store.HandleAuth(msg); err != nil {
		text := msgLoginFailed
		switch {
		case api.IsTransport(err):
			text = msgUnreachable
		case msg.Registered:
			text = msgRegisterFailed
		}
		m.login.Fail(text)
		return nil
	}
	m.login.Reset()
	m.stack.Reset()
	m.setFocus(FocusInput)
	m.setStatus("Signed in as "+m.store.Username(), false)
	m.syncViews()
	return m.store.RefreshDocuments()
}

// checkExpired signs the user out when the service rejected the token.
func (m *Model) checkExpired(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if models.IsUnauthorized(err) {
		m.logout()
		m.login.Fail(msgSessionExpired)
		return nil
	}
	var transport *models.TransportError
	if errors.As(err, &transport) {
		m.setStatus(msgUnreachable, true)
	}
	return nil
}

func (m *Model) openActiveDocument() tea.Cmd {
	// Citations from earlier answers point into the previous document.
	m.index.Reset()
	cmd := m.viewer.Load(m.store.ActiveDocumentName(), m.store.ActiveDocumentBlob())
	m.layout()
	return cmd
}

func (m *Model) handleSidebarSelect(e sidebar.Entry) tea.Cmd {
	switch e.Kind {
	case sidebar.EntryAllDocuments:
		m.store.SelectAllDocuments()
		m.syncViews()
		return nil
	case sidebar.EntryUpload:
		return m.showUploadPrompt()
	}
	m.setStatus("Loading "+e.Doc.Filename+"...", false)
	return m.store.SelectDocument(e.Doc)
}

func (m *Model) logout() {
	if err := m.store.Logout(); err != nil {
		m.logger.Warn("Failed to clear saved token", "error", err)
	}
	m.viewer.Close()
	m.index.Reset()
	m.syncViews()
	m.setFocus(FocusInput)
	m.stack.Reset()
	m.login.Reset()
	m.stack.Push(m.login)
	m.layout()
}

func (m *Model) clearSession() {
	m.store.ClearSession()
	m.index.Reset()
	m.syncViews()
	m.setStatus("Conversation cleared", false)
}

func (m *Model) dismissViewer() {
	m.store.DismissViewer()
	m.viewer.Close()
	m.index.Reset()
	if m.focus == FocusViewer {
		m.setFocus(FocusInput)
	}
	m.syncViews()
	m.layout()
}

func (m *Model) toggleWebSearch() {
	if m.store.ToggleWebSearchMode() {
		m.setStatus("Web search on", false)
	} else {
		m.setStatus("Document search on", false)
	}
	m.syncViews()
}

func (m *Model) copyLastAnswer() {
	text, ok := m.store.LastAnswer()
	if !ok {
		m.setStatus("Nothing to copy yet", true)
		return
	}
	if err := m.copyText(text); err != nil {
		m.logger.Warn("Clipboard write failed", "error", err)
		m.setStatus("Could not access the clipboard", true)
		return
	}
	m.setStatus("Answer copied to clipboard", false)
}

func (m *Model) activateCitation() {
	a, err := m.chat.Activate()
	if err != nil {
		m.logger.Warn("Clipboard write failed", "error", err)
		m.setStatus("Could not access the clipboard", true)
		return
	}
	switch {
	case a.URL != "":
		m.setStatus("Link copied: "+a.URL, false)
	case a.Page > 0 && !m.viewer.HasDocument():
		m.setStatus("Open a document to view cited pages", true)
	}
}
