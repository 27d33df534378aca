// Package app provides the root Bubble Tea model: it owns the session store and wires
// the sidebar, transcript, input line, document viewer and modal stack together.
package app

import (
	"context"
	"log/slog"

	"docchat/src/citations"
	"docchat/src/components/modals/dialogs"
	"docchat/src/components/sidebar"
	"docchat/src/components/transcript"
	"docchat/src/components/viewer"
	"docchat/src/models"
	"docchat/src/navigation"
	"docchat/src/services/storage"
	"docchat/src/session"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus is the pane receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusTranscript
	FocusSidebar
	FocusViewer
)

func (f Focus) String() string {
	switch f {
	case FocusTranscript:
		return "transcript"
	case FocusSidebar:
		return "documents"
	case FocusViewer:
		return "viewer"
	default:
		return "input"
	}
}

// Options carries the application's dependencies.
type Options struct {
	Service    session.Service
	Tokens     storage.TokenRepository
	Logger     *slog.Logger
	Renderer   transcript.MarkdownRenderer
	OpenPDF    viewer.OpenFunc
	CopyText   func(text string) error
	TokenValid func(models.AuthToken) bool
}

// Model is the root model.
type Model struct {
	store   *session.Store
	index   *citations.Index
	viewer  *viewer.Controller
	pane    *viewer.Pane
	chat    *transcript.View
	sidebar *sidebar.SidebarModel
	input   textinput.Model
	spinner spinner.Model
	stack   *navigation.NavigationStack
	login   *dialogs.LoginModal

	copyText func(text string) error
	logger   *slog.Logger

	focus     Focus
	width     int
	height    int
	status    string
	statusErr bool
}

// New builds the root model and restores a saved session if one is still valid.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = func(string) error { return nil }
	}

	m := &Model{
		stack:    navigation.NewNavigationStack(),
		sidebar:  sidebar.NewSidebarModel(),
		copyText: copyText,
		logger:   logger,
		width:    100,
		height:   30,
	}
	m.store = session.NewStore(context.Background(), opts.Service, opts.Tokens, logger)

	// The highlight closure reads m.index, which is set right after.
	m.viewer = viewer.NewController(opts.OpenPDF, func(page int) bool { return m.index.Has(page) })
	m.index = citations.NewIndex(m.viewer.JumpToPage)
	m.pane = viewer.NewPane(m.viewer, m.index)
	m.chat = transcript.NewView(opts.Renderer, transcript.Actions{
		JumpToPage: m.jumpFromTranscript,
		CopyText:   copyText,
	})

	m.input = textinput.New()
	m.input.Placeholder = "Ask a question about your document..."
	m.input.Prompt = "❯ "
	m.input.CharLimit = 4000
	m.input.Focus()

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	m.login = dialogs.NewLoginModal(m.authenticate)
	if !m.store.Restore(opts.TokenValid) {
		m.stack.Push(m.login)
	} else {
		m.setStatus("Signed in as "+m.store.Username(), false)
	}
	m.layout()
	return m
}

// Init starts the cursor blink, the spinner and, when signed in, the document list fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.store.Authenticated() {
		cmds = append(cmds, m.store.RefreshDocuments())
	}
	return tea.Batch(cmds...)
}

// Store exposes the session for inspection.
func (m *Model) Store() *session.Store { return m.store }

// Citations exposes the citation index.
func (m *Model) Citations() *citations.Index { return m.index }

// Viewer exposes the viewer controller.
func (m *Model) Viewer() *viewer.Controller { return m.viewer }

// Focused returns the pane receiving keys.
func (m *Model) Focused() Focus { return m.focus }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

func (m *Model) authenticate(c dialogs.Credentials, register bool) tea.Cmd {
	if register {
		return m.store.Register(c.Username, c.Password)
	}
	return m.store.Login(c.Username, c.Password)
}

// jumpFromTranscript routes a page citation through the index so the cursor follows the click.
func (m *Model) jumpFromTranscript(page int) {
	m.index.JumpTo(page)
	if m.viewer.HasDocument() {
		m.setFocus(FocusViewer)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) setFocus(f Focus) {
	if f == FocusViewer && !m.viewer.HasDocument() {
		f = FocusInput
	}
	m.focus = f
	m.sidebar.Focused = f == FocusSidebar
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if f != FocusTranscript {
		m.chat.ClearSelection()
	}
}

func (m *Model) cycleFocus(step int) {
	order := []Focus{FocusInput, FocusTranscript, FocusSidebar}
	if m.viewer.HasDocument() {
		order = append(order, FocusViewer)
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(order)) % len(order)
	m.setFocus(order[idx])
}

// syncViews pushes store state into the components that display it.
func (m *Model) syncViews() {
	m.chat.SetMessages(m.store.Messages())
	m.sidebar.SetDocuments(m.store.Documents())
	m.sidebar.SetActive(m.store.ActiveDocumentID())
	if m.store.WebSearchMode() {
		m.input.Placeholder = "Search the web..."
	} else {
		m.input.Placeholder = "Ask a question about your document..."
	}
}
