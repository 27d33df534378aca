// store.go - Session state: transcript, active document and search mode.
// Every mutation runs on the Bubble Tea update loop; remote work is returned as a tea.Cmd
// and its result comes back through the matching Handle method.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docchat/src/models"
	"docchat/src/services/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// Service is the remote document service as the store uses it.
type Service interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	ListDocuments(ctx context.Context, token string) ([]models.Document, error)
	UploadDocument(ctx context.Context, token, filename string, data []byte) (models.DocumentID, error)
	FetchDocumentBytes(ctx context.Context, token string, id models.DocumentID) ([]byte, error)
	AskDocument(ctx context.Context, token, question string, id models.DocumentID) (models.Answer, error)
	AskWeb(ctx context.Context, token, question string) (models.Answer, error)
}

const (
	msgAnswerFailed   = "Failed to get response."
	msgUploadFailed   = "Failed to upload file."
	msgAllDocuments   = "Switched to All Documents context."
	msgListFailed     = "Failed to load documents."
	msgUploadTemplate = `File "%s" processed successfully. You are now chatting with this document.`
	msgSwitchTemplate = `Switched context to "%s".`
	msgLoadTemplate   = `Failed to load PDF for "%s".`
)

// Store is the single source of truth for the chat session.
type Store struct {
	svc    Service
	tokens storage.TokenRepository
	logger *slog.Logger
	ctx    context.Context

	token     models.AuthToken
	messages  []models.Message
	documents []models.Document

	activeDocumentID   models.DocumentID
	activeDocumentName string
	activeDocumentBlob []byte

	webSearchMode bool
	inFlight      bool
	uploading     bool
	loading       bool
}

// NewStore builds a store. tokens may be nil when the session is not persisted.
func NewStore(ctx context.Context, svc Service, tokens storage.TokenRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{svc: svc, tokens: tokens, logger: logger, ctx: ctx}
}

// Restore loads a persisted token. Missing or unreadable files leave the store signed out.
func (s *Store) Restore(valid func(models.AuthToken) bool) bool {
	if s.tokens == nil {
		return false
	}
	tok, err := s.tokens.Load()
	if err != nil {
		s.logger.Warn("Failed to load saved token", "error", err)
		return false
	}
	if !tok.Valid() || (valid != nil && !valid(tok)) {
		return false
	}
	s.token = tok
	return true
}

// Authenticated reports whether a token is held.
func (s *Store) Authenticated() bool { return s.token.Valid() }

// Username returns the signed-in user.
func (s *Store) Username() string { return s.token.Username }

// Messages returns a copy of the transcript.
func (s *Store) Messages() []models.Message {
	return append([]models.Message(nil), s.messages...)
}

// Documents returns the last fetched document list.
func (s *Store) Documents() []models.Document {
	return append([]models.Document(nil), s.documents...)
}

func (s *Store) ActiveDocumentID() models.DocumentID { return s.activeDocumentID }
func (s *Store) ActiveDocumentName() string           { return s.activeDocumentName }
func (s *Store) ActiveDocumentBlob() []byte           { return s.activeDocumentBlob }
func (s *Store) WebSearchMode() bool                  { return s.webSearchMode }
func (s *Store) InFlight() bool                       { return s.inFlight }
func (s *Store) Uploading() bool                      { return s.uploading }

// Busy reports whether any remote call started by the store is outstanding.
func (s *Store) Busy() bool { return s.inFlight || s.uploading || s.loading }

// Login returns a command that exchanges credentials for a token.
func (s *Store) Login(username, password string) tea.Cmd {
	return func() tea.Msg {
		tok, err := s.svc.Login(s.ctx, username, password)
		return AuthMsg{Username: username, Token: tok, Err: err}
	}
}

// Register creates the account and then signs in with the same credentials.
func (s *Store) Register(username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := s.svc.Register(s.ctx, username, password); err != nil {
			return AuthMsg{Username: username, Registered: true, Err: err}
		}
		tok, err := s.svc.Login(s.ctx, username, password)
		return AuthMsg{Username: username, Token: tok, Registered: true, Err: err}
	}
}

// HandleAuth stores a fresh token and persists it.
func (s *Store) HandleAuth(msg AuthMsg) error {
	if msg.Err != nil {
		s.logger.Warn("Authentication failed", "user", msg.Username, "error", msg.Err)
		return msg.Err
	}
	s.token = models.AuthToken{AccessToken: msg.Token, Username: msg.Username, SavedAt: time.Now()}
	if s.tokens != nil {
		if err := s.tokens.Save(s.token); err != nil {
			s.logger.Warn("Failed to persist token", "error", err)
		}
	}
	s.logger.Info("Signed in", "user", msg.Username)
	return nil
}

// Logout forgets the token and resets the whole session.
func (s *Store) Logout() error {
	s.token = models.AuthToken{}
	s.messages = nil
	s.documents = nil
	s.activeDocumentID = ""
	s.activeDocumentName = ""
	s.activeDocumentBlob = nil
	s.webSearchMode = false
	if s.tokens != nil {
		return s.tokens.Clear()
	}
	return nil
}

// CheckQuestion reports why text cannot be asked right now, or nil.
func (s *Store) CheckQuestion(text string) error {
	switch {
	case !s.Authenticated():
		return models.ErrNotAuthenticated
	case strings.TrimSpace(text) == "":
		return models.ErrEmptyQuestion
	case s.inFlight:
		return models.ErrQuestionPending
	}
	return nil
}

// SubmitQuestion appends the user message and a pending assistant message and
// returns the command that asks the service. Blank text or an outstanding
// question makes it a no-op that returns nil.
func (s *Store) SubmitQuestion(text string) tea.Cmd {
	question := strings.TrimSpace(text)
	if question == "" || s.inFlight {
		return nil
	}
	s.messages = append(s.messages, models.NewMessage(models.RoleUser, question))
	pending := models.NewPendingMessage(s.webSearchMode)
	s.messages = append(s.messages, pending)
	s.inFlight = true

	token := s.token.AccessToken
	web := s.webSearchMode
	docID := s.activeDocumentID
	return func() tea.Msg {
		var (
			ans models.Answer
			err error
		)
		if web {
			ans, err = s.svc.AskWeb(s.ctx, token, question)
		} else {
			ans, err = s.svc.AskDocument(s.ctx, token, question, docID)
		}
		return AnswerMsg{PendingID: pending.ID, WebSearch: web, Answer: ans, Err: err}
	}
}

// HandleAnswer replaces the pending entry with the answer or an error entry.
// If the pending entry is gone (session cleared meanwhile) the result is appended
// with the mode the question was asked in.
// For a successful answer ok is true and cites holds its page citations, which
// is empty for web answers. Failures return ok false.
func (s *Store) HandleAnswer(msg AnswerMsg) (cites []models.Citation, ok bool) {
	s.inFlight = false
	idx := s.indexOf(msg.PendingID)

	var placeholder models.Message
	if idx >= 0 {
		placeholder = s.messages[idx]
	} else {
		placeholder = models.NewPendingMessage(msg.WebSearch)
		placeholder.ID = msg.PendingID
	}

	var resolved models.Message
	if msg.Err != nil {
		s.logger.Warn("Question failed", "error", msg.Err)
		resolved = placeholder.Fail(msgAnswerFailed)
	} else {
		resolved = placeholder.Resolve(msg.Answer.Answer, msg.Answer.Citations)
	}

	if idx >= 0 {
		s.messages[idx] = resolved
	} else {
		s.messages = append(s.messages, resolved)
	}
	if msg.Err != nil {
		return nil, false
	}
	if resolved.IsWebSearch {
		return nil, true
	}
	return models.Answer{Citations: resolved.Citations}.PageCitations(), true
}

func (s *Store) indexOf(id string) int {
	for i, m := range s.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// SelectDocument fetches a document's bytes. The selection changes only once they arrive.
func (s *Store) SelectDocument(doc models.Document) tea.Cmd {
	token := s.token.AccessToken
	s.loading = true
	return func() tea.Msg {
		blob, err := s.svc.FetchDocumentBytes(s.ctx, token, doc.ID)
		return DocumentLoadedMsg{Doc: doc, Blob: blob, Err: err}
	}
}

// HandleDocumentLoaded switches id and blob together, or reports the failure and keeps both.
func (s *Store) HandleDocumentLoaded(msg DocumentLoadedMsg) bool {
	s.loading = false
	if msg.Err != nil {
		s.logger.Warn("Document fetch failed", "doc_id", msg.Doc.ID.String(), "error", msg.Err)
		s.appendSystem(models.RoleError, fmt.Sprintf(msgLoadTemplate, msg.Doc.Filename))
		return false
	}
	s.setActive(msg.Doc.ID, msg.Doc.Filename, msg.Blob)
	s.appendSystem(models.RoleSystem, fmt.Sprintf(msgSwitchTemplate, msg.Doc.Filename))
	return true
}

// SelectAllDocuments widens document questions to every uploaded document.
// The viewer keeps showing whatever it has.
func (s *Store) SelectAllDocuments() {
	s.activeDocumentID = ""
	s.appendSystem(models.RoleSystem, msgAllDocuments)
}

// DismissViewer drops the active document entirely.
func (s *Store) DismissViewer() {
	s.setActive("", "", nil)
}

// ClearSession empties the transcript. The active document stays.
func (s *Store) ClearSession() {
	s.messages = nil
}

// ToggleWebSearchMode flips between document and web questions.
func (s *Store) ToggleWebSearchMode() bool {
	s.webSearchMode = !s.webSearchMode
	return s.webSearchMode
}

// LastAnswer returns the content of the newest resolved assistant message.
func (s *Store) LastAnswer() (string, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if m.Role == models.RoleAssistant && !m.IsPending {
			return m.Content, true
		}
	}
	return "", false
}

// RefreshDocuments returns a command that lists uploaded documents.
func (s *Store) RefreshDocuments() tea.Cmd {
	token := s.token.AccessToken
	return func() tea.Msg {
		docs, err := s.svc.ListDocuments(s.ctx, token)
		return DocumentsMsg{Documents: docs, Err: err}
	}
}

// HandleDocuments replaces the document list.
func (s *Store) HandleDocuments(msg DocumentsMsg) error {
	if msg.Err != nil {
		s.logger.Warn("Listing documents failed", "error", msg.Err)
		s.appendSystem(models.RoleError, msgListFailed)
		return msg.Err
	}
	s.documents = msg.Documents
	return nil
}

// Upload reads a local PDF and sends it for ingestion. It returns nil while another upload runs.
func (s *Store) Upload(path string) tea.Cmd {
	if s.uploading {
		return nil
	}
	s.uploading = true
	token := s.token.AccessToken
	return func() tea.Msg {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return UploadedMsg{Name: name, Err: fmt.Errorf("read %s: %w", path, err)}
		}
		id, err := s.svc.UploadDocument(s.ctx, token, name, data)
		if err != nil {
			return UploadedMsg{Name: name, Err: err}
		}
		docs, err := s.svc.ListDocuments(s.ctx, token)
		if err != nil {
			s.logger.Warn("Listing documents after upload failed", "error", err)
			docs = nil
		}
		return UploadedMsg{Name: name, ID: id, Blob: data, Documents: docs}
	}
}

// HandleUploaded activates the new document with the local bytes.
func (s *Store) HandleUploaded(msg UploadedMsg) bool {
	s.uploading = false
	if msg.Err != nil {
		s.logger.Warn("Upload failed", "file", msg.Name, "error", msg.Err)
		s.appendSystem(models.RoleError, msgUploadFailed)
		return false
	}
	if msg.Documents != nil {
		s.documents = msg.Documents
	}
	s.setActive(msg.ID, msg.Name, msg.Blob)
	s.appendSystem(models.RoleSystem, fmt.Sprintf(msgUploadTemplate, msg.Name))
	return true
}

func (s *Store) setActive(id models.DocumentID, name string, blob []byte) {
	s.activeDocumentID = id
	s.activeDocumentName = name
	s.activeDocumentBlob = blob
}

func (s *Store) appendSystem(role models.Role, text string) {
	s.messages = append(s.messages, models.NewMessage(role, text))
}
