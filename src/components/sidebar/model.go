// components/sidebar/model.go - SidebarModel for the document list next to the chat window

package sidebar

import (
	"docchat/src/models"
	"docchat/src/types"

	tea "github.com/charmbracelet/bubbletea"
)

// EntryKind says what selecting a sidebar line does.
type EntryKind int

const (
	EntryAllDocuments EntryKind = iota // ask across every document
	EntryDocument                      // open one document
	EntryUpload                        // upload a new PDF
)

// Entry is one selectable sidebar line.
type Entry struct {
	Kind EntryKind
	Doc  models.Document
}

// SelectMsg is emitted when the user picks an entry.
type SelectMsg struct {
	Entry Entry
}

// SidebarModel manages the persistent document list
// The sidebar is always visible next to the chat window
type SidebarModel struct {
	Documents []models.Document
	Selected  int               // Index of the highlighted entry
	ActiveID  models.DocumentID // Document questions go to, empty for all documents
	Focused   bool
	Width     int
	Height    int
	offset    int
}

// NewSidebarModel creates an empty sidebar
func NewSidebarModel() *SidebarModel {
	return &SidebarModel{Width: 28, Height: 20}
}

// SetDocuments replaces the list, keeping the highlight on the same document when possible.
func (s *SidebarModel) SetDocuments(docs []models.Document) {
	cur := s.Current()
	s.Documents = append([]models.Document(nil), docs...)
	s.Selected = 0
	for i, e := range s.Entries() {
		if e.Kind == cur.Kind && e.Doc.ID == cur.Doc.ID {
			s.Selected = i
			break
		}
	}
}

// SetActive marks the document questions currently go to.
func (s *SidebarModel) SetActive(id models.DocumentID) {
	s.ActiveID = id
}

// Entries lists "All Documents", every document, then the upload entry.
func (s *SidebarModel) Entries() []Entry {
	out := make([]Entry, 0, len(s.Documents)+2)
	out = append(out, Entry{Kind: EntryAllDocuments})
	for _, d := range s.Documents {
		out = append(out, Entry{Kind: EntryDocument, Doc: d})
	}
	return append(out, Entry{Kind: EntryUpload})
}

// Current returns the highlighted entry.
func (s *SidebarModel) Current() Entry {
	entries := s.Entries()
	if s.Selected < 0 || s.Selected >= len(entries) {
		return entries[0]
	}
	return entries[s.Selected]
}

// Update handles key navigation; enter emits a SelectMsg.
func (s *SidebarModel) Update(msg tea.Msg) (*SidebarModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	var cmd tea.Cmd
	sets := s.GetControlSets()
	sets = append(sets, types.ControlSet{Controls: []types.ControlType{
		{Key: "enter", Action: func() bool {
			e := s.Current()
			cmd = func() tea.Msg { return SelectMsg{Entry: e} }
			return true
		}},
	}})
	types.Dispatch(sets, key.String())
	return s, cmd
}

// GetControlSets returns the sidebar's navigation controls
func (s *SidebarModel) GetControlSets() []types.ControlSet {
	n := len(s.Documents) + 2
	return []types.ControlSet{{Controls: []types.ControlType{
		{Name: "navigate", Key: "up", Action: types.MenuUp(&s.Selected, n)},
		{Name: "", Key: "down", Action: types.MenuDown(&s.Selected, n)},
		{Name: "", Key: "k", Action: types.MenuUp(&s.Selected, n)},
		{Name: "", Key: "j", Action: types.MenuDown(&s.Selected, n)},
		{Name: "open", Key: "enter"},
	}}}
}
