// view.go - Chat pane: renders entries, tracks the selected citation and activates it.

package transcript

import (
	"fmt"
	"strings"

	"docchat/src/models"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Actions are the side effects a citation can trigger.
type Actions struct {
	JumpToPage func(page int)
	CopyText   func(text string) error
}

var (
	statusWaiting = "⏳ Waiting for response"

	userTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")).
			Padding(0, 1)

	assistantTagStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("129")).
				Padding(0, 1)

	webTagStyle = assistantTagStyle.Foreground(lipgloss.Color("39"))

	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type affordanceRef struct {
	entry int
	index int
}

// View is the transcript pane.
type View struct {
	renderer MarkdownRenderer
	actions  Actions
	viewport viewport.Model
	entries  []Entry
	refs     []affordanceRef
	selected int // index into refs, -1 when nothing is selected
	width    int
	height   int
}

// NewView returns an empty transcript pane. A nil renderer falls back to plain wrapping.
func NewView(renderer MarkdownRenderer, actions Actions) *View {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true
	return &View{renderer: renderer, actions: actions, viewport: vp, selected: -1, width: 60, height: 20}
}

// SetSize sets the pane dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height, 3)
	v.refresh(false)
}

// SetMessages re-projects the transcript. New content scrolls to the bottom.
func (v *View) SetMessages(msgs []models.Message) {
	grew := len(msgs) != len(v.entries)
	v.entries = Project(msgs)
	v.refs = v.refs[:0]
	for i, e := range v.entries {
		for j := range e.Affordances {
			v.refs = append(v.refs, affordanceRef{entry: i, index: j})
		}
	}
	if v.selected >= len(v.refs) {
		v.selected = -1
	}
	v.refresh(grew)
}

// Entries returns the current projection.
func (v *View) Entries() []Entry {
	return v.entries
}

// SelectNext moves the citation selection forward, wrapping around.
func (v *View) SelectNext() {
	if len(v.refs) == 0 {
		return
	}
	v.selected = (v.selected + 1) % len(v.refs)
	v.refresh(false)
}

// SelectPrevious moves the citation selection back, wrapping around.
func (v *View) SelectPrevious() {
	if len(v.refs) == 0 {
		return
	}
	if v.selected <= 0 {
		v.selected = len(v.refs) - 1
	} else {
		v.selected--
	}
	v.refresh(false)
}

// ClearSelection drops the citation selection.
func (v *View) ClearSelection() {
	v.selected = -1
	v.refresh(false)
}

// Selected returns the selected affordance.
func (v *View) Selected() (Affordance, bool) {
	if v.selected < 0 || v.selected >= len(v.refs) {
		return Affordance{}, false
	}
	r := v.refs[v.selected]
	return v.entries[r.entry].Affordances[r.index], true
}

// Activate runs the selected citation: a page jump shows the exact page, a web link is copied.
func (v *View) Activate() (Affordance, error) {
	a, ok := v.Selected()
	if !ok {
		return Affordance{}, nil
	}
	switch a.Kind {
	case PageJump:
		if v.actions.JumpToPage != nil {
			v.actions.JumpToPage(a.Page)
		}
	case WebLink:
		if v.actions.CopyText != nil {
			if err := v.actions.CopyText(a.URL); err != nil {
				return a, err
			}
		}
	}
	return a, nil
}

// Update forwards scrolling to the viewport.
func (v *View) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the pane.
func (v *View) View() string {
	return v.viewport.View()
}

func (v *View) refresh(toBottom bool) {
	v.viewport.SetContent(v.Render())
	if toBottom {
		v.viewport.GotoBottom()
	}
}

// Render draws every entry in order.
func (v *View) Render() string {
	if len(v.entries) == 0 {
		return lipgloss.Place(v.width, max(v.height, 3), lipgloss.Center, lipgloss.Center,
			emptyStyle.Render("Welcome to the document chat\nSelect a document, upload a PDF, or use web search"))
	}
	width := max(v.width-2, 20)
	var sel *affordanceRef
	if v.selected >= 0 && v.selected < len(v.refs) {
		sel = &v.refs[v.selected]
	}

	var b strings.Builder
	for i, e := range v.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.renderEntry(i, e, width, sel))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderEntry(i int, e Entry, width int, sel *affordanceRef) string {
	m := e.Message
	switch m.Role {
	case models.RoleUser:
		return userTagStyle.Render("You") + "\n" + wordwrap.String(m.Content, width)
	case models.RoleSystem:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, systemStyle.Render(wordwrap.String(m.Content, width)))
	case models.RoleError:
		return errorStyle.Render("⚠ " + wordwrap.String(m.Content, width-2))
	}

	var b strings.Builder
	tag := assistantTagStyle.Render("Answer from your document")
	if m.IsWebSearch {
		tag = webTagStyle.Render("Answer from the web")
	}
	b.WriteString(tag + "\n")
	if m.IsPending {
		b.WriteString(systemStyle.Render(statusWaiting))
		return b.String()
	}
	body, err := v.renderer.Render(m.Content, width)
	if err != nil {
		body = wordwrap.String(m.Content, width)
	}
	b.WriteString(body)

	if len(e.Affordances) > 0 {
		b.WriteString("\n" + sourceStyle.Bold(true).Render("SOURCES"))
		for j, a := range e.Affordances {
			line := fmt.Sprintf("[%s] %s", a.Label, a.Detail)
			if a.Kind == WebLink {
				line = fmt.Sprintf("🌐 %s ↗ %s", a.Label, a.Detail)
			}
			line = truncateRunes(line, max(width-4, 10))
			if sel != nil && sel.entry == i && sel.index == j {
				b.WriteString("\n > " + selStyle.Render(line))
			} else {
				b.WriteString("\n   " + sourceStyle.Render(line))
			}
		}
	}
	return b.String()
}
