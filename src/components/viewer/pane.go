// pane.go - Renders the viewer controller into a scrollable terminal pane.

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// CitationInfo is what the pane needs from the citation index.
type CitationInfo interface {
	Pages() []int
	Label() string
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	toolbarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	citeBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pageStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
	highlightStyle = pageStyle.BorderForeground(lipgloss.Color("220"))
)

// Pane is the viewer's Bubble Tea view.
type Pane struct {
	ctrl     *Controller
	info     CitationInfo
	viewport viewport.Model
	width    int
	height   int

	renderedPage  int
	renderedZoom  float64
	renderedWidth int
	renderedState LoadState
	renderedGen   int
}

// NewPane wraps ctrl for display. info may be nil.
func NewPane(ctrl *Controller, info CitationInfo) *Pane {
	vp := viewport.New(40, 10)
	vp.MouseWheelEnabled = true
	return &Pane{ctrl: ctrl, info: info, viewport: vp, width: 40, height: 14}
}

// SetSize sets the outer dimensions of the pane.
func (p *Pane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-2, 10)
	p.viewport.Height = max(height-6, 3)
	p.renderedWidth = -1
}

// Update forwards scrolling keys and mouse events to the page viewport.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// WrapWidth is the text width for the current zoom: full width at MaxZoom, narrower below it.
func (p *Pane) WrapWidth() int {
	inner := p.viewport.Width - 4
	w := int(float64(inner) * p.ctrl.Zoom() / MaxZoom)
	return max(w, 20)
}

func (p *Pane) sync() {
	c := p.ctrl
	if c.CurrentPage() == p.renderedPage && c.Zoom() == p.renderedZoom &&
		p.viewport.Width == p.renderedWidth && c.State() == p.renderedState && c.generation == p.renderedGen {
		return
	}
	p.renderedPage = c.CurrentPage()
	p.renderedZoom = c.Zoom()
	p.renderedWidth = p.viewport.Width
	p.renderedState = c.State()
	p.renderedGen = c.generation

	var content string
	switch c.State() {
	case StateLoading:
		content = disabledStyle.Render("Loading PDF...")
	case StateFailed:
		content = errorStyle.Render("Failed to load PDF. Please try another file.")
	case StateReady:
		text, err := c.PageText()
		switch {
		case err != nil:
			content = errorStyle.Render(fmt.Sprintf("Page %d could not be read.", c.CurrentPage()))
		case strings.TrimSpace(text) == "":
			content = disabledStyle.Render("(no extractable text on this page)")
		default:
			content = wordwrap.String(text, p.WrapWidth())
		}
	default:
		content = disabledStyle.Render("No document open.")
	}
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// View renders the toolbar, the citation bar and the current page.
func (p *Pane) View() string {
	p.sync()
	c := p.ctrl

	var b strings.Builder
	b.WriteString(titleStyle.Render("📄 "+truncate(c.Name(), p.width-6)) + "\n")
	b.WriteString(p.toolbar() + "\n")
	b.WriteString(p.citationBar() + "\n")

	style := pageStyle
	if c.PagingEnabled() && c.IsHighlighted(c.CurrentPage()) {
		style = highlightStyle
	}
	b.WriteString(style.Width(max(p.width-2, 10)).Render(p.viewport.View()))
	return b.String()
}

func (p *Pane) toolbar() string {
	c := p.ctrl
	count := "..."
	if n, ok := c.PageCount(); ok {
		count = fmt.Sprintf("%d", n)
	}
	prev, next := "◀", "▶"
	n, _ := c.PageCount()
	if !c.PagingEnabled() || c.CurrentPage() <= 1 {
		prev = disabledStyle.Render(prev)
	}
	if !c.PagingEnabled() || c.CurrentPage() >= n {
		next = disabledStyle.Render(next)
	}
	zoomOut, zoomIn := "-", "+"
	if !c.CanZoomOut() {
		zoomOut = disabledStyle.Render(zoomOut)
	}
	if !c.CanZoomIn() {
		zoomIn = disabledStyle.Render(zoomIn)
	}
	return toolbarStyle.Render(fmt.Sprintf("%s %d / %s %s   %s %d%% %s",
		prev, c.CurrentPage(), count, next, zoomOut, int(c.Zoom()*100+0.5), zoomIn))
}

func (p *Pane) citationBar() string {
	if p.info == nil || len(p.info.Pages()) == 0 {
		return ""
	}
	pages := p.info.Pages()
	parts := make([]string, len(pages))
	for i, pg := range pages {
		parts[i] = fmt.Sprintf("%d", pg)
	}
	return citeBarStyle.Render(fmt.Sprintf("Citations: %s  [%s]", strings.Join(parts, ", "), p.info.Label()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
