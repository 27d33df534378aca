// controller.go - Document viewer state machine: current page, zoom and load status.
// Jump requests arrive through JumpToPage, which is handed to whatever produces citation affordances.

package viewer

import (
	"math"

	"docchat/src/models"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	MinZoom     = 0.8
	MaxZoom     = 2.0
	ZoomStep    = 0.2
	DefaultZoom = 1.2
)

// LoadState tracks the document lifecycle inside the viewer.
type LoadState int

const (
	StateEmpty LoadState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Pages is a loaded document as the viewer sees it.
type Pages interface {
	PageCount() int
	PageText(page int) (string, error)
}

// OpenFunc parses document bytes.
type OpenFunc func(blob []byte) (Pages, error)

// LoadedMsg reports the outcome of a Load command.
type LoadedMsg struct {
	generation int
	Doc        Pages
	Err        error
}

// Controller owns the displayed page and zoom for the active document.
// It never writes back to the session; it only reacts to page-turn, zoom and jump requests.
type Controller struct {
	open        OpenFunc
	highlighted func(page int) bool

	name        string
	generation  int
	state       LoadState
	doc         Pages
	loadErr     error
	pageCount   int
	currentPage int
	zoom        float64
	pendingJump int
}

// NewController returns an empty viewer.
// highlighted marks cited pages; it may be nil.
func NewController(open OpenFunc, highlighted func(page int) bool) *Controller {
	if highlighted == nil {
		highlighted = func(int) bool { return false }
	}
	return &Controller{
		open:        open,
		highlighted: highlighted,
		zoom:        DefaultZoom,
		currentPage: 1,
	}
}

// Load starts parsing blob. Paging stays disabled until the returned command's LoadedMsg is handled.
// A later Load or Close makes earlier results stale.
func (c *Controller) Load(name string, blob []byte) tea.Cmd {
	c.generation++
	gen := c.generation
	c.name = name
	c.state = StateLoading
	c.doc = nil
	c.loadErr = nil
	c.pageCount = 0
	c.currentPage = 1
	c.zoom = DefaultZoom
	c.pendingJump = 0

	open := c.open
	return func() tea.Msg {
		doc, err := open(blob)
		return LoadedMsg{generation: gen, Doc: doc, Err: err}
	}
}

// HandleLoaded applies a load result. Stale results are ignored.
// A failure is terminal for this document: there is no automatic retry.
func (c *Controller) HandleLoaded(msg LoadedMsg) {
	if msg.generation != c.generation || c.state != StateLoading {
		return
	}
	if msg.Err != nil || msg.Doc == nil || msg.Doc.PageCount() < 1 {
		c.state = StateFailed
		c.loadErr = msg.Err
		return
	}
	c.doc = msg.Doc
	c.pageCount = msg.Doc.PageCount()
	c.state = StateReady
	if c.pendingJump != 0 {
		c.GoTo(c.pendingJump)
		c.pendingJump = 0
	}
}

// Close dismisses the document.
func (c *Controller) Close() {
	c.generation++
	c.name = ""
	c.state = StateEmpty
	c.doc = nil
	c.loadErr = nil
	c.pageCount = 0
	c.currentPage = 1
	c.pendingJump = 0
}

// PagingEnabled reports whether page-turn controls are active.
func (c *Controller) PagingEnabled() bool {
	return c.state == StateReady
}

// NextPage turns forward, stopping at the last page.
func (c *Controller) NextPage() {
	if !c.PagingEnabled() {
		return
	}
	c.GoTo(c.currentPage + 1)
}

// PreviousPage turns back, stopping at page 1.
func (c *Controller) PreviousPage() {
	if !c.PagingEnabled() {
		return
	}
	c.GoTo(c.currentPage - 1)
}

// GoTo shows page, silently clamped into [1, pageCount].
func (c *Controller) GoTo(page int) {
	if !c.PagingEnabled() {
		return
	}
	c.currentPage = clamp(page, 1, c.pageCount)
}

// JumpToPage is the external jump entry point; it behaves like GoTo.
// A jump that arrives while the document is still loading is applied once it is ready.
func (c *Controller) JumpToPage(page int) {
	if c.state == StateLoading {
		c.pendingJump = page
		return
	}
	c.GoTo(page)
}

// ZoomIn enlarges by one step, up to MaxZoom.
func (c *Controller) ZoomIn() {
	c.zoom = clampZoom(c.zoom + ZoomStep)
}

// ZoomOut shrinks by one step, down to MinZoom.
func (c *Controller) ZoomOut() {
	c.zoom = clampZoom(c.zoom - ZoomStep)
}

func (c *Controller) State() LoadState  { return c.state }
func (c *Controller) Name() string      { return c.name }
func (c *Controller) LoadErr() error    { return c.loadErr }
func (c *Controller) CurrentPage() int  { return c.currentPage }
func (c *Controller) Zoom() float64     { return c.zoom }
func (c *Controller) CanZoomIn() bool   { return c.zoom < MaxZoom }
func (c *Controller) CanZoomOut() bool  { return c.zoom > MinZoom }
func (c *Controller) HasDocument() bool { return c.state != StateEmpty }

// PageCount returns the page count, or false while it is unknown.
func (c *Controller) PageCount() (int, bool) {
	if c.state != StateReady {
		return 0, false
	}
	return c.pageCount, true
}

// IsHighlighted reports whether page is cited by the latest answer, independent of the current page.
func (c *Controller) IsHighlighted(page int) bool {
	return c.highlighted(page)
}

// PageText returns the text of the current page, or ErrNoDocument unless a document is ready.
func (c *Controller) PageText() (string, error) {
	if c.state != StateReady {
		return "", models.ErrNoDocument
	}
	return c.doc.PageText(c.currentPage)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampZoom keeps one decimal so repeated steps land exactly on the bounds.
func clampZoom(z float64) float64 {
	z = math.Round(z*10) / 10
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
