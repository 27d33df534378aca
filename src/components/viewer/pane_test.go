package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticInfo struct {
	pages []int
	label string
}

func (s staticInfo) Pages() []int  { return s.pages }
func (s staticInfo) Label() string { return s.label }

func TestPane_RendersPageAndCitationBar(t *testing.T) {
	c := loaded(t, 3)
	c.GoTo(2)
	p := NewPane(c, staticInfo{pages: []int{2, 3}, label: "1 / 2"})
	p.SetSize(60, 20)

	out := p.View()
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "2 / 3")
	assert.Contains(t, out, "text of page 2")
	assert.Contains(t, out, "Citations: 2, 3")
	assert.Contains(t, out, "120%")
}

func TestPane_LoadingAndFailed(t *testing.T) {
	c := NewController(func([]byte) (Pages, error) { return nil, errors.New("nope") }, nil)
	cmd := c.Load("x.pdf", nil)
	p := NewPane(c, nil)
	p.SetSize(60, 20)

	assert.Contains(t, p.View(), "Loading PDF...")
	assert.Contains(t, p.View(), "/ ...")

	c.HandleLoaded(cmd().(LoadedMsg))
	assert.Contains(t, p.View(), "Failed to load PDF")
}

func TestPane_WrapWidthFollowsZoom(t *testing.T) {
	c := loaded(t, 1)
	p := NewPane(c, nil)
	p.SetSize(100, 30)

	base := p.WrapWidth()
	c.ZoomIn()
	assert.Greater(t, p.WrapWidth(), base)
	c.ZoomOut()
	c.ZoomOut()
	assert.Less(t, p.WrapWidth(), base)
}
