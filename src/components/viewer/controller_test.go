package viewer

import (
	"errors"
	"fmt"
	"testing"

	"docchat/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoc struct {
	pages int
}

func (d fakeDoc) PageCount() int { return d.pages }
func (d fakeDoc) PageText(page int) (string, error) {
	return fmt.Sprintf("text of page %d", page), nil
}

func openFake(pages int) OpenFunc {
	return func([]byte) (Pages, error) { return fakeDoc{pages: pages}, nil }
}

func loaded(t *testing.T, pages int) *Controller {
	t.Helper()
	c := NewController(openFake(pages), nil)
	cmd := c.Load("report.pdf", []byte("%PDF"))
	require.NotNil(t, cmd)
	c.HandleLoaded(cmd().(LoadedMsg))
	require.Equal(t, StateReady, c.State())
	return c
}

func TestLoad_PageCountUnknownUntilLoaded(t *testing.T) {
	c := NewController(openFake(5), nil)
	cmd := c.Load("report.pdf", nil)

	assert.Equal(t, StateLoading, c.State())
	_, ok := c.PageCount()
	assert.False(t, ok)

	c.NextPage()
	c.GoTo(3)
	assert.Equal(t, 1, c.CurrentPage(), "paging is disabled while loading")

	c.HandleLoaded(cmd().(LoadedMsg))
	n, ok := c.PageCount()
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, c.CurrentPage())
}

func TestGoTo_ClampsAnyInput(t *testing.T) {
	c := loaded(t, 12)
	for _, tc := range []struct{ in, want int }{
		{-100, 1}, {-1, 1}, {0, 1}, {1, 1}, {7, 7}, {12, 12}, {13, 12}, {1 << 30, 12},
	} {
		c.GoTo(tc.in)
		assert.Equal(t, tc.want, c.CurrentPage(), "GoTo(%d)", tc.in)
	}
}

func TestJumpToPage_SameAsGoTo(t *testing.T) {
	c := loaded(t, 4)
	c.JumpToPage(3)
	assert.Equal(t, 3, c.CurrentPage())
	c.JumpToPage(99)
	assert.Equal(t, 4, c.CurrentPage())
}

func TestJumpToPage_WhileLoadingAppliedOnReady(t *testing.T) {
	c := NewController(openFake(6), nil)
	cmd := c.Load("a.pdf", nil)
	c.JumpToPage(4)
	c.HandleLoaded(cmd().(LoadedMsg))
	assert.Equal(t, 4, c.CurrentPage())
}

func TestNextPrevious_Clamped(t *testing.T) {
	c := loaded(t, 2)
	c.PreviousPage()
	assert.Equal(t, 1, c.CurrentPage())
	c.NextPage()
	c.NextPage()
	assert.Equal(t, 2, c.CurrentPage())
}

func TestZoom_StepsAndBounds(t *testing.T) {
	c := NewController(openFake(1), nil)
	assert.Equal(t, DefaultZoom, c.Zoom())

	for i := 0; i < 10; i++ {
		c.ZoomIn()
	}
	assert.Equal(t, MaxZoom, c.Zoom())
	assert.False(t, c.CanZoomIn())

	for i := 0; i < 10; i++ {
		c.ZoomOut()
	}
	assert.Equal(t, MinZoom, c.Zoom())
	assert.False(t, c.CanZoomOut())

	c.ZoomIn()
	assert.Equal(t, 1.0, c.Zoom())
}

func TestLoadFailure_TerminalAndDisablesPaging(t *testing.T) {
	boom := errors.New("bad xref")
	c := NewController(func([]byte) (Pages, error) { return nil, boom }, nil)
	cmd := c.Load("broken.pdf", []byte("junk"))
	c.HandleLoaded(cmd().(LoadedMsg))

	assert.Equal(t, StateFailed, c.State())
	assert.ErrorIs(t, c.LoadErr(), boom)
	assert.False(t, c.PagingEnabled())

	c.NextPage()
	c.GoTo(3)
	c.JumpToPage(2)
	assert.Equal(t, 1, c.CurrentPage())
}

func TestHandleLoaded_IgnoresStaleResult(t *testing.T) {
	c := NewController(openFake(3), nil)
	first := c.Load("one.pdf", nil)
	second := c.Load("two.pdf", nil)

	c.HandleLoaded(first().(LoadedMsg))
	assert.Equal(t, StateLoading, c.State())

	c.HandleLoaded(second().(LoadedMsg))
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, "two.pdf", c.Name())
}

func TestClose_DropsInFlightLoad(t *testing.T) {
	c := NewController(openFake(3), nil)
	cmd := c.Load("one.pdf", nil)
	c.Close()
	c.HandleLoaded(cmd().(LoadedMsg))
	assert.Equal(t, StateEmpty, c.State())
	assert.False(t, c.HasDocument())
}

func TestIsHighlighted_IndependentOfCurrentPage(t *testing.T) {
	cited := map[int]bool{2: true, 4: true}
	c := NewController(openFake(5), func(p int) bool { return cited[p] })
	cmd := c.Load("a.pdf", nil)
	c.HandleLoaded(cmd().(LoadedMsg))

	c.GoTo(1)
	assert.True(t, c.IsHighlighted(2))
	assert.True(t, c.IsHighlighted(4))
	assert.False(t, c.IsHighlighted(1))
}

func TestPageText_NoDocumentUntilReady(t *testing.T) {
	c := NewController(openFake(3), nil)
	_, err := c.PageText()
	assert.ErrorIs(t, err, models.ErrNoDocument)

	cmd := c.Load("report.pdf", []byte("%PDF"))
	_, err = c.PageText()
	assert.ErrorIs(t, err, models.ErrNoDocument)

	c.HandleLoaded(cmd().(LoadedMsg))
	c.NextPage()
	text, err := c.PageText()
	require.NoError(t, err)
	assert.Equal(t, "text of page 2", text)
}
