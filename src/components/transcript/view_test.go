package transcript

import (
	"errors"
	"testing"

	"docchat/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answered(web bool, cites ...models.Citation) models.Message {
	return models.NewPendingMessage(web).Resolve("answer", cites)
}

func TestActivatePageCitationJumps(t *testing.T) {
	var jumped []int
	v := NewView(nil, Actions{JumpToPage: func(p int) { jumped = append(jumped, p) }})
	v.SetMessages([]models.Message{answered(false, models.Citation{Page: 2}, models.Citation{Page: 4})})

	v.SelectNext()
	v.SelectNext()
	a, err := v.Activate()

	require.NoError(t, err)
	assert.Equal(t, 4, a.Page)
	assert.Equal(t, []int{4}, jumped)
}

func TestActivateWebCitationCopiesURL(t *testing.T) {
	var copied string
	v := NewView(nil, Actions{CopyText: func(s string) error { copied = s; return nil }})
	v.SetMessages([]models.Message{answered(true, models.Citation{URL: "https://go.dev"})})

	v.SelectNext()
	_, err := v.Activate()

	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", copied)
}

func TestActivateReportsCopyFailure(t *testing.T) {
	v := NewView(nil, Actions{CopyText: func(string) error { return errors.New("no clipboard") }})
	v.SetMessages([]models.Message{answered(true, models.Citation{URL: "https://go.dev"})})
	v.SelectNext()

	_, err := v.Activate()

	assert.Error(t, err)
}

func TestActivateWithoutSelectionDoesNothing(t *testing.T) {
	called := false
	v := NewView(nil, Actions{JumpToPage: func(int) { called = true }})
	v.SetMessages([]models.Message{answered(false, models.Citation{Page: 1})})

	_, err := v.Activate()

	require.NoError(t, err)
	assert.False(t, called)
}

func TestSelectionWrapsAround(t *testing.T) {
	v := NewView(nil, Actions{})
	v.SetMessages([]models.Message{answered(false, models.Citation{Page: 1}, models.Citation{Page: 2})})

	v.SelectPrevious()
	a, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, a.Page)

	v.SelectNext()
	a, _ = v.Selected()
	assert.Equal(t, 1, a.Page)
}

func TestSelectionDroppedWhenTranscriptCleared(t *testing.T) {
	v := NewView(nil, Actions{})
	v.SetMessages([]models.Message{answered(false, models.Citation{Page: 1})})
	v.SelectNext()

	v.SetMessages(nil)

	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestRenderShowsHeadersAndPendingStatus(t *testing.T) {
	v := NewView(PlainRenderer{}, Actions{})
	v.SetSize(80, 20)
	v.SetMessages([]models.Message{
		models.NewMessage(models.RoleUser, "what is it?"),
		answered(false, models.Citation{Page: 5, Snippet: "quoted"}),
		answered(true),
		models.NewPendingMessage(false),
	})

	out := v.Render()

	assert.Contains(t, out, "what is it?")
	assert.Contains(t, out, "Answer from your document")
	assert.Contains(t, out, "Answer from the web")
	assert.Contains(t, out, "[p5]")
	assert.Contains(t, out, statusWaiting)
}
