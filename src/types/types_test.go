package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchFirstHandlerWins(t *testing.T) {
	var hits []string
	local := ControlSet{Controls: []ControlType{
		{Name: "Select", Key: "enter", Action: func() bool { hits = append(hits, "local"); return true }},
		{Name: "Skip", Key: "x", Action: func() bool { return false }},
	}}
	global := ControlSet{Controls: []ControlType{
		{Name: "Select", Key: "enter", Action: func() bool { hits = append(hits, "global"); return true }},
		{Name: "Other", Key: "x", Action: func() bool { hits = append(hits, "x"); return true }},
	}}

	assert.True(t, Dispatch([]ControlSet{local, global}, "enter"))
	assert.True(t, Dispatch([]ControlSet{local, global}, "x"))
	assert.False(t, Dispatch([]ControlSet{local, global}, "q"))
	assert.Equal(t, []string{"local", "x"}, hits)
}

func TestDescribe(t *testing.T) {
	info := Describe([]ControlSet{
		{Controls: []ControlType{{Name: "navigate", Key: "up"}, {Name: "", Key: "down"}}},
		{Controls: []ControlType{{Name: "web search", Key: "ctrl+w"}, {Name: "dup", Key: "up"}}},
	})

	assert.Equal(t, []string{"↑ navigate", "Ctrl+W web search"}, info.Lines)
	assert.Equal(t, "↑ navigate • Ctrl+W web search", info.String())
}

func TestMenuUpDownWrap(t *testing.T) {
	sel := 0
	up := MenuUp(&sel, 3)
	down := MenuDown(&sel, 3)

	up()
	assert.Equal(t, 2, sel)
	down()
	assert.Equal(t, 0, sel)
	down()
	assert.Equal(t, 1, sel)

	assert.False(t, MenuUp(&sel, 0)())
}
