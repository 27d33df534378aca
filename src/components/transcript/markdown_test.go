package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRendererWraps(t *testing.T) {
	out, err := PlainRenderer{}.Render("one two three four five", 9)

	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "one two three four five", strings.Join(strings.Fields(out), " "))
}

func TestGlamourRendererReusesPerWidth(t *testing.T) {
	g := NewGlamourRenderer("notty")

	out, err := g.Render("**bold** answer", 40)
	require.NoError(t, err)
	_, err = g.Render("again", 40)
	require.NoError(t, err)

	assert.Contains(t, out, "bold")
	assert.Len(t, g.renderers, 1)
}
