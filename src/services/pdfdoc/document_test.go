package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"

	"docchat/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Empty(t *testing.T) {
	_, err := Open(nil)
	var de *models.DocumentError
	require.ErrorAs(t, err, &de)
}

func TestOpen_NotAPDF(t *testing.T) {
	_, err := Open([]byte("this is plainly not a pdf file"))
	var de *models.DocumentError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, err.Error(), "PDF")
}

func openFixture(t *testing.T) *Document {
	t.Helper()
	blob, err := os.ReadFile(filepath.Join("testdata", "two-pages.pdf"))
	require.NoError(t, err)
	doc, err := Open(blob)
	require.NoError(t, err)
	return doc
}

func TestOpen_ValidDocument(t *testing.T) {
	doc := openFixture(t)

	assert.Equal(t, 2, doc.PageCount())
}

func TestPageText(t *testing.T) {
	doc := openFixture(t)

	first, err := doc.PageText(1)
	require.NoError(t, err)
	assert.Contains(t, first, "Quarterly revenue summary")

	second, err := doc.PageText(2)
	require.NoError(t, err)
	assert.Contains(t, second, "Risks and outlook")
	assert.NotContains(t, second, "Quarterly")
}

func TestPageText_OutOfRange(t *testing.T) {
	doc := openFixture(t)

	for _, page := range []int{0, -1, 3} {
		_, err := doc.PageText(page)
		assert.ErrorContains(t, err, "out of range", "page %d", page)
	}
}
