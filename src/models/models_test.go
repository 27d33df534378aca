package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitationUnmarshal_PageShapes(t *testing.T) {
	var cits []Citation
	err := json.Unmarshal([]byte(`[{"page":3,"snippet":"a"},{"page":"5"},{"page":2.0},{"url":"https://go.dev/doc","title":"Docs"}]`), &cits)
	require.NoError(t, err)
	require.Len(t, cits, 4)

	assert.Equal(t, 3, cits[0].Page)
	assert.Equal(t, "a", cits[0].Snippet)
	assert.Equal(t, 5, cits[1].Page)
	assert.Equal(t, 2, cits[2].Page)
	assert.False(t, cits[3].HasPage())
	assert.Equal(t, "https://go.dev/doc", cits[3].URL)
}

func TestCitationLabel_FallsBackToHost(t *testing.T) {
	assert.Equal(t, "golang.org", Citation{URL: "https://x.dev", Domain: "golang.org"}.Label())
	assert.Equal(t, "pkg.go.dev", Citation{URL: "https://pkg.go.dev/net/http"}.Label())
	assert.Equal(t, "not a url", Citation{URL: "not a url"}.Label())
}

func TestDocumentID_AcceptsNumbers(t *testing.T) {
	var docs []Document
	require.NoError(t, json.Unmarshal([]byte(`[{"id":7,"filename":"a.pdf"},{"id":"abc","filename":"b.pdf"}]`), &docs))
	assert.Equal(t, DocumentID("7"), docs[0].ID)
	assert.Equal(t, DocumentID("abc"), docs[1].ID)
}

func TestMessageResolve_KeepsIDAndMode(t *testing.T) {
	pending := NewPendingMessage(true)
	resolved := pending.Resolve("hi", []Citation{{URL: "https://a.b"}})

	assert.Equal(t, pending.ID, resolved.ID)
	assert.True(t, resolved.IsWebSearch)
	assert.False(t, resolved.IsPending)
	assert.Equal(t, RoleAssistant, resolved.Role)

	failed := pending.Fail("Failed to get response.")
	assert.Equal(t, RoleError, failed.Role)
	assert.Equal(t, pending.ID, failed.ID)
}

func TestIsUnauthorized(t *testing.T) {
	err := &ServiceError{Op: "query", StatusCode: 401}
	assert.True(t, IsUnauthorized(err))
	assert.True(t, IsUnauthorized(errors.Join(errors.New("wrap"), err)))
	assert.False(t, IsUnauthorized(&ServiceError{Op: "query", StatusCode: 500}))
	assert.False(t, IsUnauthorized(errors.New("other")))
}
