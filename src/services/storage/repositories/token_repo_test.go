package repositories

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"docchat/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenRepository_LoadMissing(t *testing.T) {
	repo := NewFileTokenRepository(filepath.Join(t.TempDir(), "auth.json"))

	token, err := repo.Load()
	require.NoError(t, err)
	assert.False(t, token.Valid())
}

func TestFileTokenRepository_SaveLoadClear(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "auth.json")
	repo := NewFileTokenRepository(file)

	require.NoError(t, repo.Save(models.AuthToken{AccessToken: "abc", Username: "ada"}))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	token, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "ada", token.Username)
	assert.False(t, token.SavedAt.IsZero())

	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear())
	token, err = repo.Load()
	require.NoError(t, err)
	assert.False(t, token.Valid())
}

func TestFileTokenRepository_CorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "auth.json")
	require.NoError(t, os.WriteFile(file, []byte("{nope"), 0600))

	_, err := NewFileTokenRepository(file).Load()
	var se *models.StorageError
	require.ErrorAs(t, err, &se)
}
