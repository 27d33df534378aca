package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DOCCHAT_API_URL", "")
	t.Setenv("DOCCHAT_AUTH_URL", "")
	t.Setenv("DOCCHAT_CONFIG_DIR", "")
	t.Setenv("DOCCHAT_LOG_FILE", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:6568", cfg.API.BaseURL)
	assert.Equal(t, cfg.API.BaseURL, cfg.API.AuthURL)
	assert.Zero(t, cfg.API.HTTPTimeout)
	assert.Equal(t, filepath.Join(".config", "docchat.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(".config", "auth.json"), cfg.TokenFile())
	assert.True(t, cfg.UI.Markdown)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DOCCHAT_API_URL", "http://rag.internal:8080/")
	t.Setenv("DOCCHAT_AUTH_URL", "http://auth.internal:6569")
	t.Setenv("DOCCHAT_HTTP_TIMEOUT", "45s")
	t.Setenv("DOCCHAT_LOG_LEVEL", "DEBUG")
	t.Setenv("DOCCHAT_MARKDOWN", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://rag.internal:8080", cfg.API.BaseURL)
	assert.Equal(t, "http://auth.internal:6569", cfg.API.AuthURL)
	assert.Equal(t, 45*time.Second, cfg.API.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.False(t, cfg.UI.Markdown)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("DOCCHAT_API_URL", "not-a-url")
	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("DOCCHAT_API_URL", "")
	t.Setenv("DOCCHAT_LOG_LEVEL", "verbose")
	_, err = FromEnv()
	require.Error(t, err)
}
