// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the client.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Log     LogConfig
	UI      UIConfig
}

// APIConfig points at the document question-answering service.
type APIConfig struct {
	BaseURL     string        `validate:"required,url"`
	AuthURL     string        `validate:"required,url"`
	HTTPTimeout time.Duration `validate:"gte=0"` // zero means no client-side timeout
}

// StorageConfig controls where local state (the auth token) lives.
type StorageConfig struct {
	Dir string `validate:"required"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `validate:"required"`
	Level      string `validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `validate:"gte=1"`
	MaxBackups int    `validate:"gte=0"`
	MaxAgeDays int    `validate:"gte=0"`
}

// UIConfig toggles presentation features.
type UIConfig struct {
	Markdown      bool
	MarkdownStyle string `validate:"oneof=dark light notty ascii pink dracula tokyo-night"`
}

// Load reads .env (if present) and the process environment, then validates the result.
func Load() (*Config, error) {
	// A missing .env is normal; system environment is used instead.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	apiURL := strings.TrimRight(getEnv("DOCCHAT_API_URL", "http://localhost:6568"), "/")
	dir := getEnv("DOCCHAT_CONFIG_DIR", ".config")

	cfg := &Config{
		API: APIConfig{
			BaseURL:     apiURL,
			AuthURL:     strings.TrimRight(getEnv("DOCCHAT_AUTH_URL", apiURL), "/"),
			HTTPTimeout: getEnvAsDuration("DOCCHAT_HTTP_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Dir: dir,
		},
		Log: LogConfig{
			File:       getEnv("DOCCHAT_LOG_FILE", filepath.Join(dir, "docchat.log")),
			Level:      strings.ToLower(getEnv("DOCCHAT_LOG_LEVEL", "info")),
			MaxSizeMB:  getEnvAsInt("DOCCHAT_LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvAsInt("DOCCHAT_LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("DOCCHAT_LOG_MAX_AGE_DAYS", 28),
		},
		UI: UIConfig{
			Markdown:      getEnvAsBool("DOCCHAT_MARKDOWN", true),
			MarkdownStyle: strings.ToLower(getEnv("DOCCHAT_MARKDOWN_STYLE", "dark")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section against its struct tags.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// TokenFile is where the auth token is persisted.
func (c *Config) TokenFile() string {
	return filepath.Join(c.Storage.Dir, "auth.json")
}

// SlogLevel maps the configured level name to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := getEnv(key, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := getEnv(key, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := getEnv(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
