package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"docchat/src/models"
)

// FileTokenRepository keeps the auth token in a JSON file.
type FileTokenRepository struct {
	file string
}

func NewFileTokenRepository(file string) *FileTokenRepository {
	return &FileTokenRepository{file: file}
}

func (r *FileTokenRepository) Load() (models.AuthToken, error) {
	data, err := os.ReadFile(r.file)
	if err != nil {
		if os.IsNotExist(err) {
			return models.AuthToken{}, nil
		}
		return models.AuthToken{}, &models.StorageError{Message: "failed to read auth token file", Err: err}
	}
	var token models.AuthToken
	if err := json.Unmarshal(data, &token); err != nil {
		return models.AuthToken{}, &models.StorageError{Message: "failed to parse auth token file", Err: err}
	}
	return token, nil
}

func (r *FileTokenRepository) Save(token models.AuthToken) error {
	if err := os.MkdirAll(filepath.Dir(r.file), 0755); err != nil {
		return &models.StorageError{Message: "failed to create config directory", Err: err}
	}
	if token.SavedAt.IsZero() {
		token.SavedAt = time.Now()
	}
	return models.SaveAuthTokenToFile(token, r.file)
}

func (r *FileTokenRepository) Clear() error {
	if err := os.Remove(r.file); err != nil && !os.IsNotExist(err) {
		return &models.StorageError{Message: "failed to remove auth token file", Err: err}
	}
	return nil
}
