package models

import (
	"encoding/json"
	"os"
	"time"
)

// AuthToken is the bearer credential kept between runs.
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	Username    string    `json:"username,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

// Valid reports whether the token can be sent to the service.
func (t AuthToken) Valid() bool {
	return t.AccessToken != ""
}

// SaveAuthTokenToFile writes the token as JSON, readable by the owner only.
func SaveAuthTokenToFile(token AuthToken, filePath string) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return &StorageError{
			Message: "failed to marshal auth token to JSON",
			Err:     err,
		}
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return &StorageError{
			Message: "failed to write auth token to file",
			Err:     err,
		}
	}

	return nil
}
