// Package storage provides repository interfaces for the little state kept on disk.
package storage

import "docchat/src/models"

// TokenRepository persists the bearer token between runs.
// Load returns a zero token and no error when nothing is stored.
type TokenRepository interface {
	Load() (models.AuthToken, error)
	Save(token models.AuthToken) error
	Clear() error
}
