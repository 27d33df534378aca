package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when an operation needs a token and none is held.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyQuestion is returned for blank question text.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrQuestionPending is returned while an earlier question awaits its answer.
	ErrQuestionPending = errors.New("a question is already pending")
	// ErrNoDocument is returned when the viewer has nothing loaded.
	ErrNoDocument = errors.New("no document loaded")
)

// ValidationError represents an error when local input validation fails
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// StorageError represents an error when storage operations fail
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransportError means the request never produced a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the service answered with a failure status or an unreadable body.
type ServiceError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the service rejected the credentials.
func (e *ServiceError) Unauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// DocumentError means a document could not be parsed for display.
type DocumentError struct {
	Message string
	Err     error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err carries a rejected-credentials service failure.
func IsUnauthorized(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Unauthorized()
}
