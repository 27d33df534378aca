package session

import "docchat/src/models"

// AnswerMsg carries the outcome of a question. WebSearch is the mode the question was asked in.
type AnswerMsg struct {
	PendingID string
	WebSearch bool
	Answer    models.Answer
	Err       error
}

// DocumentLoadedMsg carries the bytes fetched for a document selection.
type DocumentLoadedMsg struct {
	Doc  models.Document
	Blob []byte
	Err  error
}

// UploadedMsg carries the outcome of an upload, including the refreshed document list.
type UploadedMsg struct {
	Name      string
	ID        models.DocumentID
	Blob      []byte
	Documents []models.Document
	Err       error
}

// DocumentsMsg carries a refreshed document list.
type DocumentsMsg struct {
	Documents []models.Document
	Err       error
}

// AuthMsg carries the outcome of a login or registration.
type AuthMsg struct {
	Username   string
	Token      string
	Registered bool
	Err        error
}
