package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DocumentID identifies a document held by the service.
// The service may encode it as a string or a number.
type DocumentID string

// UnmarshalJSON accepts both quoted and bare ids.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(s)
		return nil
	}
	*id = DocumentID(strings.TrimSpace(string(data)))
	return nil
}

func (id DocumentID) String() string { return string(id) }

// Document is an entry of the user's document list.
type Document struct {
	ID       DocumentID `json:"id"`
	Filename string     `json:"filename"`
}

// Answer is the service's reply to a question.
type Answer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}

// PageCitations returns the citations that target a document page.
func (a Answer) PageCitations() []Citation {
	var out []Citation
	for _, c := range a.Citations {
		if c.HasPage() {
			out = append(out, c)
		}
	}
	return out
}
