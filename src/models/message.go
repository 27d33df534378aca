// message.go - Defines the Message struct for transcript entries.
// Messages are created on every submission and every resolved or rejected service call.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleError     Role = "error"
)

// Message represents a single transcript entry.
// A Message is never edited in place: the pending placeholder is replaced by a new value.
type Message struct {
	ID          string     `json:"id"`
	Role        Role       `json:"role"`
	Content     string     `json:"content"`
	Citations   []Citation `json:"citations,omitempty"`
	IsPending   bool       `json:"is_pending,omitempty"`
	IsWebSearch bool       `json:"is_web_search,omitempty"` // mode active when the message was created
	CreatedAt   time.Time  `json:"created_at"`
}

// NewMessage returns a message with a fresh id.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewPendingMessage returns the assistant placeholder shown while an answer is awaited.
func NewPendingMessage(webSearch bool) Message {
	m := NewMessage(RoleAssistant, "")
	m.IsPending = true
	m.IsWebSearch = webSearch
	return m
}

// Resolve builds the assistant message that replaces a pending placeholder.
// The id is kept so the entry stays addressable.
func (m Message) Resolve(answer string, citations []Citation) Message {
	return Message{
		ID:          m.ID,
		Role:        RoleAssistant,
		Content:     answer,
		Citations:   append([]Citation(nil), citations...),
		IsWebSearch: m.IsWebSearch,
		CreatedAt:   time.Now(),
	}
}

// Fail builds the error entry that replaces a pending placeholder.
func (m Message) Fail(content string) Message {
	return Message{
		ID:          m.ID,
		Role:        RoleError,
		Content:     content,
		IsWebSearch: m.IsWebSearch,
		CreatedAt:   time.Now(),
	}
}

// HasCitations reports whether the message carries any citation.
func (m Message) HasCitations() bool {
	return len(m.Citations) > 0
}
