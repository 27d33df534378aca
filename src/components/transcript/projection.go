// Package transcript turns the message list into what the chat pane displays.
package transcript

import (
	"fmt"

	"docchat/src/models"
)

// snippetLimit is how many runes of a citation snippet are shown.
const snippetLimit = 150

// AffordanceKind tells how a citation behaves when activated.
type AffordanceKind int

const (
	// PageJump shows a document page in the viewer.
	PageJump AffordanceKind = iota
	// WebLink points at an external URL.
	WebLink
)

// Affordance is one actionable citation under an assistant message.
type Affordance struct {
	Kind   AffordanceKind
	Page   int
	URL    string
	Label  string
	Detail string
}

// Entry is a message ready for display.
type Entry struct {
	Message     models.Message
	Affordances []Affordance
}

// Project maps messages to entries in insertion order.
// Citation behavior comes from each message's own IsWebSearch tag, never from the current mode,
// so older answers keep rendering the way they were produced.
func Project(msgs []models.Message) []Entry {
	entries := make([]Entry, len(msgs))
	for i, m := range msgs {
		entries[i] = Entry{Message: m}
		if m.Role != models.RoleAssistant || m.IsPending || !m.HasCitations() {
			continue
		}
		entries[i].Affordances = affordances(m)
	}
	return entries
}

func affordances(m models.Message) []Affordance {
	out := make([]Affordance, 0, len(m.Citations))
	for _, c := range m.Citations {
		if m.IsWebSearch {
			detail := c.Title
			if detail == "" {
				detail = c.URL
			}
			out = append(out, Affordance{Kind: WebLink, URL: c.URL, Label: c.Label(), Detail: detail})
			continue
		}
		if !c.HasPage() {
			continue
		}
		detail := fmt.Sprintf("Reference on page %d", c.Page)
		if c.Snippet != "" {
			detail = `"` + truncateRunes(c.Snippet, snippetLimit) + `"`
		}
		out = append(out, Affordance{Kind: PageJump, Page: c.Page, Label: fmt.Sprintf("p%d", c.Page), Detail: detail})
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
