package models

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Citation points from an answer back to its source.
// Document citations fill Page and Snippet, web citations fill URL, Domain and Title.
// Which shape applies is decided by the owning message's IsWebSearch tag.
type Citation struct {
	Page    int    `json:"page,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	URL     string `json:"url,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Title   string `json:"title,omitempty"`
}

// UnmarshalJSON accepts the page as a number or a quoted number,
// since answers are produced by a language model and the field type drifts.
func (c *Citation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Page    json.RawMessage `json:"page"`
		Snippet string          `json:"snippet"`
		URL     string          `json:"url"`
		Domain  string          `json:"domain"`
		Title   string          `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Citation{
		Snippet: raw.Snippet,
		URL:     raw.URL,
		Domain:  raw.Domain,
		Title:   raw.Title,
	}
	c.Page = parsePage(raw.Page)
	return nil
}

func parsePage(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	s := strings.Trim(string(raw), `"`)
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return int(f)
	}
	return 0
}

// HasPage reports whether the citation targets a document page.
func (c Citation) HasPage() bool {
	return c.Page > 0
}

// Label returns the short text shown for a web citation: the domain, else the URL host.
func (c Citation) Label() string {
	if c.Domain != "" {
		return c.Domain
	}
	if u, err := url.Parse(c.URL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return c.URL
}
